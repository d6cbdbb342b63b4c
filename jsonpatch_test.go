package mondoc

import (
	"testing"

	"github.com/mondoc/go-mondoc/doc"
	"github.com/mondoc/go-mondoc/parse"
)

func TestApplyJSONPatch(t *testing.T) {
	target := parse.MustParse("a: 1\nxs: [1, 2, 3]")
	patch := parse.MustParse(`[
  {op: replace, path: /a, value: 5},
  {op: add, path: /b, value: hello},
  {op: remove, path: /xs/1}
]`)
	res, err := ApplyJSONPatch(target, patch)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.GetPath(res, "a"); got == nil || *got.Int64 != 5 {
		t.Errorf("a: got %v", got)
	}
	if got := doc.GetPath(res, "b"); got == nil || got.String != "hello" {
		t.Errorf("b: got %v", got)
	}
	xs := doc.Get(res, "xs")
	if xs.Len() != 2 {
		t.Fatalf("xs: got %v", xs)
	}
	if *xs.Index(0).Int64 != 1 || *xs.Index(1).Int64 != 3 {
		t.Errorf("xs: got %v, %v", xs.Index(0), xs.Index(1))
	}
	// target untouched
	if got := doc.GetPath(target, "a"); *got.Int64 != 1 {
		t.Errorf("target mutated: a = %v", got)
	}
}

func TestApplyJSONPatchErrors(t *testing.T) {
	target := parse.MustParse("a: 1")
	if _, err := ApplyJSONPatch(target, parse.MustParse("op: add")); err == nil {
		t.Error("expected error for non-array patch")
	}
	bad := parse.MustParse("[{op: replace, path: /missing, value: 1}]")
	if _, err := ApplyJSONPatch(target, bad); err == nil {
		t.Error("expected error for replacing a missing path")
	}
}
