package debug

import (
	"bytes"
	"testing"

	"github.com/mondoc/go-mondoc/doc"
)

func TestLogfNodeArgs(t *testing.T) {
	var buf bytes.Buffer
	save := out
	out = &buf
	defer func() { out = save }()

	n := doc.Object()
	n.Set("a", doc.FromInt(1))
	var missing *doc.Node
	Logf("update %v on %v\n", n, missing)

	got := buf.String()
	want := "update { a: 1 } on <missing>\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
