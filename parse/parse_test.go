package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mondoc/go-mondoc/doc"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, y *doc.Node)
	}{
		{
			name:  "flow object",
			input: "{x: {$gt: 20}}",
			check: func(t *testing.T, y *doc.Node) {
				if y.Type != doc.ObjectType {
					t.Fatalf("got %s", y.Type)
				}
				arg := doc.GetPath(y, "x.$gt")
				if arg == nil || *arg.Int64 != 20 {
					t.Errorf("x.$gt: got %v", arg)
				}
			},
		},
		{
			name:  "field order preserved",
			input: "z: 1\na: 2\nm: 3",
			check: func(t *testing.T, y *doc.Node) {
				if d := cmp.Diff([]string{"z", "a", "m"}, y.Fields); d != "" {
					t.Errorf("unexpected field order (-want +got):\n%s", d)
				}
			},
		},
		{
			name:  "scalars",
			input: "i: 3\nf: 1.5\ns: 'x'\nb: true\nn: null",
			check: func(t *testing.T, y *doc.Node) {
				if got := doc.Get(y, "i"); got.Int64 == nil || *got.Int64 != 3 {
					t.Errorf("i: got %v", got)
				}
				if got := doc.Get(y, "f"); got.Float64 == nil || *got.Float64 != 1.5 {
					t.Errorf("f: got %v", got)
				}
				if got := doc.Get(y, "s"); got.String != "x" {
					t.Errorf("s: got %v", got)
				}
				if got := doc.Get(y, "b"); !got.Bool {
					t.Errorf("b: got %v", got)
				}
				if got := doc.Get(y, "n"); got.Type != doc.NullType {
					t.Errorf("n: got %v", got)
				}
			},
		},
		{
			name:  "array",
			input: "[1, 2, 3]",
			check: func(t *testing.T, y *doc.Node) {
				if y.Type != doc.ArrayType || y.Len() != 3 {
					t.Fatalf("got %v", y)
				}
			},
		},
		{
			name:  "blank input is an empty document",
			input: "",
			check: func(t *testing.T, y *doc.Node) {
				if y.Type != doc.ObjectType || y.Len() != 0 {
					t.Fatalf("got %v", y)
				}
			},
		},
		{
			name:  "json input",
			input: `{"a": [1, {"b": null}]}`,
			check: func(t *testing.T, y *doc.Node) {
				if got := doc.GetPath(y, "a.1.b"); got == nil || got.Type != doc.NullType {
					t.Errorf("a.1.b: got %v", got)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatal(err)
			}
			tt.check(t, y)
		})
	}
}

func TestParseError(t *testing.T) {
	if _, err := Parse([]byte("a: [1, 2")); err == nil {
		t.Error("expected parse error")
	}
}
