package upath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Segment
	}{
		{
			name:  "plain fields",
			input: "a.b.c",
			want: []Segment{
				{Kind: FieldKind, Field: "a"},
				{Kind: FieldKind, Field: "b"},
				{Kind: FieldKind, Field: "c"},
			},
		},
		{
			name:  "all positional",
			input: "values.$[].active",
			want: []Segment{
				{Kind: FieldKind, Field: "values"},
				{Kind: AllKind},
				{Kind: FieldKind, Field: "active"},
			},
		},
		{
			name:  "filtered positional",
			input: "grades.$[].x.$[element]",
			want: []Segment{
				{Kind: FieldKind, Field: "grades"},
				{Kind: AllKind},
				{Kind: FieldKind, Field: "x"},
				{Kind: FilterKind, Identifier: "element"},
			},
		},
		{
			name:  "filter first",
			input: "$[x]",
			want: []Segment{
				{Kind: FilterKind, Identifier: "x"},
			},
		},
		{
			name:  "numeric index is a field",
			input: "a.0",
			want: []Segment{
				{Kind: FieldKind, Field: "a"},
				{Kind: FieldKind, Field: "0"},
			},
		},
		{
			name:  "unterminated bracket is a field",
			input: "a.$[x",
			want: []Segment{
				{Kind: FieldKind, Field: "a"},
				{Kind: FieldKind, Field: "$[x"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("unexpected segments (-want +got):\n%s", d)
			}
			if s := String(got); s != tt.input {
				t.Errorf("round trip: got %q, want %q", s, tt.input)
			}
		})
	}
}

func TestHasPositional(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"a.b", false},
		{"a.$[]", true},
		{"a.$[x].b", true},
		{"a.0", false},
	}
	for _, tt := range tests {
		if got := HasPositional(tt.input); got != tt.want {
			t.Errorf("HasPositional(%q): got %t, want %t", tt.input, got, tt.want)
		}
	}
}

func TestIdentifiers(t *testing.T) {
	got := Identifiers("a.$[x].b.$[].c.$[y]")
	want := map[string]bool{"x": true, "y": true}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected identifiers (-want +got):\n%s", d)
	}
}
