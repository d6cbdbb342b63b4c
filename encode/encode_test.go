package encode

import (
	"testing"

	"github.com/mondoc/go-mondoc/parse"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "$set: {'a.b': 20}", want: "{ $set: { a.b: 20 } }"},
		{input: "a: [1, 2, 3]", want: "{ a: [ 1, 2, 3 ] }"},
		{input: "a: 'x'", want: `{ a: "x" }`},
		{input: "a: 1.5", want: "{ a: 1.5 }"},
		{input: "a: true", want: "{ a: true }"},
		{input: "a: null", want: "{ a: null }"},
		{input: "{}", want: "{}"},
		{input: "[]", want: "[]"},
		{input: "10", want: "10"},
		{input: "a: {b: {c: []}}", want: "{ a: { b: { c: [] } } }"},
	}
	for _, tt := range tests {
		got := MustString(parse.MustParse(tt.input))
		if got != tt.want {
			t.Errorf("encode %q: got %s, want %s", tt.input, got, tt.want)
		}
	}
}
