// Package upath tokenizes update paths: dotted field paths whose segments
// may be positional tokens addressing array elements.
//
//   - "a.b"          → Field("a") Field("b")
//   - "a.$[]"        → Field("a") All
//   - "a.$[x].c"     → Field("a") Filter("x") Field("c")
//
// Tokenizing is independent of any document; walking the tokens against a
// document is the caller's concern.
package upath

import "strings"

type Kind int

const (
	// FieldKind is a plain field name (or numeric array index) segment.
	FieldKind Kind = iota
	// AllKind is the positional-all token "$[]", every element of an array.
	AllKind
	// FilterKind is the positional-filter token "$[id]", the elements of an
	// array matching the named array filter.
	FilterKind
)

func (k Kind) String() string {
	switch k {
	case FieldKind:
		return "Field"
	case AllKind:
		return "All"
	case FilterKind:
		return "Filter"
	}
	return "<unknown kind>"
}

type Segment struct {
	Kind Kind
	// Field is the field name for FieldKind segments.
	Field string
	// Identifier is the filter identifier for FilterKind segments.
	Identifier string
}

func (s Segment) String() string {
	switch s.Kind {
	case AllKind:
		return "$[]"
	case FilterKind:
		return "$[" + s.Identifier + "]"
	default:
		return s.Field
	}
}

// Parse splits path on '.' and classifies each segment. It never fails:
// segments that are not positional tokens are field segments.
func Parse(path string) []Segment {
	parts := strings.Split(path, ".")
	res := make([]Segment, len(parts))
	for i, p := range parts {
		res[i] = classify(p)
	}
	return res
}

func classify(seg string) Segment {
	if !strings.HasPrefix(seg, "$[") || !strings.HasSuffix(seg, "]") {
		return Segment{Kind: FieldKind, Field: seg}
	}
	id := seg[2 : len(seg)-1]
	if id == "" {
		return Segment{Kind: AllKind}
	}
	return Segment{Kind: FilterKind, Identifier: id}
}

// HasPositional reports whether path contains any positional token.
func HasPositional(path string) bool {
	for _, seg := range Parse(path) {
		if seg.Kind != FieldKind {
			return true
		}
	}
	return false
}

// Identifiers returns the set of filter identifiers referenced by path.
func Identifiers(path string) map[string]bool {
	res := map[string]bool{}
	for _, seg := range Parse(path) {
		if seg.Kind == FilterKind {
			res[seg.Identifier] = true
		}
	}
	return res
}

// String joins segments back into an update path.
func String(segs []Segment) string {
	parts := make([]string, len(segs))
	for i := range segs {
		parts[i] = segs[i].String()
	}
	return strings.Join(parts, ".")
}
