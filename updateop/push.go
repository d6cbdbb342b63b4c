package updateop

import (
	"strings"

	"github.com/mondoc/go-mondoc/doc"
	"github.com/mondoc/go-mondoc/encode"
	"github.com/mondoc/go-mondoc/errs"
)

var pushSym = &pushSymbol{name: "$push"}

func Push() Symbol { return pushSym }

type pushSymbol struct {
	name
}

func (s *pushSymbol) Instance(arg *doc.Node) (Op, error) {
	p := &pushOp{op: op{name: s.name, arg: arg}}
	if arg.Type != doc.ObjectType || !doc.Has(arg, "$each") {
		p.each = []*doc.Node{arg}
		return p, nil
	}
	for i := range arg.Fields {
		field := arg.Fields[i]
		val := arg.Values[i]
		switch field {
		case "$each":
			if val.Type != doc.ArrayType {
				return nil, errs.BadValuef("The argument to $each in $push must be an array but it was of type %s",
					val.Type)
			}
			p.each = val.Values
		case "$position":
			n, err := intClause(field, val)
			if err != nil {
				return nil, err
			}
			p.position = &n
		case "$slice":
			n, err := intClause(field, val)
			if err != nil {
				return nil, err
			}
			p.slice = &n
		default:
			if strings.HasPrefix(field, "$") {
				return nil, errs.BadValuef("Unrecognized clause in $push: %s", field)
			}
			return nil, errs.BadValuef("Unexpected field in $push: %s", field)
		}
	}
	return p, nil
}

func intClause(clause string, val *doc.Node) (int, error) {
	if val.Type != doc.NumberType || val.Int64 == nil {
		return 0, errs.BadValuef("The value for %s must be an integer value: %s",
			clause, encode.MustString(val))
	}
	return int(*val.Int64), nil
}

type pushOp struct {
	op
	each     []*doc.Node
	position *int
	slice    *int
}

func (s pushOp) Apply(_ *Context, document *doc.Node, path string) error {
	arr, err := arrayAt(document, path)
	if err != nil {
		return err
	}
	elts := arr.Values
	at := len(elts)
	if s.position != nil {
		at = clampIndex(*s.position, len(elts))
	}
	var next []*doc.Node
	next = append(next, elts[:at]...)
	for _, e := range s.each {
		next = append(next, e.Clone())
	}
	next = append(next, elts[at:]...)
	if s.slice != nil {
		next = sliceElts(next, *s.slice)
	}
	return doc.SetPath(document, path, doc.FromSlice(next))
}

// arrayAt returns the array at path, creating an empty one for a missing
// field.
func arrayAt(document *doc.Node, path string) (*doc.Node, error) {
	cur := doc.GetPath(document, path)
	if cur == nil {
		return doc.Array(), nil
	}
	if cur.Type != doc.ArrayType {
		return nil, errs.BadValuef("The field '%s' must be an array but is of type %s",
			path, cur.Type)
	}
	return cur, nil
}

// clampIndex resolves a $position clause against the current length;
// negative positions count from the end.
func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// sliceElts applies a $slice clause: non-negative keeps the first n
// elements, negative keeps the last n.
func sliceElts(elts []*doc.Node, n int) []*doc.Node {
	switch {
	case n >= len(elts):
		return elts
	case n >= 0:
		return elts[:n]
	case -n >= len(elts):
		return elts
	default:
		return elts[len(elts)+n:]
	}
}
