package updateop

import (
	"github.com/mondoc/go-mondoc/doc"
	"github.com/mondoc/go-mondoc/errs"
	"github.com/mondoc/go-mondoc/matchop"
)

var pullSym = &pullSymbol{name: "$pull"}

func Pull() Symbol { return pullSym }

type pullSymbol struct {
	name
}

func (s *pullSymbol) Instance(arg *doc.Node) (Op, error) {
	return &pullOp{op: op{name: s.name, arg: arg}}, nil
}

type pullOp struct {
	op
}

// Apply removes every array element the argument selects: an operator
// document is evaluated against each element, a plain object is matched as a
// sub-query, and anything else removes by equality.
func (s pullOp) Apply(ctx *Context, document *doc.Node, path string) error {
	cur := doc.GetPath(document, path)
	if cur == nil {
		return nil
	}
	if cur.Type != doc.ArrayType {
		return errs.BadValuef("Cannot apply $pull to a non-array value")
	}
	var next []*doc.Node
	for _, elt := range cur.Values {
		m, err := s.selects(ctx, elt)
		if err != nil {
			return err
		}
		if !m {
			next = append(next, elt)
		}
	}
	return doc.SetPath(document, path, doc.FromSlice(next))
}

func (s pullOp) selects(ctx *Context, elt *doc.Node) (bool, error) {
	switch {
	case matchop.IsOperatorDoc(s.arg):
		return matchop.ApplyOps(elt, s.arg, ctx.Match)
	case s.arg.Type == doc.ObjectType && elt.Type == doc.ObjectType:
		return ctx.Match(elt, s.arg)
	default:
		return doc.Compare(elt, s.arg) == 0, nil
	}
}

var pullAllSym = &pullAllSymbol{name: "$pullAll"}

func PullAll() Symbol { return pullAllSym }

type pullAllSymbol struct {
	name
}

func (s *pullAllSymbol) Instance(arg *doc.Node) (Op, error) {
	if arg.Type != doc.ArrayType {
		return nil, errs.BadValuef("$pullAll requires an array argument but was given a %s",
			arg.Type)
	}
	return &pullAllOp{op: op{name: s.name, arg: arg}}, nil
}

type pullAllOp struct {
	op
}

func (s pullAllOp) Apply(_ *Context, document *doc.Node, path string) error {
	cur := doc.GetPath(document, path)
	if cur == nil {
		return nil
	}
	if cur.Type != doc.ArrayType {
		return errs.BadValuef("Cannot apply $pullAll to a non-array value")
	}
	var next []*doc.Node
	for _, elt := range cur.Values {
		if containsEq(s.arg.Values, elt) {
			continue
		}
		next = append(next, elt)
	}
	return doc.SetPath(document, path, doc.FromSlice(next))
}
