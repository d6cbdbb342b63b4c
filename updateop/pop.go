package updateop

import (
	"github.com/mondoc/go-mondoc/doc"
	"github.com/mondoc/go-mondoc/encode"
	"github.com/mondoc/go-mondoc/errs"
)

var popSym = &popSymbol{name: "$pop"}

func Pop() Symbol { return popSym }

type popSymbol struct {
	name
}

func (s *popSymbol) Instance(arg *doc.Node) (Op, error) {
	if arg.Type != doc.NumberType {
		return nil, errs.FailedToParsef("Expected a number in: $pop: %s", encode.MustString(arg))
	}
	if arg.Int64 == nil || (*arg.Int64 != 1 && *arg.Int64 != -1) {
		return nil, errs.FailedToParsef("$pop expects 1 or -1, found: %s", encode.MustString(arg))
	}
	return &popOp{op: op{name: s.name, arg: arg}, last: *arg.Int64 == 1}, nil
}

type popOp struct {
	op
	last bool
}

func (s popOp) Apply(_ *Context, document *doc.Node, path string) error {
	cur := doc.GetPath(document, path)
	if cur == nil {
		return nil
	}
	if cur.Type != doc.ArrayType {
		return errs.TypeMismatchf("Path '%s' contains an element of non-array type '%s'",
			path, cur.Type)
	}
	if cur.Len() == 0 {
		return nil
	}
	if s.last {
		return doc.SetPath(document, path, doc.FromSlice(cur.Values[:cur.Len()-1]))
	}
	return doc.SetPath(document, path, doc.FromSlice(cur.Values[1:]))
}
