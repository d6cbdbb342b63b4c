package updateop

import (
	"github.com/mondoc/go-mondoc/doc"
	"github.com/mondoc/go-mondoc/errs"
)

var addToSetSym = &addToSetSymbol{name: "$addToSet"}

func AddToSet() Symbol { return addToSetSym }

type addToSetSymbol struct {
	name
}

func (s *addToSetSymbol) Instance(arg *doc.Node) (Op, error) {
	a := &addToSetOp{op: op{name: s.name, arg: arg}}
	if arg.Type != doc.ObjectType || !doc.Has(arg, "$each") {
		a.each = []*doc.Node{arg}
		return a, nil
	}
	each := doc.Get(arg, "$each")
	if each.Type != doc.ArrayType {
		return nil, errs.TypeMismatchf("The argument to $each in $addToSet must be an array but it was of type %s",
			each.Type)
	}
	a.each = each.Values
	return a, nil
}

type addToSetOp struct {
	op
	each []*doc.Node
}

func (s addToSetOp) Apply(_ *Context, document *doc.Node, path string) error {
	arr, err := arrayAt(document, path)
	if err != nil {
		return err
	}
	next := append([]*doc.Node(nil), arr.Values...)
	for _, e := range s.each {
		if containsEq(next, e) {
			continue
		}
		next = append(next, e.Clone())
	}
	return doc.SetPath(document, path, doc.FromSlice(next))
}

func containsEq(elts []*doc.Node, v *doc.Node) bool {
	for _, e := range elts {
		if doc.Compare(e, v) == 0 {
			return true
		}
	}
	return false
}
