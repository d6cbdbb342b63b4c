package updateop

import "github.com/mondoc/go-mondoc/doc"

var setSym = &setSymbol{name: "$set"}

func Set() Symbol { return setSym }

type setSymbol struct {
	name
}

func (s *setSymbol) Instance(arg *doc.Node) (Op, error) {
	return &setOp{op: op{name: s.name, arg: arg}}, nil
}

type setOp struct {
	op
}

func (s setOp) Apply(_ *Context, document *doc.Node, path string) error {
	return doc.SetPath(document, path, s.arg.Clone())
}

var unsetSym = &unsetSymbol{name: "$unset"}

func Unset() Symbol { return unsetSym }

type unsetSymbol struct {
	name
}

func (s *unsetSymbol) Instance(arg *doc.Node) (Op, error) {
	return &unsetOp{op: op{name: s.name, arg: arg}}, nil
}

type unsetOp struct {
	op
}

func (s unsetOp) Apply(_ *Context, document *doc.Node, path string) error {
	doc.UnsetPath(document, path)
	return nil
}
