package matchop

import (
	"github.com/mondoc/go-mondoc/doc"
	"github.com/mondoc/go-mondoc/errs"
)

var notSym = &notSymbol{name: "$not"}

func Not() Symbol { return notSym }

type notSymbol struct {
	name
}

func (s *notSymbol) Instance(arg *doc.Node) (Op, error) {
	switch {
	case IsOperatorDoc(arg):
	case arg.Type == doc.StringType:
		// bare pattern, shorthand for {$regex: ...}
		arg = doc.Object().Set("$regex", arg.Clone())
	default:
		return nil, errs.BadValuef("$not needs a regex or a document")
	}
	return &notOp{op: op{name: s.name, arg: arg}}, nil
}

type notOp struct {
	op
}

func (n notOp) Match(value *doc.Node, mf MatchFunc) (bool, error) {
	m, err := ApplyOps(value, n.arg, mf)
	if err != nil {
		return false, err
	}
	return !m, nil
}
