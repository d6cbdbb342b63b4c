package matchop

import (
	"fmt"

	"github.com/mondoc/go-mondoc/doc"
)

var elemMatchSym = &elemMatchSymbol{name: "$elemMatch"}

func ElemMatch() Symbol { return elemMatchSym }

type elemMatchSymbol struct {
	name
}

func (s *elemMatchSymbol) Instance(arg *doc.Node) (Op, error) {
	if arg.Type != doc.ObjectType {
		return nil, fmt.Errorf("%s needs an object, got %s", s, arg.Type)
	}
	return &elemMatchOp{op: op{name: s.name, arg: arg}}, nil
}

type elemMatchOp struct {
	op
}

func (e elemMatchOp) Match(value *doc.Node, mf MatchFunc) (bool, error) {
	if value == nil || value.Type != doc.ArrayType {
		return false, nil
	}
	for _, elt := range value.Values {
		var (
			m   bool
			err error
		)
		if IsOperatorDoc(e.arg) {
			m, err = ApplyOps(elt, e.arg, mf)
		} else {
			m, err = mf(elt, e.arg)
		}
		if err != nil {
			return false, err
		}
		if m {
			return true, nil
		}
	}
	return false, nil
}
