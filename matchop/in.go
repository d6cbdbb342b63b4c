package matchop

import (
	"fmt"

	"github.com/mondoc/go-mondoc/doc"
)

var (
	inSym  = &inSymbol{name: "$in"}
	ninSym = &ninSymbol{name: "$nin"}
)

func In() Symbol  { return inSym }
func Nin() Symbol { return ninSym }

type inSymbol struct {
	name
}

func (s *inSymbol) Instance(arg *doc.Node) (Op, error) {
	if arg.Type != doc.ArrayType {
		return nil, fmt.Errorf("%s needs an array, got %s", s, arg.Type)
	}
	return &inOp{op: op{name: s.name, arg: arg}}, nil
}

type inOp struct {
	op
}

func (i inOp) Match(value *doc.Node, _ MatchFunc) (bool, error) {
	for _, cand := range i.arg.Values {
		if eq(value, cand) {
			return true, nil
		}
	}
	return false, nil
}

type ninSymbol struct {
	name
}

func (s *ninSymbol) Instance(arg *doc.Node) (Op, error) {
	if arg.Type != doc.ArrayType {
		return nil, fmt.Errorf("%s needs an array, got %s", s, arg.Type)
	}
	inner, err := In().Instance(arg)
	if err != nil {
		return nil, err
	}
	return &ninOp{op: op{name: s.name, arg: arg}, in: inner}, nil
}

type ninOp struct {
	op
	in Op
}

func (n ninOp) Match(value *doc.Node, mf MatchFunc) (bool, error) {
	m, err := n.in.Match(value, mf)
	if err != nil {
		return false, err
	}
	return !m, nil
}
