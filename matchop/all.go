package matchop

import (
	"fmt"

	"github.com/mondoc/go-mondoc/doc"
)

var allOfSym = &allOfSymbol{name: "$all"}

func AllOf() Symbol { return allOfSym }

type allOfSymbol struct {
	name
}

func (s *allOfSymbol) Instance(arg *doc.Node) (Op, error) {
	if arg.Type != doc.ArrayType {
		return nil, fmt.Errorf("%s needs an array, got %s", s, arg.Type)
	}
	return &allOfOp{op: op{name: s.name, arg: arg}}, nil
}

type allOfOp struct {
	op
}

func (a allOfOp) Match(value *doc.Node, _ MatchFunc) (bool, error) {
	if value == nil || value.Type != doc.ArrayType {
		return false, nil
	}
	for _, want := range a.arg.Values {
		found := false
		for _, elt := range value.Values {
			if eq(elt, want) {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}
	return true, nil
}
