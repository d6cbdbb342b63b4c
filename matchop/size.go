package matchop

import (
	"fmt"

	"github.com/mondoc/go-mondoc/doc"
)

var sizeSym = &sizeSymbol{name: "$size"}

func Size() Symbol { return sizeSym }

type sizeSymbol struct {
	name
}

func (s *sizeSymbol) Instance(arg *doc.Node) (Op, error) {
	if arg.Type != doc.NumberType || arg.Int64 == nil {
		return nil, fmt.Errorf("%s needs an integer, got %s", s, arg.Type)
	}
	return &sizeOp{op: op{name: s.name, arg: arg}}, nil
}

type sizeOp struct {
	op
}

func (s sizeOp) Match(value *doc.Node, _ MatchFunc) (bool, error) {
	if value == nil || value.Type != doc.ArrayType {
		return false, nil
	}
	return int64(value.Len()) == *s.arg.Int64, nil
}
