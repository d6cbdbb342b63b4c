package matchop

import (
	"fmt"

	"github.com/mondoc/go-mondoc/doc"
)

var modSym = &modSymbol{name: "$mod"}

func Mod() Symbol { return modSym }

type modSymbol struct {
	name
}

func (s *modSymbol) Instance(arg *doc.Node) (Op, error) {
	if arg.Type != doc.ArrayType || arg.Len() != 2 {
		return nil, fmt.Errorf("%s needs [divisor, remainder], got %s", s, arg.Type)
	}
	div, derr := intArg(arg.Values[0])
	rem, rerr := intArg(arg.Values[1])
	if derr != nil || rerr != nil {
		return nil, fmt.Errorf("%s needs numeric divisor and remainder", s)
	}
	if div == 0 {
		return nil, fmt.Errorf("%s divisor cannot be 0", s)
	}
	return &modOp{op: op{name: s.name, arg: arg}, div: div, rem: rem}, nil
}

func intArg(n *doc.Node) (int64, error) {
	if n.Type != doc.NumberType {
		return 0, fmt.Errorf("not a number: %s", n.Type)
	}
	if n.Int64 != nil {
		return *n.Int64, nil
	}
	return int64(*n.Float64), nil
}

type modOp struct {
	op
	div, rem int64
}

func (m modOp) Match(value *doc.Node, _ MatchFunc) (bool, error) {
	if value == nil || value.Type != doc.NumberType {
		return false, nil
	}
	v, err := intArg(value)
	if err != nil {
		return false, nil
	}
	return v%m.div == m.rem, nil
}
