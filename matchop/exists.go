package matchop

import "github.com/mondoc/go-mondoc/doc"

var existsSym = &existsSymbol{name: "$exists"}

func Exists() Symbol { return existsSym }

type existsSymbol struct {
	name
}

func (s *existsSymbol) Instance(arg *doc.Node) (Op, error) {
	return &existsOp{op: op{name: s.name, arg: arg}}, nil
}

type existsOp struct {
	op
}

func (e existsOp) Match(value *doc.Node, _ MatchFunc) (bool, error) {
	if truthy(e.arg) {
		return value != nil, nil
	}
	return value == nil, nil
}

func truthy(n *doc.Node) bool {
	switch n.Type {
	case doc.BoolType:
		return n.Bool
	case doc.NumberType:
		if n.Int64 != nil {
			return *n.Int64 != 0
		}
		return *n.Float64 != 0
	case doc.NullType:
		return false
	default:
		return true
	}
}
