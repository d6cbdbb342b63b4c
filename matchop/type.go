package matchop

import (
	"fmt"

	"github.com/mondoc/go-mondoc/doc"
)

var typeSym = &typeSymbol{name: "$type"}

func TypeOf() Symbol { return typeSym }

type typeSymbol struct {
	name
}

func (s *typeSymbol) Instance(arg *doc.Node) (Op, error) {
	if arg.Type != doc.StringType {
		return nil, fmt.Errorf("%s needs a type name string, got %s", s, arg.Type)
	}
	t, ok := typeAliases[arg.String]
	if !ok {
		return nil, fmt.Errorf("%s: unknown type name %q", s, arg.String)
	}
	return &typeOp{op: op{name: s.name, arg: arg}, t: t}, nil
}

var typeAliases = map[string]doc.Type{
	"null":   doc.NullType,
	"bool":   doc.BoolType,
	"number": doc.NumberType,
	"int":    doc.NumberType,
	"long":   doc.NumberType,
	"double": doc.NumberType,
	"string": doc.StringType,
	"object": doc.ObjectType,
	"array":  doc.ArrayType,
}

type typeOp struct {
	op
	t doc.Type
}

func (t typeOp) Match(value *doc.Node, _ MatchFunc) (bool, error) {
	if value == nil {
		return false, nil
	}
	return value.Type == t.t, nil
}
