package matchop

import (
	"github.com/mondoc/go-mondoc/debug"
	"github.com/mondoc/go-mondoc/doc"
)

var (
	eqSym  = &cmpSymbol{name: "$eq", ok: func(c int) bool { return c == 0 }}
	gtSym  = &cmpSymbol{name: "$gt", ok: func(c int) bool { return c > 0 }}
	gteSym = &cmpSymbol{name: "$gte", ok: func(c int) bool { return c >= 0 }}
	ltSym  = &cmpSymbol{name: "$lt", ok: func(c int) bool { return c < 0 }}
	lteSym = &cmpSymbol{name: "$lte", ok: func(c int) bool { return c <= 0 }}
	neSym  = &neSymbol{name: "$ne"}
)

func Eq() Symbol  { return eqSym }
func Gt() Symbol  { return gtSym }
func Gte() Symbol { return gteSym }
func Lt() Symbol  { return ltSym }
func Lte() Symbol { return lteSym }
func Ne() Symbol  { return neSym }

type cmpSymbol struct {
	name
	ok func(int) bool
}

func (s *cmpSymbol) Instance(arg *doc.Node) (Op, error) {
	return &cmpOp{op: op{name: s.name, arg: arg}, sym: s}, nil
}

type cmpOp struct {
	op
	sym *cmpSymbol
}

func (c cmpOp) Match(value *doc.Node, _ MatchFunc) (bool, error) {
	if debug.Op() {
		debug.Logf("%s op on %v\n", c, value)
	}
	if c.name == "$eq" {
		return eq(value, c.arg), nil
	}
	if value == nil {
		return false, nil
	}
	// Ordered comparisons only apply within one type family: 3 is neither
	// greater nor less than "three".
	if !sameFamily(value, c.arg) {
		return false, nil
	}
	return c.sym.ok(doc.Compare(value, c.arg)), nil
}

func sameFamily(a, b *doc.Node) bool {
	if a.Type == b.Type {
		return true
	}
	return a.Type == doc.NumberType && b.Type == doc.NumberType
}

type neSymbol struct {
	name
}

func (s *neSymbol) Instance(arg *doc.Node) (Op, error) {
	return &neOp{op: op{name: s.name, arg: arg}}, nil
}

type neOp struct {
	op
}

func (n neOp) Match(value *doc.Node, _ MatchFunc) (bool, error) {
	return !eq(value, n.arg), nil
}
