package updateop

import (
	"github.com/mondoc/go-mondoc/doc"
	"github.com/mondoc/go-mondoc/encode"
	"github.com/mondoc/go-mondoc/errs"
)

var incSym = &arithSymbol{
	name: "$inc",
	verb: "increment",
	ints: func(a, b int64) int64 { return a + b },
	flts: func(a, b float64) float64 { return a + b },
}

var mulSym = &arithSymbol{
	name: "$mul",
	verb: "multiply",
	ints: func(a, b int64) int64 { return a * b },
	flts: func(a, b float64) float64 { return a * b },
}

func Inc() Symbol { return incSym }
func Mul() Symbol { return mulSym }

type arithSymbol struct {
	name
	verb string
	ints func(a, b int64) int64
	flts func(a, b float64) float64
}

func (s *arithSymbol) Instance(arg *doc.Node) (Op, error) {
	if arg.Type != doc.NumberType {
		return nil, errs.TypeMismatchf("Cannot %s with non-numeric argument: %s",
			s.verb, encode.MustString(arg))
	}
	return &arithOp{op: op{name: s.name, arg: arg}, sym: s}, nil
}

type arithOp struct {
	op
	sym *arithSymbol
}

func (s arithOp) Apply(_ *Context, document *doc.Node, path string) error {
	cur := doc.GetPath(document, path)
	if cur == nil {
		// $inc of a missing field starts from zero, so the result is the
		// argument itself. $mul of a missing field yields zero of the
		// argument's width.
		if s.String() == "$mul" {
			if s.arg.Int64 != nil {
				return doc.SetPath(document, path, doc.FromInt(0))
			}
			return doc.SetPath(document, path, doc.FromFloat(0))
		}
		return doc.SetPath(document, path, s.arg.Clone())
	}
	if cur.Type != doc.NumberType {
		return errs.TypeMismatchf("Cannot apply %s to a value of non-numeric type. The field '%s' has a %s value",
			s, path, cur.Type)
	}
	if cur.Int64 != nil && s.arg.Int64 != nil {
		return doc.SetPath(document, path, doc.FromInt(s.sym.ints(*cur.Int64, *s.arg.Int64)))
	}
	return doc.SetPath(document, path, doc.FromFloat(s.sym.flts(floatOf(cur), floatOf(s.arg))))
}

func floatOf(n *doc.Node) float64 {
	if n.Float64 != nil {
		return *n.Float64
	}
	return float64(*n.Int64)
}
