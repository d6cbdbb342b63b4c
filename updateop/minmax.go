package updateop

import "github.com/mondoc/go-mondoc/doc"

var minSym = &boundSymbol{name: "$min", keep: func(c int) bool { return c < 0 }}
var maxSym = &boundSymbol{name: "$max", keep: func(c int) bool { return c > 0 }}

func Min() Symbol { return minSym }
func Max() Symbol { return maxSym }

type boundSymbol struct {
	name
	// keep reports whether Compare(arg, current) warrants replacing the
	// current value.
	keep func(c int) bool
}

func (s *boundSymbol) Instance(arg *doc.Node) (Op, error) {
	return &boundOp{op: op{name: s.name, arg: arg}, sym: s}, nil
}

type boundOp struct {
	op
	sym *boundSymbol
}

func (s boundOp) Apply(_ *Context, document *doc.Node, path string) error {
	cur := doc.GetPath(document, path)
	if cur != nil && !s.sym.keep(doc.Compare(s.arg, cur)) {
		return nil
	}
	return doc.SetPath(document, path, s.arg.Clone())
}
