package updateop

import (
	"github.com/mondoc/go-mondoc/doc"
	"github.com/mondoc/go-mondoc/encode"
	"github.com/mondoc/go-mondoc/errs"
)

var renameSym = &renameSymbol{name: "$rename"}

func Rename() Symbol { return renameSym }

type renameSymbol struct {
	name
}

func (s *renameSymbol) Instance(arg *doc.Node) (Op, error) {
	if arg.Type != doc.StringType {
		return nil, errs.BadValuef("The 'to' field for $rename must be a string: %s",
			encode.MustString(arg))
	}
	return &renameOp{op: op{name: s.name, arg: arg}}, nil
}

type renameOp struct {
	op
}

// Apply moves the value at path to the path named by the argument. A missing
// source is a no-op.
func (s renameOp) Apply(_ *Context, document *doc.Node, path string) error {
	if path == s.arg.String {
		return errs.BadValuef("The source and target field for $rename must differ: %s", path)
	}
	cur := doc.GetPath(document, path)
	if cur == nil {
		return nil
	}
	doc.UnsetPath(document, path)
	return doc.SetPath(document, s.arg.String, cur)
}
