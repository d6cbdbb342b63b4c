package matchop

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/mondoc/go-mondoc/debug"
	"github.com/mondoc/go-mondoc/doc"
)

var whereSym = &whereSymbol{name: "$where"}

func Where() Symbol { return whereSym }

type whereSymbol struct {
	name
}

// Instance compiles the expression once; Match reruns it per candidate with
// the candidate document's fields as the environment.
func (s *whereSymbol) Instance(arg *doc.Node) (Op, error) {
	if arg.Type != doc.StringType {
		return nil, fmt.Errorf("%s only applies to strings, got %s", s, arg.Type)
	}
	prg, err := expr.Compile(arg.String, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("%s expression: %w", s, err)
	}
	return &whereOp{op: op{name: s.name, arg: arg}, prg: prg}, nil
}

type whereOp struct {
	op
	prg *vm.Program
}

func (w whereOp) Match(value *doc.Node, _ MatchFunc) (bool, error) {
	if debug.Op() {
		debug.Logf("%s op on %v\n", w, value)
	}
	env := map[string]any{}
	if value != nil && value.Type == doc.ObjectType {
		env = doc.ToAny(value).(map[string]any)
	}
	if value != nil {
		env["this"] = doc.ToAny(value)
	}
	res, err := expr.Run(w.prg, env)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%s expression returned %T, want bool", w, res)
	}
	return b, nil
}
