package matchop

import (
	"github.com/mondoc/go-mondoc/doc"
	"github.com/mondoc/go-mondoc/errs"
)

// MatchFunc is the signature for recursive matching of a value against a
// sub-query document.
type MatchFunc func(value, query *doc.Node) (bool, error)

// Op is an instantiated operator, bound to its argument. The candidate value
// passed to Match is nil when the addressed field is missing.
type Op interface {
	Match(value *doc.Node, mf MatchFunc) (bool, error)
	String() string
}

type op struct {
	name name
	arg  *doc.Node
}

func (o op) String() string {
	return o.name.String()
}

// eq is operator equality: numeric comparison unifies ints and floats, and a
// null argument also matches a missing value.
func eq(value, arg *doc.Node) bool {
	if value == nil {
		return arg.Type == doc.NullType
	}
	return doc.Compare(value, arg) == 0
}

// ApplyOps evaluates an operator document ({$gt: 20, $lt: 40}) against a
// candidate value; every operator must match. $options is folded into
// $regex rather than looked up on its own.
func ApplyOps(value, opDoc *doc.Node, mf MatchFunc) (bool, error) {
	for i := range opDoc.Fields {
		field := opDoc.Fields[i]
		if field == "$options" {
			continue
		}
		arg := opDoc.Values[i]
		if field == "$regex" {
			if opts := doc.Get(opDoc, "$options"); opts != nil {
				arg = doc.Array(arg.Clone(), opts.Clone())
			}
		}
		sym := Lookup(field)
		if sym == nil {
			return false, errs.BadValuef("unknown operator: %s", field)
		}
		inst, err := sym.Instance(arg)
		if err != nil {
			return false, err
		}
		m, err := inst.Match(value, mf)
		if err != nil {
			return false, err
		}
		if !m {
			return false, nil
		}
	}
	return true, nil
}

// IsOperatorDoc reports whether n is an object whose keys are operator
// names, i.e. an operator document rather than a literal value.
func IsOperatorDoc(n *doc.Node) bool {
	if n.Type != doc.ObjectType || len(n.Fields) == 0 {
		return false
	}
	for _, f := range n.Fields {
		if len(f) == 0 || f[0] != '$' {
			return false
		}
	}
	return true
}
