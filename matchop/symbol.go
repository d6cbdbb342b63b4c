// Package matchop provides the query predicate operators ($gt, $in, $exists,
// ...). Operators are looked up by their dollar-prefixed name and evaluated
// against a candidate value, receiving a MatchFunc callback for operators
// that recurse into sub-queries.
package matchop

import "github.com/mondoc/go-mondoc/doc"

type Symbol interface {
	Name
	Instance(arg *doc.Node) (Op, error)
}

type Name interface {
	String() string
}

type name string

func (s name) String() string {
	return string(s)
}
