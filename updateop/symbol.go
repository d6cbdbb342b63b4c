// Package updateop provides the update modifiers ($set, $inc, $push, ...).
// Modifiers are looked up by their dollar-prefixed name, instantiated with
// the argument for one update path, and applied to a concrete leaf path of
// a document.
package updateop

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

// Op is an instantiated modifier, bound to its argument. Apply mutates
// document in place at path.
type Op interface {
	Apply(ctx *Context, document *doc.Node, path string) error
	String() string
}

type op struct {
	name name
	arg  *doc.Node
}

func (o op) String() string {
	return o.name.String()
}
