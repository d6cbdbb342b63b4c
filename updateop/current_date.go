package updateop

import (
	"time"

	"github.com/mondoc/go-mondoc/doc"
	"github.com/mondoc/go-mondoc/errs"
)

var currentDateSym = &currentDateSymbol{name: "$currentDate"}

func CurrentDate() Symbol { return currentDateSym }

type currentDateSymbol struct {
	name
}

func (s *currentDateSymbol) Instance(arg *doc.Node) (Op, error) {
	c := &currentDateOp{op: op{name: s.name, arg: arg}}
	switch {
	case arg.Type == doc.BoolType:
		if !arg.Bool {
			return nil, errs.BadValuef("%s is not valid type for $currentDate. Please use a boolean ('true') or a $type expression ({$type: 'timestamp/date'}).", arg.Type)
		}
		c.kind = "date"
	case arg.Type == doc.ObjectType && arg.Len() == 1 && doc.Has(arg, "$type"):
		t := doc.Get(arg, "$type")
		if t.Type != doc.StringType || (t.String != "date" && t.String != "timestamp") {
			return nil, errs.BadValuef("The '$type' string field is required to be 'date' or 'timestamp'")
		}
		c.kind = t.String
	default:
		return nil, errs.BadValuef("%s is not valid type for $currentDate. Please use a boolean ('true') or a $type expression ({$type: 'timestamp/date'}).", arg.Type)
	}
	return c, nil
}

type currentDateOp struct {
	op
	kind string
}

// Apply writes the current time: dates as RFC 3339 strings, timestamps as
// integer seconds since the epoch.
func (s currentDateOp) Apply(ctx *Context, document *doc.Node, path string) error {
	now := ctx.Now().UTC()
	if s.kind == "timestamp" {
		return doc.SetPath(document, path, doc.FromInt(now.Unix()))
	}
	return doc.SetPath(document, path, doc.FromString(now.Format(time.RFC3339)))
}
