package mondoc

import (
	"time"

	"github.com/mondoc/go-mondoc/debug"
	"github.com/mondoc/go-mondoc/doc"
	"github.com/mondoc/go-mondoc/errs"
	"github.com/mondoc/go-mondoc/updateop"
	"github.com/mondoc/go-mondoc/upath"
)

type UpdateOpt func(*updateConfig)

type updateConfig struct {
	matcher MatchFunc
	now     func() time.Time
}

// WithUpdateMatcher substitutes the predicate matcher used for arrayFilters
// expansion and $pull conditions.
func WithUpdateMatcher(mf MatchFunc) UpdateOpt {
	return func(c *updateConfig) { c.matcher = mf }
}

// WithClock substitutes the clock read by $currentDate.
func WithClock(now func() time.Time) UpdateOpt {
	return func(c *updateConfig) { c.now = now }
}

// ApplyUpdate applies an operator-style update document to a copy of
// document and returns the result; document itself is never mutated. query
// supplies the update command's arrayFilters, which resolve the positional
// tokens of update paths.
func ApplyUpdate(document, update, query *doc.Node, opts ...UpdateOpt) (*doc.Node, error) {
	cfg := &updateConfig{matcher: Match, now: time.Now}
	for _, opt := range opts {
		opt(cfg)
	}
	af, err := ParseArrayFilters(query, update, WithMatcher(cfg.matcher))
	if err != nil {
		return nil, err
	}
	if update == nil || update.Type != doc.ObjectType {
		return nil, errs.FailedToParsef("Update argument must be an object")
	}
	res := doc.Object()
	if document != nil && document.Type == doc.ObjectType {
		res = document.Clone()
	}
	ctx := updateop.NewContext(cfg.matcher)
	ctx.Now = cfg.now
	for i := range update.Fields {
		opName := update.Fields[i]
		opDoc := update.Values[i]
		sym := updateop.Lookup(opName)
		if sym == nil {
			return nil, errs.FailedToParsef(
				"Unknown modifier: %s. Expected a valid update modifier or pipeline-style update specified as an array",
				opName)
		}
		if opDoc.Type != doc.ObjectType {
			return nil, errs.FailedToParsef(
				"Modifiers operate on fields but we found type %s instead. For example: {%s: {<field>: ...}}",
				opDoc.Type, opName)
		}
		if err := applyModifier(ctx, af, res, sym, opDoc); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func applyModifier(ctx *updateop.Context, af *ArrayFilters, res *doc.Node, sym updateop.Symbol, opDoc *doc.Node) error {
	for j := range opDoc.Fields {
		path := opDoc.Fields[j]
		inst, err := sym.Instance(opDoc.Values[j])
		if err != nil {
			return err
		}
		keys := []string{path}
		if upath.HasPositional(path) {
			keys, err = af.CalculateKeys(res, path)
			if err != nil {
				return err
			}
		}
		for _, key := range keys {
			if debug.Update() {
				debug.Logf("%s %s on %v\n", sym, key, res)
			}
			if err := inst.Apply(ctx, res, key); err != nil {
				return err
			}
		}
	}
	return nil
}
