// Package mondoc matches and updates documents with a MongoDB-compatible
// query and update-operator language.
package mondoc

import (
	"strings"

	"github.com/mondoc/go-mondoc/debug"
	"github.com/mondoc/go-mondoc/doc"
	"github.com/mondoc/go-mondoc/errs"
	"github.com/mondoc/go-mondoc/matchop"
)

// MatchFunc evaluates a query document against a candidate value. It is the
// injection point for code that wants matching behavior other than Match.
type MatchFunc = matchop.MatchFunc

// Match reports whether document satisfies query. A query is an object whose
// keys are dotted field paths bound to literal values or operator documents,
// or operator names ($and, $or, $nor, $where, or a bare operator document
// such as {$gt: 20} evaluated against the document itself).
func Match(document, query *doc.Node) (bool, error) {
	if debug.Match() {
		debug.Logf("match %v against %v\n", document, query)
	}
	switch query.Type {
	case doc.NullType:
		return true, nil
	case doc.ObjectType:
	default:
		return false, errs.BadValuef("query must be an object, got %s", query.Type)
	}
	if matchop.IsOperatorDoc(query) {
		return matchop.ApplyOps(document, query, Match)
	}
	for i := range query.Fields {
		field := query.Fields[i]
		cond := query.Values[i]
		var (
			m   bool
			err error
		)
		switch {
		case field == "$and":
			m, err = matchEvery(document, cond)
		case field == "$or":
			m, err = matchAny(document, cond)
		case field == "$nor":
			m, err = matchAny(document, cond)
			m = !m
		case strings.HasPrefix(field, "$"):
			m, err = matchop.ApplyOps(document, doc.Object().Set(field, cond), Match)
		default:
			m, err = matchPath(document, strings.Split(field, "."), cond)
		}
		if err != nil {
			return false, err
		}
		if !m {
			return false, nil
		}
	}
	return true, nil
}

func matchEvery(document, queries *doc.Node) (bool, error) {
	if queries.Type != doc.ArrayType {
		return false, errs.BadValuef("$and/$or/$nor must be an array")
	}
	for _, q := range queries.Values {
		m, err := Match(document, q)
		if err != nil {
			return false, err
		}
		if !m {
			return false, nil
		}
	}
	return true, nil
}

func matchAny(document, queries *doc.Node) (bool, error) {
	if queries.Type != doc.ArrayType {
		return false, errs.BadValuef("$and/$or/$nor must be an array")
	}
	for _, q := range queries.Values {
		m, err := Match(document, q)
		if err != nil {
			return false, err
		}
		if m {
			return true, nil
		}
	}
	return false, nil
}

// matchPath walks the dotted field path through value and evaluates cond at
// its end. A nil value means the path is missing, which still matches null
// equality and {$exists: false}. Arrays broadcast: a path segment that is
// not an index applies to every object element, matching if any does.
func matchPath(value *doc.Node, segs []string, cond *doc.Node) (bool, error) {
	if len(segs) == 0 {
		return matchValue(value, cond)
	}
	if value == nil {
		return matchValue(nil, cond)
	}
	seg := segs[0]
	switch value.Type {
	case doc.ObjectType:
		return matchPath(doc.Get(value, seg), segs[1:], cond)
	case doc.ArrayType:
		if i, ok := doc.ParseIndex(seg); ok {
			return matchPath(value.Index(i), segs[1:], cond)
		}
		for _, elt := range value.Values {
			if elt.Type != doc.ObjectType {
				continue
			}
			m, err := matchPath(elt, segs, cond)
			if err != nil {
				return false, err
			}
			if m {
				return true, nil
			}
		}
		return false, nil
	default:
		return matchValue(nil, cond)
	}
}

// matchValue evaluates a leaf condition: an operator document applies its
// operators, anything else is equality, with the usual any-element semantics
// when the value is an array.
func matchValue(value, cond *doc.Node) (bool, error) {
	if cond.Type == doc.ObjectType && matchop.IsOperatorDoc(cond) {
		return matchop.ApplyOps(value, cond, Match)
	}
	if value == nil {
		return cond.Type == doc.NullType, nil
	}
	if doc.Compare(value, cond) == 0 {
		return true, nil
	}
	if value.Type == doc.ArrayType && cond.Type != doc.ArrayType {
		for _, elt := range value.Values {
			if doc.Compare(elt, cond) == 0 {
				return true, nil
			}
		}
	}
	return false, nil
}
