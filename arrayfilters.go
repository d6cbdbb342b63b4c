package mondoc

import (
	"regexp"
	"strings"

	"github.com/mondoc/go-mondoc/debug"
	"github.com/mondoc/go-mondoc/doc"
	"github.com/mondoc/go-mondoc/encode"
	"github.com/mondoc/go-mondoc/errs"
	"github.com/mondoc/go-mondoc/upath"
)

// FilterEntry binds a filter identifier to its predicate document.
type FilterEntry struct {
	Identifier string
	Filter     *doc.Node
}

// ArrayFilters resolves the positional tokens of update paths against a
// concrete document. It is built once per update command from the command's
// arrayFilters specification, is immutable afterwards, and may be shared by
// concurrent CalculateKeys calls.
type ArrayFilters struct {
	entries []FilterEntry
	matcher MatchFunc
}

type ArrayFiltersOpt func(*ArrayFilters)

// WithMatcher substitutes the predicate matcher used to evaluate filter
// documents against array elements. The default is Match.
func WithMatcher(mf MatchFunc) ArrayFiltersOpt {
	return func(af *ArrayFilters) { af.matcher = mf }
}

var identifierRe = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)

// ParseArrayFilters reads the arrayFilters field of an update command's
// query document and validates it against the paths of the update document.
// Each arrayFilters entry is an object whose key prefixes (before the first
// dot) name the filter identifier; the suffixes form the predicate document,
// with multiple keys for one identifier merging into a single predicate.
//
// Every declared identifier must be referenced by a "$[id]" token in at
// least one update path, otherwise parsing fails.
func ParseArrayFilters(query, update *doc.Node, opts ...ArrayFiltersOpt) (*ArrayFilters, error) {
	af := &ArrayFilters{matcher: Match}
	for _, opt := range opts {
		opt(af)
	}
	var filters *doc.Node
	if query != nil && query.Type == doc.ObjectType {
		filters = doc.Get(query, "arrayFilters")
	}
	if filters == nil {
		return af, nil
	}
	if filters.Type != doc.ArrayType {
		return nil, errs.TypeMismatchf("arrayFilters must be an array, got %s", filters.Type)
	}
	for _, entry := range filters.Values {
		if entry.Type != doc.ObjectType || entry.Len() == 0 {
			return nil, errs.FailedToParsef(
				"Cannot use an expression without a top-level field name in arrayFilters")
		}
		if err := af.addEntry(entry); err != nil {
			return nil, err
		}
	}
	if err := af.validateUsage(update); err != nil {
		return nil, err
	}
	return af, nil
}

// addEntry splits each key of one arrayFilters entry into identifier and
// predicate key. Keys within one entry merge into a single predicate per
// identifier, but an identifier already declared by an earlier entry is a
// parse error.
func (af *ArrayFilters) addEntry(entry *doc.Node) error {
	local := map[string]bool{}
	for i := range entry.Fields {
		key := entry.Fields[i]
		val := entry.Values[i]
		identifier, rest, _ := strings.Cut(key, ".")
		if !identifierRe.MatchString(identifier) {
			return errs.FailedToParsef(
				"The top-level field name must be an alphanumeric string beginning with a lowercase letter, found '%s'",
				identifier)
		}
		filter := af.filterFor(identifier)
		if filter != nil && !local[identifier] {
			return errs.FailedToParsef(
				"Found multiple array filters with the same top-level field name %s", identifier)
		}
		if filter == nil {
			filter = doc.Object()
			af.entries = append(af.entries, FilterEntry{Identifier: identifier, Filter: filter})
			local[identifier] = true
		}
		if rest == "" {
			if val.Type != doc.ObjectType {
				return errs.FailedToParsef(
					"Expected the array filter for '%s' to be an object", identifier)
			}
			for j := range val.Fields {
				filter.Set(val.Fields[j], val.Values[j].Clone())
			}
			continue
		}
		filter.Set(rest, val.Clone())
	}
	return nil
}

// validateUsage fails for every declared identifier with no "$[id]" token in
// any update path, and for every path identifier with no declared filter.
func (af *ArrayFilters) validateUsage(update *doc.Node) error {
	used := map[string]bool{}
	if update != nil && update.Type == doc.ObjectType {
		for i := range update.Fields {
			opDoc := update.Values[i]
			if opDoc.Type != doc.ObjectType {
				continue
			}
			for _, path := range opDoc.Fields {
				for id := range upath.Identifiers(path) {
					used[id] = true
					if af.filterFor(id) == nil {
						return errs.BadValuef(
							"No array filter found for identifier '%s' in path '%s'",
							id, path)
					}
				}
			}
		}
	}
	for _, entry := range af.entries {
		if !used[entry.Identifier] {
			return errs.FailedToParsef(
				"The array filter for identifier '%s' was not used in the update %s",
				entry.Identifier, encode.MustString(update))
		}
	}
	return nil
}

// Values returns the identifier→predicate pairs in declaration order.
func (af *ArrayFilters) Values() []FilterEntry {
	return af.entries
}

func (af *ArrayFilters) IsEmpty() bool {
	return len(af.entries) == 0
}

func (af *ArrayFilters) filterFor(identifier string) *doc.Node {
	for _, entry := range af.entries {
		if entry.Identifier == identifier {
			return entry.Filter
		}
	}
	return nil
}

// CalculateKeys expands one update path against a document into the ordered
// list of concrete leaf paths the update applies to. "$[]" tokens retain
// every index of the array at their position; "$[id]" tokens retain the
// indices whose element matches the predicate for id. Expansion is
// depth-first and left-to-right, so indices ascend at every nesting level.
func (af *ArrayFilters) CalculateKeys(document *doc.Node, path string) ([]string, error) {
	segs := upath.Parse(path)
	if segs[0].Kind != upath.FieldKind {
		return nil, errs.BadValuef(
			"Cannot have array filter identifier (i.e. '$[<id>]') element in the first position in path '%s'",
			path)
	}
	keys, err := af.calculateKeys(document, segs, nil, path)
	if err != nil {
		return nil, err
	}
	if debug.Keys() {
		debug.Logf("path %s expanded to %v\n", path, keys)
	}
	return keys, nil
}

func (af *ArrayFilters) calculateKeys(node *doc.Node, segs []upath.Segment, prefix []string, path string) ([]string, error) {
	if len(segs) == 0 {
		return []string{doc.JoinPath(prefix)}, nil
	}
	seg := segs[0]
	if seg.Kind == upath.FieldKind {
		// Absence of an intermediate field is carried forward: it only
		// becomes an error if a positional token needs the container.
		var next *doc.Node
		if node != nil {
			switch node.Type {
			case doc.ObjectType:
				next = doc.Get(node, seg.Field)
			case doc.ArrayType:
				if i, ok := doc.ParseIndex(seg.Field); ok {
					next = node.Index(i)
				}
			}
		}
		return af.calculateKeys(next, segs[1:], branch(prefix, seg.Field), path)
	}

	if node == nil {
		return nil, errs.BadValuef(
			"The path '%s' must exist in the document in order to apply array updates.",
			doc.JoinPath(prefix))
	}
	if node.Type != doc.ArrayType {
		return nil, errs.BadValuef(
			"Cannot apply array updates to non-array element %s: %s",
			prefix[len(prefix)-1], encode.MustString(node))
	}
	var filter *doc.Node
	if seg.Kind == upath.FilterKind {
		filter = af.filterFor(seg.Identifier)
		if filter == nil {
			return nil, errs.BadValuef(
				"No array filter found for identifier '%s' in path '%s'",
				seg.Identifier, path)
		}
	}
	var res []string
	for i, elt := range node.Values {
		if filter != nil {
			m, err := af.matcher(elt, filter)
			if err != nil {
				return nil, err
			}
			if !m {
				continue
			}
		}
		sub, err := af.calculateKeys(elt, segs[1:], branch(prefix, doc.IndexSegment(i)), path)
		if err != nil {
			return nil, err
		}
		res = append(res, sub...)
	}
	return res, nil
}

// branch extends a prefix into a fresh slice so sibling recursion branches
// never share backing storage.
func branch(prefix []string, seg string) []string {
	next := make([]string, len(prefix)+1)
	copy(next, prefix)
	next[len(prefix)] = seg
	return next
}
