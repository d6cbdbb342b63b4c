package doc

import (
	"strconv"
	"strings"

	"github.com/mondoc/go-mondoc/errs"
)

// GetPath navigates a concrete dotted path (field names and zero-based array
// indices, e.g. "a.b.0.c") and returns the node there, or nil when any step
// is missing.
func GetPath(y *Node, path string) *Node {
	if path == "" {
		return y
	}
	res := y
	for _, seg := range strings.Split(path, ".") {
		if res == nil {
			return nil
		}
		switch res.Type {
		case ObjectType:
			res = Get(res, seg)
		case ArrayType:
			i, ok := ParseIndex(seg)
			if !ok {
				return nil
			}
			res = res.Index(i)
		default:
			return nil
		}
	}
	return res
}

// SetPath assigns val at a concrete dotted path, creating intermediate
// objects for missing fields and padding arrays with nulls when an index
// lies beyond the current length. It fails when an existing intermediate is
// a scalar, or when an object is indexed with a non-numeric segment's array
// position.
func SetPath(y *Node, path string, val *Node) error {
	segs := strings.Split(path, ".")
	cur := y
	for i, seg := range segs {
		last := i == len(segs)-1
		switch cur.Type {
		case ObjectType:
			if last {
				cur.Set(seg, val)
				return nil
			}
			next := Get(cur, seg)
			if next == nil {
				next = containerFor(segs[i+1])
				cur.Set(seg, next)
			}
			cur = next
		case ArrayType:
			idx, ok := ParseIndex(seg)
			if !ok {
				return errs.PathNotViablef(
					"cannot use part %q to traverse array element at '%s'",
					seg, strings.Join(segs[:i], "."))
			}
			for cur.Len() <= idx {
				cur.Values = append(cur.Values, Null())
			}
			if last {
				cur.Values[idx] = val
				return nil
			}
			next := cur.Values[idx]
			if next.Type == NullType {
				next = containerFor(segs[i+1])
				cur.Values[idx] = next
			}
			cur = next
		default:
			return errs.PathNotViablef(
				"cannot create field %q in element of type %s at '%s'",
				seg, cur.Type, strings.Join(segs[:i], "."))
		}
	}
	return nil
}

// UnsetPath removes the leaf of a concrete dotted path. Removing an array
// element replaces it with null so sibling indices keep their positions.
// Missing paths are a no-op.
func UnsetPath(y *Node, path string) {
	segs := strings.Split(path, ".")
	parent := y
	if len(segs) > 1 {
		parent = GetPath(y, strings.Join(segs[:len(segs)-1], "."))
	}
	if parent == nil {
		return
	}
	leaf := segs[len(segs)-1]
	switch parent.Type {
	case ObjectType:
		parent.Delete(leaf)
	case ArrayType:
		if i, ok := ParseIndex(leaf); ok && i < parent.Len() {
			parent.Values[i] = Null()
		}
	}
}

// containerFor picks the container type to create for a missing
// intermediate, based on the segment that will address into it.
func containerFor(nextSeg string) *Node {
	if _, ok := ParseIndex(nextSeg); ok {
		return Array()
	}
	return Object()
}

// JoinPath joins prefix segments into a dotted concrete path.
func JoinPath(segs []string) string {
	return strings.Join(segs, ".")
}

// IndexSegment renders an array index as a path segment.
func IndexSegment(i int) string {
	return strconv.Itoa(i)
}
