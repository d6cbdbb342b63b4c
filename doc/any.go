package doc

import (
	"fmt"
	"sort"
)

// ToAny converts a node to plain Go values (map[string]any, []any, scalars),
// for handing documents to code that does not know about nodes, such as
// expression evaluators and JSON marshalling. Object field order is lost.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i := range node.Fields {
			res[node.Fields[i]] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		return *node.Float64
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts plain Go values to a node. Maps produce objects with
// sorted field order since Go maps have none.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		if x <= 1<<63-1 {
			return FromInt(int64(x)), nil
		}
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case []any:
		res := make([]*Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res[i] = n
		}
		return FromSlice(res), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		res := Object()
		for _, k := range keys {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			res.Set(k, n)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to a document node", v)
	}
}
