// Package parse decodes documents from YAML or relaxed JSON text into doc
// nodes, preserving object field order.
//
// Since YAML is a superset of JSON, mongo-shell style literals parse
// directly:
//
//	parse.MustParse("values: [10, 30, 20, 40]")
//	parse.MustParse(`{grades: [{x: [1, 2, 3]}, {x: [3, 4, 5]}]}`)
package parse

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/mondoc/go-mondoc/doc"
)

func Parse(d []byte) (*doc.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("error decoding document: %w", err)
	}
	if v == nil {
		if strings.TrimSpace(string(d)) == "" {
			return doc.Object(), nil
		}
		return doc.Null(), nil
	}
	return fromYAML(v)
}

// MustParse is Parse for literals; it panics on malformed input.
func MustParse(s string) *doc.Node {
	n, err := Parse([]byte(s))
	if err != nil {
		panic(err)
	}
	return n
}

func fromYAML(v any) (*doc.Node, error) {
	switch x := v.(type) {
	case nil:
		return doc.Null(), nil
	case bool:
		return doc.FromBool(x), nil
	case string:
		return doc.FromString(x), nil
	case int:
		return doc.FromInt(int64(x)), nil
	case int64:
		return doc.FromInt(x), nil
	case uint64:
		if x <= 1<<63-1 {
			return doc.FromInt(int64(x)), nil
		}
		return doc.FromFloat(float64(x)), nil
	case float64:
		return doc.FromFloat(x), nil
	case []any:
		elts := make([]*doc.Node, len(x))
		for i, e := range x {
			n, err := fromYAML(e)
			if err != nil {
				return nil, err
			}
			elts[i] = n
		}
		return doc.FromSlice(elts), nil
	case yaml.MapSlice:
		res := doc.Object()
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			n, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(key, n)
		}
		return res, nil
	case map[string]any:
		// UseOrderedMap yields MapSlice; this arm keeps plain decoders working.
		n, err := doc.FromAny(x)
		if err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, fmt.Errorf("unsupported document value %T", v)
	}
}
