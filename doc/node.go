// Package doc provides the document value model: a recursive tagged union of
// null, bool, number, string, array and object nodes.
//
// Objects keep their fields in insertion order, as document databases do.
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there are always as many fields as values. ArrayType nodes use Values only.
//
// Numbers are placed under Int64 or Float64; an object is never both.
package doc

import "strconv"

type Node struct {
	Type Type

	// Fields holds object keys, parallel to Values. Empty for arrays.
	Fields []string
	// Values holds object field values or array elements.
	Values []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func Object() *Node {
	return &Node{Type: ObjectType}
}

func Array(elts ...*Node) *Node {
	return &Node{
		Type:   ArrayType,
		Values: elts,
	}
}

func FromSlice(elts []*Node) *Node {
	return &Node{
		Type:   ArrayType,
		Values: elts,
	}
}

func (y *Node) Clone() *Node {
	res := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
	}
	if y.Float64 != nil {
		f := *y.Float64
		res.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		res.Int64 = &i
	}
	if y.Fields != nil {
		res.Fields = make([]string, len(y.Fields))
		copy(res.Fields, y.Fields)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			res.Values[i] = yv.Clone()
		}
	}
	return res
}

// Get returns the value of the named object field, or nil.
func Get(y *Node, field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	for i := range y.Fields {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

func Has(y *Node, field string) bool {
	if y.Type != ObjectType {
		return false
	}
	for i := range y.Fields {
		if y.Fields[i] == field {
			return true
		}
	}
	return false
}

// Set sets the named object field, replacing an existing value in place or
// appending a new field at the end. Returns y for chaining.
func (y *Node) Set(field string, v *Node) *Node {
	for i := range y.Fields {
		if y.Fields[i] == field {
			y.Values[i] = v
			return y
		}
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
	return y
}

// Delete removes the named object field, preserving the order of the rest.
// It reports whether the field was present.
func (y *Node) Delete(field string) bool {
	for i := range y.Fields {
		if y.Fields[i] != field {
			continue
		}
		y.Fields = append(y.Fields[:i], y.Fields[i+1:]...)
		y.Values = append(y.Values[:i], y.Values[i+1:]...)
		return true
	}
	return false
}

// Len returns the number of array elements or object fields.
func (y *Node) Len() int {
	return len(y.Values)
}

// Index returns the i-th array element, or nil when out of range.
func (y *Node) Index(i int) *Node {
	if y.Type != ArrayType || i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i]] = node.Values[i]
	}
	return res
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// ParseIndex reports whether s is a non-negative decimal integer usable as
// an array index, returning the index.
func ParseIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
