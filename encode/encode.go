// Package encode renders doc nodes in compact shell style: bare object keys,
// single-space padded braces, double-quoted strings.
//
//	{ $set: { a.b: 20 } }
//	[ 1, 2, 3 ]
//
// This is the rendering used in protocol error messages and by the CLI.
package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mondoc/go-mondoc/doc"
)

func Encode(node *doc.Node, w io.Writer, options ...EncodeOption) error {
	o := &opts{}
	for _, opt := range options {
		opt(o)
	}
	var sb strings.Builder
	encode(&sb, node, o)
	_, err := io.WriteString(w, sb.String())
	return err
}

func encode(sb *strings.Builder, node *doc.Node, o *opts) {
	switch node.Type {
	case doc.ObjectType:
		if len(node.Fields) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{ ")
		for i := range node.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(o.field(node.Fields[i]))
			sb.WriteString(": ")
			encode(sb, node.Values[i], o)
		}
		sb.WriteString(" }")
	case doc.ArrayType:
		if len(node.Values) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[ ")
		for i, elt := range node.Values {
			if i > 0 {
				sb.WriteString(", ")
			}
			encode(sb, elt, o)
		}
		sb.WriteString(" ]")
	case doc.StringType:
		sb.WriteString(o.scalar(doc.StringType, strconv.Quote(node.String)))
	case doc.NumberType:
		if node.Int64 != nil {
			sb.WriteString(o.scalar(doc.NumberType, strconv.FormatInt(*node.Int64, 10)))
			return
		}
		sb.WriteString(o.scalar(doc.NumberType, strconv.FormatFloat(*node.Float64, 'g', -1, 64)))
	case doc.BoolType:
		sb.WriteString(o.scalar(doc.BoolType, strconv.FormatBool(node.Bool)))
	case doc.NullType:
		sb.WriteString(o.scalar(doc.NullType, "null"))
	default:
		sb.WriteString(fmt.Sprintf("<%s>", node.Type))
	}
}
