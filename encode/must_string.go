package encode

import (
	"bytes"
	"fmt"

	"github.com/mondoc/go-mondoc/doc"
)

// MustString renders a node to its compact shell-style string.
func MustString(node *doc.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(fmt.Sprintf("encode: %v", err))
	}
	return buf.String()
}
