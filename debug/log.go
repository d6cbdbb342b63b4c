package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/mondoc/go-mondoc/doc"
	"github.com/mondoc/go-mondoc/encode"
)

var out io.Writer = os.Stderr

func Logf(msg string, args ...any) {
	for i := range args {
		if n, ok := args[i].(*doc.Node); ok {
			if n == nil {
				args[i] = "<missing>"
				continue
			}
			args[i] = encode.MustString(n)
		}
	}
	fmt.Fprintf(out, msg, args...)
}
