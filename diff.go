package mondoc

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/mondoc/go-mondoc/doc"
	"github.com/mondoc/go-mondoc/encode"
)

// DiffText renders a character-level diff of two documents in shell style,
// marking removals with [-...] and insertions with [+...].
func DiffText(a, b *doc.Node) string {
	var sb strings.Builder
	for _, d := range diffDocs(a, b) {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-")
			sb.WriteString(d.Text)
			sb.WriteString("]")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("[+")
			sb.WriteString(d.Text)
			sb.WriteString("]")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

// DiffPretty is DiffText with ANSI colors instead of markers.
func DiffPretty(a, b *doc.Node) string {
	dmp := diffmatchpatch.New()
	return dmp.DiffPrettyText(diffDocs(a, b))
}

func diffDocs(a, b *doc.Node) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(encode.MustString(a), encode.MustString(b), false)
	return dmp.DiffCleanupSemantic(diffs)
}
