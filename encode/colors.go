package encode

import (
	"github.com/fatih/color"

	"github.com/mondoc/go-mondoc/doc"
)

// Colors maps node types to sprintf-style coloring functions for scalar
// values; Field colors object keys.
type Colors struct {
	Field func(string, ...any) string
	Map   map[doc.Type]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Field: color.RGB(196, 96, 16).SprintfFunc(),
		Map: map[doc.Type]func(string, ...any) string{
			doc.NumberType: color.RGB(128, 216, 236).SprintfFunc(),
			doc.StringType: color.GreenString,
			doc.BoolType:   color.CyanString,
			doc.NullType:   color.RGB(168, 0, 196).SprintfFunc(),
		},
	}
}
