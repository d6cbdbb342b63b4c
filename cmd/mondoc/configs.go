package main

import (
	"io"
	"os"

	"github.com/mondoc/go-mondoc/encode"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	String bool `cli:"name=s desc='consider query a string argument'"`
	File   bool `cli:"name=f desc='consider query a file path'"`
	Ops    bool `cli:"name=ops desc='show available query operators'"`
}

type UpdateConfig struct {
	*MainConfig

	Query  string `cli:"name=q desc='update command query, may contain arrayFilters'"`
	String bool   `cli:"name=s desc='consider update a string argument'"`
	File   bool   `cli:"name=f desc='consider update a file path'"`
	Ops    bool   `cli:"name=ops desc='show available update modifiers'"`
	Diff   bool   `cli:"name=diff desc='show a diff of each document instead of the result'"`

	Update *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Query string `cli:"name=q desc='update command query, may contain arrayFilters'"`

	Keys *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}
