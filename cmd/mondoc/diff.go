package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mondoc/go-mondoc"
	"github.com/mondoc/go-mondoc/doc"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	var d string
	if colorOut(cfg.MainConfig, cc.Out) {
		d = mondoc.DiffPretty(a, b)
	} else {
		d = mondoc.DiffText(a, b)
	}
	if _, err := io.WriteString(cc.Out, d+"\n"); err != nil {
		return err
	}
	if doc.Compare(a, b) != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func colorOut(cfg *MainConfig, w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
