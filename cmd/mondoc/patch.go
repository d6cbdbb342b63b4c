package main

import (
	"fmt"
	"io"

	"github.com/mondoc/go-mondoc"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch and a file to which to apply it", cli.ErrUsage)
	}
	p, err := getish(cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	target, err := getObjFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	res, err := mondoc.ApplyJSONPatch(target, p)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	if err := encodeOut(cfg.MainConfig, cc, res); err != nil {
		return err
	}
	_, err = io.WriteString(cc.Out, "\n")
	return err
}
