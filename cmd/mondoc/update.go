package main

import (
	"fmt"

	"github.com/mondoc/go-mondoc"
	"github.com/mondoc/go-mondoc/doc"
	"github.com/mondoc/go-mondoc/parse"
	"github.com/mondoc/go-mondoc/updateop"

	"github.com/scott-cotton/cli"
)

func update(cfg *UpdateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Update.Parse(cc, args)
	if err != nil {
		cfg.Update.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Ops {
		fmt.Fprintf(cc.Out, "available update modifiers:\n")
		for _, s := range sortedNames(updateop.Symbols()) {
			fmt.Fprintf(cc.Out, "\t- %s\n", s)
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: update requires 1 argument, an update document", cli.ErrUsage)
	}
	upd, err := getish(cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding update: %w", err)
	}
	query, err := queryDoc(cfg.Query)
	if err != nil {
		return err
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		docs, err := readDocs(cc, file)
		if err != nil {
			return fmt.Errorf("error updating %s: %w", file, err)
		}
		res := make([]*doc.Node, 0, len(docs))
		for _, y := range docs {
			out, err := mondoc.ApplyUpdate(y, upd, query)
			if err != nil {
				return fmt.Errorf("error updating %s: %w", file, err)
			}
			if cfg.Diff {
				d := mondoc.DiffText(y, out)
				if colorOut(cfg.MainConfig, cc.Out) {
					d = mondoc.DiffPretty(y, out)
				}
				fmt.Fprintln(cc.Out, d)
				continue
			}
			res = append(res, out)
		}
		if cfg.Diff {
			continue
		}
		if err := writeDocs(cfg.MainConfig, cc, res); err != nil {
			return err
		}
	}
	return nil
}

func queryDoc(q string) (*doc.Node, error) {
	if q == "" {
		return doc.Object(), nil
	}
	query, err := parse.Parse([]byte(q))
	if err != nil {
		return nil, fmt.Errorf("error decoding query: %w", err)
	}
	return query, nil
}
