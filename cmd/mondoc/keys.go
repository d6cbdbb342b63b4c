package main

import (
	"fmt"

	"github.com/mondoc/go-mondoc"
	"github.com/mondoc/go-mondoc/doc"

	"github.com/scott-cotton/cli"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: keys requires 1 argument, an update path", cli.ErrUsage)
	}
	path := args[0]
	query, err := queryDoc(cfg.Query)
	if err != nil {
		return err
	}
	// A synthetic $set gives the path a home so the arrayFilters usage
	// check applies to it.
	upd := doc.Object()
	upd.Set("$set", doc.Object().Set(path, doc.FromInt(1)))
	af, err := mondoc.ParseArrayFilters(query, upd)
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
			return fmt.Errorf("error expanding in %s: %w", file, err)
		}
		for _, y := range docs {
			ks, err := af.CalculateKeys(y, path)
			if err != nil {
				return fmt.Errorf("error expanding %s in %s: %w", path, file, err)
			}
			for _, k := range ks {
				fmt.Fprintln(cc.Out, k)
			}
		}
	}
	return nil
}
