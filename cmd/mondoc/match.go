package main

import (
	"fmt"
	"sort"

	"github.com/mondoc/go-mondoc"
	"github.com/mondoc/go-mondoc/doc"
	"github.com/mondoc/go-mondoc/matchop"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Ops {
		fmt.Fprintf(cc.Out, "available query operators:\n")
		for _, s := range sortedNames(matchop.Symbols()) {
			fmt.Fprintf(cc.Out, "\t- %s\n", s)
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a query document", cli.ErrUsage)
	}
	query, err := getish(cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding query: %w", err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		docs, err := readDocs(cc, file)
		if err != nil {
			return fmt.Errorf("error matching %s: %w", file, err)
		}
		var res []*doc.Node
		for _, y := range docs {
			m, err := mondoc.Match(y, query)
			if err != nil {
				return fmt.Errorf("error matching %s: %w", file, err)
			}
			if m {
				res = append(res, y)
			}
		}
		if err := writeDocs(cfg.MainConfig, cc, res); err != nil {
			return err
		}
	}
	return nil
}

func sortedNames[S fmt.Stringer](syms []S) []string {
	res := make([]string, 0, len(syms))
	for _, s := range syms {
		res = append(res, s.String())
	}
	sort.Strings(res)
	return res
}
