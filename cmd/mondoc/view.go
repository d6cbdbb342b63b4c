package main

import (
	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		docs, err := readDocs(cc, file)
		if err != nil {
			return err
		}
		if err := writeDocs(cfg.MainConfig, cc, docs); err != nil {
			return err
		}
	}
	return nil
}
