package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "mondoc").
		WithSynopsis("mondoc [opts] command [opts]").
		WithDescription("mondoc is a tool for querying and updating documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmt.Errorf("%w: expected a command", cli.ErrUsage)
		}).
		WithSubs(
			ViewCommand(cfg),
			MatchCommand(cfg),
			UpdateCommand(cfg),
			KeysCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("render document files in shell style").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "match").
		WithAliases("m").
		WithSynopsis("match [opts] <query> [files]").
		WithDescription("match documents against a query document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}

func UpdateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UpdateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("update").
		WithAliases("u", "up").
		WithSynopsis("update [opts] <update> [files]").
		WithDescription("apply an operator-style update to documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return update(cfg, cc, args)
		})
	cfg.Update = cmd
	return cmd
}

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeysConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("keys").
		WithAliases("k").
		WithSynopsis("keys [opts] <path> [files]").
		WithDescription("expand an update path against documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		})
	cfg.Keys = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("diff two document files").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [opts] <jsonpatch> <file>").
		WithDescription("apply an RFC 6902 patch to a document file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
