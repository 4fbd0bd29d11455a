package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "gproj").
		WithSynopsis("gproj [opts] command [opts]").
		WithDescription("gproj inspects and edits Guerilla scene files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gprojMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			FindCommand(cfg),
			AOVCommand(cfg),
			CheckCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [-p] [-d depth] <file> [nodepath]").
		WithDescription("view the node tree of a scene file").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> <file>").
		WithDescription("get a node or the value of a plug").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithOpts(opts...).
		WithSynopsis("set [-f edits.yaml] [-m merge.json] [-p patch.json] [-n] [-i] <file> [plugpath=literal ...]").
		WithDescription("set plug values, changing only their literals").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithOpts(opts...).
		WithSynopsis("find [-id] <expr> <file>").
		WithDescription("list nodes matching an expression").
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
}

func AOVCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AOVConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.AOV, "aov").
		WithSynopsis("aov <pass> <layer> <label> <file>").
		WithDescription("find the render output of a layer by its label").
		WithRun(func(cc *cli.Context, args []string) error {
			return aov(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithOpts(opts...).
		WithSynopsis("check [-strict] <files>").
		WithDescription("check scene files").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}
