package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "pomtoml").
		WithSynopsis("pomtoml [opts] command [opts]").
		WithDescription("pomtoml reads TOML Maven project descriptors.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pomtomlMain(cfg, cc, args)
		}).
		WithSubs(
			ReadCommand(cfg),
			CheckCommand(cfg),
			LocateCommand(cfg))
}

func ReadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReadConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "format",
		Aliases:     []string{"f"},
		Description: "output format: yaml or xml",
		Type:        cli.NamedFuncOpt(cfg.fmtFunc(), "(format)"),
	})
	return cli.NewCommandAt(&cfg.Read, "read").
		WithAliases("r").
		WithSynopsis("read [-strict] [-format yaml|xml] [-indent n] [files|dirs]").
		WithDescription("read descriptors and print the resulting project models").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return read(cfg, cc, args)
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
		WithSynopsis("check [-strict] [files|dirs]").
		WithDescription("report warnings and errors in descriptors").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func LocateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LocateConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Locate, "locate").
		WithAliases("l").
		WithSynopsis("locate [dirs]").
		WithDescription("print the descriptor chosen for each project directory").
		WithRun(func(cc *cli.Context, args []string) error {
			return locate(cfg, cc, args)
		})
}
