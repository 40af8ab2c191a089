package main

import (
	"github.com/KimNorgaard/go-pomtoml"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

var (
	warnColor = color.New(color.FgYellow)
	failColor = color.New(color.FgRed, color.Bold)
	okColor   = color.New(color.FgGreen)
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"."}
	}
	p := pomtoml.NewProcessor(nil)
	for _, arg := range args {
		name := arg
		var warnings []error
		opts := append(cfg.readOpts(cfg.Strict), pomtoml.OnWarning(func(err error) {
			warnings = append(warnings, err)
		}))
		_, err := readArg(p, arg, opts...)
		if arg != "-" {
			if resolved, rerr := resolve(p, arg); rerr == nil {
				name = resolved
			}
		}
		for _, w := range warnings {
			warnColor.Fprintf(cc.Out, "%s: warning: %v\n", name, w)
		}
		if err != nil {
			failColor.Fprintf(cc.Out, "%s: %v\n", name, err)
			return cli.ExitCodeErr(1)
		}
		okColor.Fprintf(cc.Out, "%s: ok\n", name)
	}
	return nil
}
