package main

import (
	"fmt"

	"github.com/KimNorgaard/go-pomtoml"

	"github.com/scott-cotton/cli"
)

func locate(cfg *LocateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Locate.Parse(cc, args)
	if err != nil {
		cfg.Locate.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"."}
	}
	p := pomtoml.NewProcessor(nil)
	for _, dir := range args {
		fmt.Fprintln(cc.Out, p.Locate(dir))
	}
	return nil
}
