package main

import (
	"fmt"
	"os"

	"github.com/KimNorgaard/go-pomtoml"
	"github.com/KimNorgaard/go-pomtoml/model"

	"github.com/scott-cotton/cli"
)

func read(cfg *ReadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Read.Parse(cc, args)
	if err != nil {
		cfg.Read.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"."}
	}
	p := pomtoml.NewProcessor(nil)
	enc := pomtoml.NewEncoder(cc.Out, pomtoml.EncodeFormat(cfg.Format), pomtoml.Indent(cfg.Indent))
	for i, arg := range args {
		m, err := readArg(p, arg, cfg.readOpts(cfg.Strict)...)
		if err != nil {
			return err
		}
		if i > 0 && cfg.Format == pomtoml.FormatYAML {
			fmt.Fprintln(cc.Out, "---")
		}
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}

// readArg reads arg as a descriptor file, as a project directory, or from
// stdin when arg is "-".
func readArg(p *pomtoml.Processor, arg string, opts ...pomtoml.Option) (*model.Model, error) {
	if arg == "-" {
		return p.Read(os.Stdin, append(opts, pomtoml.Source(pomtoml.TOMLDescriptor))...)
	}
	name, err := resolve(p, arg)
	if err != nil {
		return nil, err
	}
	return p.ReadFile(name, opts...)
}

func resolve(p *pomtoml.Processor, arg string) (string, error) {
	fi, err := os.Stat(arg)
	if err != nil {
		return "", err
	}
	if fi.IsDir() {
		return p.Locate(arg), nil
	}
	return arg, nil
}
