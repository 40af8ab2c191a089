package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/KimNorgaard/go-pomtoml"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	LogLevel  string `cli:"name=log-level desc='log level: debug, info, warn, error' default=warn"`
	LogFormat string `cli:"name=log-format desc='log format: text or json' default=text"`
	Color     bool   `cli:"name=color desc='color diagnostics (default: when stdout is a terminal)'"`

	Logger *slog.Logger

	Main *cli.Command
}

// setup builds the logger and decides on color once the global options
// are parsed.
func (cfg *MainConfig) setup(cc *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("%w: -log-level %q", cli.ErrUsage, cfg.LogLevel)
	}
	hOpts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "text", "":
		cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, hOpts))
	case "json":
		cfg.Logger = slog.New(slog.NewJSONHandler(os.Stderr, hOpts))
	default:
		return fmt.Errorf("%w: -log-format %q", cli.ErrUsage, cfg.LogFormat)
	}
	color.NoColor = !cfg.colorize(cc.Out)
	return nil
}

func (cfg *MainConfig) colorize(w io.Writer) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return cfg.Color
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) readOpts(strict bool) []pomtoml.Option {
	return []pomtoml.Option{
		pomtoml.Strict(strict),
		pomtoml.WithLogger(cfg.Logger),
	}
}

type ReadConfig struct {
	*MainConfig
	Strict bool `cli:"name=strict desc='fail on unrecognized keys'"`
	Indent int  `cli:"name=indent desc='spaces per nesting level, 0 for compact xml' default=2"`

	Format pomtoml.Format

	Read *cli.Command
}

func (cfg *ReadConfig) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := pomtoml.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Format = f
		return f, nil
	})
}

type CheckConfig struct {
	*MainConfig
	Strict bool `cli:"name=strict desc='fail on unrecognized keys'"`

	Check *cli.Command
}

type LocateConfig struct {
	*MainConfig

	Locate *cli.Command
}
