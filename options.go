package pomtoml

import (
	"fmt"
	"log/slog"
	"strings"
)

// Option configures a read or write operation.
type Option func(*options) error

// Keys understood by OptionsFromMap.
const (
	StrictKey = "org.apache.maven.model.io.isStrict"
	SourceKey = "org.apache.maven.model.building.source"
)

const (
	defaultMaxDepth = 1000
	defaultIndent   = 2
)

type options struct {
	strict    bool
	source    string
	logger    *slog.Logger
	onWarning func(error)
	maxDepth  int
	indent    *int
	format    Format
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		logger:   slog.New(slog.DiscardHandler),
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Strict makes unrecognized keys fatal. By default they are reported to
// the warning callback and the logger and otherwise skipped.
func Strict(strict bool) Option {
	return func(o *options) error {
		o.strict = strict
		return nil
	}
}

// Source names the descriptor being read. A Processor uses its extension
// to pick a reader; errors and log records mention it.
func Source(name string) Option {
	return func(o *options) error {
		o.source = name
		return nil
	}
}

// WithLogger sets the logger used for diagnostics. Nothing is logged by
// default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) error {
		if l == nil {
			return fmt.Errorf("pomtoml: logger must not be nil")
		}
		o.logger = l
		return nil
	}
}

// OnWarning registers fn to receive every non-fatal diagnostic: a
// *KeyError for each skipped key in lenient mode and a *Deprecation for
// each deprecated spelling.
func OnWarning(fn func(error)) Option {
	return func(o *options) error {
		o.onWarning = fn
		return nil
	}
}

// MaxDepth returns an Option that sets the maximum nesting depth accepted
// in free-form sections such as plugin configuration and properties. This
// helps prevent stack overflows on hostile input.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("pomtoml: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// Indent sets the number of spaces used per nesting level by an Encoder.
// Zero produces compact XML; YAML output always indents.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("pomtoml: indent must not be negative")
		}
		o.indent = &n
		return nil
	}
}

// EncodeFormat selects the output format of an Encoder.
func EncodeFormat(f Format) Option {
	return func(o *options) error {
		if f != FormatYAML && f != FormatXML {
			return fmt.Errorf("pomtoml: unknown format %d", f)
		}
		o.format = f
		return nil
	}
}

// OptionsFromMap converts a configuration bag keyed by StrictKey and
// SourceKey into options. The strict value may be a bool or a string,
// where only a case-insensitive "true" enables strict mode. The source
// value may be a string or a fmt.Stringer. Other keys are ignored.
func OptionsFromMap(bag map[string]any) ([]Option, error) {
	var opts []Option
	if v, ok := bag[StrictKey]; ok {
		switch v := v.(type) {
		case bool:
			opts = append(opts, Strict(v))
		case string:
			opts = append(opts, Strict(strings.EqualFold(strings.TrimSpace(v), "true")))
		case nil:
		default:
			return nil, fmt.Errorf("pomtoml: option %s: unsupported value of type %T", StrictKey, v)
		}
	}
	if v, ok := bag[SourceKey]; ok {
		switch v := v.(type) {
		case string:
			opts = append(opts, Source(v))
		case fmt.Stringer:
			opts = append(opts, Source(v.String()))
		case nil:
		default:
			return nil, fmt.Errorf("pomtoml: option %s: unsupported value of type %T", SourceKey, v)
		}
	}
	return opts, nil
}
