package pomtoml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/KimNorgaard/go-pomtoml/model"
)

// Format selects the textual view an Encoder produces.
type Format int

const (
	// FormatYAML writes the model as YAML using the yaml field tags.
	FormatYAML Format = iota
	// FormatXML writes the model as a pom.xml document.
	FormatXML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatXML:
		return "xml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat returns the format named s, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "xml", "pom":
		return FormatXML, nil
	}
	return 0, fmt.Errorf("pomtoml: unknown format %q", s)
}

// Encoder writes project models to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes m to the stream in the configured format.
func (e *Encoder) Encode(m *model.Model) error {
	if m == nil {
		return fmt.Errorf("pomtoml: Encode(nil model)")
	}
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}
	indent := defaultIndent
	if o.indent != nil {
		indent = *o.indent
	}

	switch o.format {
	case FormatXML:
		return encodeXML(e.w, m, indent)
	default:
		if indent == 0 {
			indent = defaultIndent
		}
		enc := yaml.NewEncoder(e.w, yaml.Indent(indent))
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("pomtoml: %w", err)
		}
		return enc.Close()
	}
}

func encodeXML(w io.Writer, m *model.Model, indent int) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	if indent > 0 {
		enc.Indent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("pomtoml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Marshal returns the encoding of m.
func Marshal(m *model.Model, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
