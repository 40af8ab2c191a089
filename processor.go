package pomtoml

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/KimNorgaard/go-pomtoml/model"
)

// Descriptor file names tried by Locate, in order.
const (
	TOMLDescriptor = "pom.toml"
	XMLDescriptor  = "pom.xml"
)

// A Reader turns a descriptor stream into a project model.
type Reader interface {
	Read(r io.Reader, opts ...Option) (*model.Model, error)
}

// Processor dispatches descriptors by source name: names ending in
// ".toml" are transcoded, everything else is handed to the fallback
// reader. A Processor holds no per-call state and is safe for concurrent
// use.
type Processor struct {
	fallback Reader
}

// NewProcessor returns a processor that delegates non-TOML sources to
// fallback. A nil fallback selects XMLReader.
func NewProcessor(fallback Reader) *Processor {
	if fallback == nil {
		fallback = XMLReader{}
	}
	return &Processor{fallback: fallback}
}

// Read reads one descriptor from r. The Source option decides which
// reader is used; without it the fallback reader is used.
func (p *Processor) Read(r io.Reader, opts ...Option) (*model.Model, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	if !isTOML(o.source) {
		o.logger.Debug("delegating to fallback reader", "source", o.source, "reader", fmt.Sprintf("%T", p.fallback))
		return p.fallback.Read(r, opts...)
	}
	o.logger.Debug("reading TOML descriptor", "source", o.source)
	return NewDecoder(r, opts...).Decode()
}

// ReadFile reads the descriptor stored in the named file and records the
// file name in the returned model.
func (p *Processor) ReadFile(name string, opts ...Option) (*model.Model, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := p.Read(f, append(opts[:len(opts):len(opts)], Source(name))...)
	if err != nil {
		return nil, err
	}
	m.PomFile = name
	return m, nil
}

// Locate returns the descriptor to read for the project in dir: pom.toml
// when it exists, pom.xml otherwise. The returned file need not exist.
func (p *Processor) Locate(dir string) string {
	toml := filepath.Join(dir, TOMLDescriptor)
	if fi, err := os.Stat(toml); err == nil && !fi.IsDir() {
		return toml
	}
	return filepath.Join(dir, XMLDescriptor)
}

func isTOML(source string) bool {
	return strings.EqualFold(filepath.Ext(source), ".toml")
}
