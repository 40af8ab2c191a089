package pomtoml

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/KimNorgaard/go-pomtoml/internal/mapper"
	"github.com/KimNorgaard/go-pomtoml/internal/parser"
	"github.com/KimNorgaard/go-pomtoml/model"
	"github.com/KimNorgaard/go-pomtoml/tree"
)

// Decoder reads a TOML project descriptor from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// Functional options can be provided to configure the decoding process,
// such as strict mode with the Strict option.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the whole input and transcodes it into a new model.
//
// Syntax errors are returned as *errors.ParseError. On any error the
// returned model is nil; no partially built model is exposed.
func (d *Decoder) Decode() (*model.Model, error) {
	if d.r == nil {
		return nil, fmt.Errorf("pomtoml: Decode(nil reader)")
	}
	o, err := newOptions(d.opts)
	if err != nil {
		return nil, err
	}
	doc, err := parser.Parse(d.r)
	if err != nil {
		return nil, err
	}
	return transcode(doc, o)
}

// Transcode converts an already parsed document into a model.
func Transcode(doc *tree.Table, opts ...Option) (*model.Model, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return transcode(doc, o)
}

func transcode(doc *tree.Table, o *options) (*model.Model, error) {
	logger := o.logger
	if o.source != "" {
		logger = logger.With("source", o.source)
	}
	ds := &decodeState{
		strict:    o.strict,
		logger:    logger,
		onWarning: o.onWarning,
		depth:     o.maxDepth,
	}
	ds.logger.Debug("transcoding document", "keys", doc.Len(), "strict", o.strict)

	m := &model.Model{}
	if err := decodeTable(ds, rootScope(), doc, m, rootFields, nil); err != nil {
		return nil, err
	}
	return m, nil
}

// decodeState carries the per-call policy through the handlers. Nothing in
// it is shared between calls.
type decodeState struct {
	strict    bool
	logger    *slog.Logger
	onWarning func(error)
	depth     int
}

// enter consumes one level of the depth budget. The returned func gives it
// back.
func (ds *decodeState) enter(at string) (func(), error) {
	ds.depth--
	if ds.depth <= 0 {
		ds.depth++
		return nil, fmt.Errorf("pomtoml: %w at %q", ErrMaxDepth, at)
	}
	return func() { ds.depth++ }, nil
}

// unknown applies the unrecognized-key policy to the key at path.
func (ds *decodeState) unknown(path string) error {
	err := &KeyError{Path: path}
	if ds.strict {
		return err
	}
	ds.logger.Warn("skipping unrecognized key", "path", path)
	ds.warn(err)
	return nil
}

func (ds *decodeState) deprecated(path, use string) {
	ds.logger.Warn("deprecated key", "path", path, "use", use)
	ds.warn(&Deprecation{Path: path, Use: use})
}

func (ds *decodeState) warn(err error) {
	if ds.onWarning != nil {
		ds.onWarning(err)
	}
}

// field is a canonical field action. at is the scope of the record being
// populated and key the spelling found in the document.
type field[T any] func(ds *decodeState, at scope, key string, n tree.Node, rec T) error

// decodeTable is the one routine shared by all handlers: it resolves every
// key of the table n through fields and applies the action to rec. ident,
// if not nil, names rec in error paths once its identity is known.
func decodeTable[T any](ds *decodeState, at scope, n tree.Node, rec T, fields *mapper.Table[field[T]], ident func(T) string) error {
	tbl, err := asTable(at.String(), n)
	if err != nil {
		return err
	}
	leave, err := ds.enter(at.String())
	if err != nil {
		return err
	}
	defer leave()

	if ident != nil {
		at.ident = func() string { return ident(rec) }
	}
	for _, key := range tbl.Keys() {
		v, _ := tbl.Get(key)
		f, ok := fields.Lookup(key)
		if !ok {
			if err := ds.unknown(at.key(key)); err != nil {
				return err
			}
			continue
		}
		if err := f(ds, at, key, v, rec); err != nil {
			return err
		}
	}
	return nil
}

// decoder builds one record from a table node.
type decoder[R any] func(ds *decodeState, at scope, n tree.Node) (R, error)

// text sets a string field from a string scalar.
func text[T any](set func(T, string)) field[T] {
	return func(ds *decodeState, at scope, key string, n tree.Node, rec T) error {
		s, ok := n.(*tree.String)
		if !ok {
			return shapeError(at.key(key), "string", n)
		}
		set(rec, s.Value)
		return nil
	}
}

// boolean sets a *bool field from a boolean scalar.
func boolean[T any](set func(T, *bool)) field[T] {
	return func(ds *decodeState, at scope, key string, n tree.Node, rec T) error {
		b, ok := n.(*tree.Boolean)
		if !ok {
			return shapeError(at.key(key), "boolean", n)
		}
		v := b.Value
		set(rec, &v)
		return nil
	}
}

// texts appends to a string list from one scalar or an array of scalars.
// Non-string scalars are stringified.
func texts[T any](add func(T, ...string)) field[T] {
	return func(ds *decodeState, at scope, key string, n tree.Node, rec T) error {
		values, err := stringList(at.key(key), n)
		if err != nil {
			return err
		}
		add(rec, values...)
		return nil
	}
}

// one decodes a nested record and hands it to set.
func one[T, R any](dec decoder[R], set func(T, R)) field[T] {
	return func(ds *decodeState, at scope, key string, n tree.Node, rec T) error {
		r, err := dec(ds, at.child(key), n)
		if err != nil {
			return err
		}
		set(rec, r)
		return nil
	}
}

// many decodes an array of tables, appending one record per element in
// array order.
func many[T, R any](dec decoder[R], add func(T, ...R)) field[T] {
	return func(ds *decodeState, at scope, key string, n tree.Node, rec T) error {
		arr, ok := n.(*tree.Array)
		if !ok {
			return shapeError(at.key(key), "array", n)
		}
		list := at.child(key)
		for i, el := range arr.Elements {
			r, err := dec(ds, list.elem(i), el)
			if err != nil {
				return err
			}
			add(rec, r)
		}
		return nil
	}
}

// list decodes a collection with its own shorthand rules and appends the
// result.
func list[T, R any](dec func(ds *decodeState, at scope, n tree.Node) ([]R, error), add func(T, ...R)) field[T] {
	return func(ds *decodeState, at scope, key string, n tree.Node, rec T) error {
		rs, err := dec(ds, at.child(key), n)
		if err != nil {
			return err
		}
		add(rec, rs...)
		return nil
	}
}

// record adapts a field table into a decoder for records of type R.
func record[R any](fields *mapper.Table[field[*R]], ident func(*R) string) decoder[R] {
	return func(ds *decodeState, at scope, n tree.Node) (R, error) {
		var r R
		err := decodeTable(ds, at, n, &r, fields, ident)
		return r, err
	}
}

// pointer adapts a decoder to return a pointer to the record.
func pointer[R any](dec decoder[R]) decoder[*R] {
	return func(ds *decodeState, at scope, n tree.Node) (*R, error) {
		r, err := dec(ds, at, n)
		if err != nil {
			return nil, err
		}
		return &r, nil
	}
}

func asTable(path string, n tree.Node) (*tree.Table, error) {
	tbl, ok := n.(*tree.Table)
	if !ok {
		return nil, shapeError(path, "table", n)
	}
	return tbl, nil
}

func stringList(path string, n tree.Node) ([]string, error) {
	if s, ok := tree.Text(n); ok {
		return []string{s}, nil
	}
	arr, ok := n.(*tree.Array)
	if !ok {
		return nil, shapeError(path, "string or array", n)
	}
	values := make([]string, 0, len(arr.Elements))
	for i, el := range arr.Elements {
		s, ok := tree.Text(el)
		if !ok {
			return nil, shapeError(fmt.Sprintf("%s[%d]", path, i), "scalar", el)
		}
		values = append(values, s)
	}
	return values, nil
}

func shapeError(path, want string, n tree.Node) error {
	got := "nothing"
	if n != nil {
		got = n.Kind().String()
	}
	return &ShapeError{Path: path, Want: want, Got: got}
}
