// Package marshaler converts the generic values produced by the TOML
// decoder (strings, int64, float64, bool, time.Time, []any and
// map[string]any) into tree nodes.
package marshaler

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/KimNorgaard/go-pomtoml/tree"
)

// Rank reports the position of key within the table found at path. Keys
// without a rank are placed after ranked keys, in lexical order.
type Rank func(path []string, key string) (int, bool)

// Option configures a marshaling run.
type Option func(*marshaler)

// WithRank orders table keys by r instead of lexically.
func WithRank(r Rank) Option {
	return func(m *marshaler) { m.rank = r }
}

// WithTimeFormat sets the function used to render datetime literals.
func WithTimeFormat(f func(time.Time) string) Option {
	return func(m *marshaler) { m.formatTime = f }
}

// Marshal converts v into a tree node. Maps must have string keys; nil
// values are rejected because the document model has no null.
func Marshal(v any, opts ...Option) (tree.Node, error) {
	m := &marshaler{}
	for _, opt := range opts {
		opt(m)
	}
	return m.marshal(nil, reflect.ValueOf(v))
}

type marshaler struct {
	rank       Rank
	formatTime func(time.Time) string
}

var timeType = reflect.TypeFor[time.Time]()

func (m *marshaler) marshal(path []string, v reflect.Value) (tree.Node, error) {
	// Follow pointers and interfaces to find the concrete value.
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, fmt.Errorf("pomtoml: cannot marshal nil value at %q", strings.Join(path, "."))
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil, fmt.Errorf("pomtoml: cannot marshal nil value at %q", strings.Join(path, "."))
	}

	if v.Type() == timeType {
		t := v.Interface().(time.Time)
		d := &tree.Datetime{Value: t}
		if m.formatTime != nil {
			d.Literal = m.formatTime(t)
		}
		return d, nil
	}

	switch v.Kind() {
	case reflect.String:
		return &tree.String{Value: v.String()}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &tree.Integer{Value: v.Int()}, nil
	case reflect.Float32, reflect.Float64:
		return &tree.Float{Value: v.Float()}, nil
	case reflect.Bool:
		return &tree.Boolean{Value: v.Bool()}, nil
	case reflect.Slice:
		arr := &tree.Array{Elements: make([]tree.Node, 0, v.Len())}
		for i := range v.Len() {
			el, err := m.marshal(path, v.Index(i))
			if err != nil {
				return nil, err
			}
			arr.Elements = append(arr.Elements, el)
		}
		return arr, nil
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("pomtoml: map key type must be a string, got %s", v.Type().Key())
		}
		keys := make([]string, 0, v.Len())
		values := make(map[string]reflect.Value, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			keys = append(keys, k)
			values[k] = iter.Value()
		}
		return m.table(path, keys, func(k string) reflect.Value { return values[k] })
	default:
		return nil, fmt.Errorf("pomtoml: unsupported type for marshaling: %s", v.Type())
	}
}

func (m *marshaler) table(path []string, keys []string, value func(string) reflect.Value) (*tree.Table, error) {
	m.sortKeys(path, keys)
	tbl := tree.NewTable()
	for _, k := range keys {
		n, err := m.marshal(append(path[:len(path):len(path)], k), value(k))
		if err != nil {
			return nil, err
		}
		tbl.Set(k, n)
	}
	return tbl, nil
}

func (m *marshaler) sortKeys(path []string, keys []string) {
	if m.rank == nil {
		slices.Sort(keys)
		return
	}
	type ranked struct {
		key  string
		pos  int
		seen bool
	}
	rs := make([]ranked, len(keys))
	for i, k := range keys {
		pos, ok := m.rank(path, k)
		rs[i] = ranked{key: k, pos: pos, seen: ok}
	}
	slices.SortFunc(rs, func(a, b ranked) int {
		switch {
		case a.seen && b.seen:
			return cmp.Or(cmp.Compare(a.pos, b.pos), strings.Compare(a.key, b.key))
		case a.seen:
			return -1
		case b.seen:
			return 1
		default:
			return strings.Compare(a.key, b.key)
		}
	})
	for i := range rs {
		keys[i] = rs[i].key
	}
}
