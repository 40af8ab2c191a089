// Package tree defines the generic document tree produced by the TOML
// parser and consumed by the transcoder. A node is a table, an array or one
// of the scalar kinds; the set of node types is closed.
package tree

import (
	"bytes"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the shape of a Node.
type Kind int

const (
	TableKind Kind = iota
	ArrayKind
	StringKind
	BooleanKind
	IntegerKind
	FloatKind
	DatetimeKind
)

var kindNames = [...]string{
	TableKind:    "table",
	ArrayKind:    "array",
	StringKind:   "string",
	BooleanKind:  "boolean",
	IntegerKind:  "integer",
	FloatKind:    "float",
	DatetimeKind: "datetime",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Node is the base interface for all tree nodes.
type Node interface {
	// Kind reports the shape of the node.
	Kind() Kind
	// String returns a TOML-like inline representation of the node.
	String() string

	node()
}

// Table is a mapping from unique string keys to nodes. It remembers the
// order in which keys were first set.
type Table struct {
	keys   []string
	values map[string]Node
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{values: make(map[string]Node)}
}

// Set stores n under key. Setting an existing key replaces its value but
// keeps its original position.
func (t *Table) Set(key string, n Node) {
	if t.values == nil {
		t.values = make(map[string]Node)
	}
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = n
}

// Get returns the node stored under key.
func (t *Table) Get(key string) (Node, bool) {
	n, ok := t.values[key]
	return n, ok
}

// Keys returns the table's keys in insertion order. The returned slice must
// not be modified.
func (t *Table) Keys() []string { return t.keys }

// Len returns the number of keys in the table.
func (t *Table) Len() int { return len(t.keys) }

func (t *Table) Kind() Kind { return TableKind }
func (t *Table) node()      {}
func (t *Table) String() string {
	var out bytes.Buffer
	out.WriteString("{")
	for i, k := range t.keys {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(quoteKey(k))
		out.WriteString(" = ")
		out.WriteString(t.values[k].String())
	}
	out.WriteString("}")
	return out.String()
}

// Array is an ordered sequence of nodes. Element kinds are not required to
// match.
type Array struct {
	Elements []Node
}

func (a *Array) Kind() Kind { return ArrayKind }
func (a *Array) node()      {}
func (a *Array) String() string {
	elements := make([]string, 0, len(a.Elements))
	for _, el := range a.Elements {
		elements = append(elements, el.String())
	}
	return "[" + strings.Join(elements, ", ") + "]"
}

// String is a string scalar.
type String struct {
	Value string
}

func (s *String) Kind() Kind     { return StringKind }
func (s *String) node()          {}
func (s *String) String() string { return strconv.Quote(s.Value) }

// Boolean is a boolean scalar.
type Boolean struct {
	Value bool
}

func (b *Boolean) Kind() Kind     { return BooleanKind }
func (b *Boolean) node()          {}
func (b *Boolean) String() string { return strconv.FormatBool(b.Value) }

// Integer is an integer scalar.
type Integer struct {
	Value int64
}

func (i *Integer) Kind() Kind     { return IntegerKind }
func (i *Integer) node()          {}
func (i *Integer) String() string { return strconv.FormatInt(i.Value, 10) }

// Float is a floating point scalar.
type Float struct {
	Value float64
}

func (f *Float) Kind() Kind     { return FloatKind }
func (f *Float) node()          {}
func (f *Float) String() string { return strconv.FormatFloat(f.Value, 'g', -1, 64) }

// Datetime is a date, time or date-time scalar. Literal holds the value as
// it should be rendered; when empty, Value is formatted as RFC 3339.
type Datetime struct {
	Value   time.Time
	Literal string
}

func (d *Datetime) Kind() Kind { return DatetimeKind }
func (d *Datetime) node()      {}
func (d *Datetime) String() string {
	if d.Literal != "" {
		return d.Literal
	}
	return d.Value.Format(time.RFC3339Nano)
}

// IsScalar reports whether n is neither a table nor an array.
func IsScalar(n Node) bool {
	switch n.(type) {
	case *Table, *Array, nil:
		return false
	default:
		return true
	}
}

// Text returns the textual value of a scalar node. Strings are returned
// unquoted. The second result is false for tables and arrays.
func Text(n Node) (string, bool) {
	switch v := n.(type) {
	case *String:
		return v.Value, true
	case *Boolean, *Integer, *Float, *Datetime:
		return v.String(), true
	default:
		return "", false
	}
}

func quoteKey(k string) string {
	if k == "" {
		return `""`
	}
	for _, r := range k {
		if !(r == '-' || r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return strconv.Quote(k)
		}
	}
	return k
}
