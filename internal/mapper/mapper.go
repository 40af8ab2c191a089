// Package mapper resolves document keys to field actions. Every accepted
// spelling of a field is listed as data in a Table; lookups normalize the
// hyphenated form first.
package mapper

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CamelCase turns a hyphenated key into its humped form: "group-id" becomes
// "groupId". The character after each hyphen is upper-cased and the hyphen
// dropped, so "a--b" keeps one hyphen and a trailing hyphen disappears. Keys
// without a hyphen are returned unchanged.
func CamelCase(key string) string {
	if !strings.Contains(key, "-") {
		return key
	}

	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); {
		j := strings.IndexByte(key[i:], '-')
		if j < 0 {
			b.WriteString(key[i:])
			break
		}
		b.WriteString(key[i : i+j])
		i += j + 1
		if i < len(key) {
			r, size := utf8.DecodeRuneInString(key[i:])
			b.WriteRune(unicode.ToUpper(r))
			i += size
		}
	}
	return b.String()
}

// Hyphenate is the inverse of CamelCase for keys that contain no hyphen:
// every upper-case letter is lowered and prefixed with a hyphen.
func Hyphenate(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Entry binds one canonical action to all of its spellings.
type Entry[A any] struct {
	Aliases []string
	Action  A
}

// Alias is shorthand for an Entry literal.
func Alias[A any](action A, aliases ...string) Entry[A] {
	return Entry[A]{Aliases: aliases, Action: action}
}

// Table maps normalized keys to actions. A Table is immutable after New and
// safe for concurrent use.
type Table[A any] struct {
	name    string
	actions map[string]A
	aliases []string
	groups  [][]string
}

// New builds a table named name. It panics if two entries share an alias,
// since that would make resolution ambiguous.
func New[A any](name string, entries ...Entry[A]) *Table[A] {
	t := &Table[A]{name: name, actions: make(map[string]A)}
	for _, e := range entries {
		if len(e.Aliases) == 0 {
			panic(fmt.Sprintf("mapper: %s: entry without aliases", name))
		}
		for _, alias := range e.Aliases {
			if _, dup := t.actions[alias]; dup {
				panic(fmt.Sprintf("mapper: %s: duplicate alias %q", name, alias))
			}
			t.actions[alias] = e.Action
			t.aliases = append(t.aliases, alias)
		}
		t.groups = append(t.groups, slices.Clone(e.Aliases))
	}
	return t
}

// Name returns the table's name.
func (t *Table[A]) Name() string { return t.name }

// Lookup normalizes key and returns the action registered for it.
// Resolution is case-sensitive.
func (t *Table[A]) Lookup(key string) (A, bool) {
	a, ok := t.actions[CamelCase(key)]
	return a, ok
}

// Groups returns the spellings of each entry, one group per entry in
// registration order.
func (t *Table[A]) Groups() [][]string {
	out := make([][]string, len(t.groups))
	for i, g := range t.groups {
		out[i] = slices.Clone(g)
	}
	return out
}

// Aliases returns every registered spelling in registration order.
func (t *Table[A]) Aliases() []string {
	out := make([]string, len(t.aliases))
	copy(out, t.aliases)
	return out
}
