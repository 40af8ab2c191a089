package pomtoml

import (
	"strconv"
	"strings"
)

// scope is the logical path of the table being decoded. Array elements
// are shown by the identity of their record once it is known, and by
// index until then.
type scope struct {
	path  string
	index int
	ident func() string
}

func rootScope() scope { return scope{index: -1} }

func (s scope) String() string {
	if s.index < 0 {
		return s.path
	}
	if s.ident != nil {
		if id := s.ident(); id != "" {
			return s.path + "[" + id + "]"
		}
	}
	return s.path + "[" + strconv.Itoa(s.index) + "]"
}

// key returns the path of key inside s.
func (s scope) key(key string) string {
	p := s.String()
	if p == "" {
		return quoteKey(key)
	}
	return p + "." + quoteKey(key)
}

// child returns the scope of the table stored under key.
func (s scope) child(key string) scope {
	return scope{path: s.key(key), index: -1}
}

// elem returns the scope of the i-th element of the array s.
func (s scope) elem(i int) scope {
	return scope{path: s.String(), index: i}
}

// named returns the scope of an element whose identity is fixed.
func (s scope) named(id string) scope {
	return scope{path: s.String(), index: 0, ident: func() string { return id }}
}

func quoteKey(k string) string {
	if k == "" || strings.ContainsAny(k, ".:[]\" \t") {
		return strconv.Quote(k)
	}
	return k
}
