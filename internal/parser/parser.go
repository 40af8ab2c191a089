// Package parser reads TOML text into a generic tree. Syntax is handled by
// github.com/BurntSushi/toml; this package only converts its output and
// restores document key order.
package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	perrors "github.com/KimNorgaard/go-pomtoml/errors"
	"github.com/KimNorgaard/go-pomtoml/internal/marshaler"
	"github.com/KimNorgaard/go-pomtoml/tree"
)

const keySep = "\x00"

// Parse reads a complete TOML document from r. Syntax errors are returned
// as *errors.ParseError carrying the reported line and column.
func Parse(r io.Reader) (*tree.Table, error) {
	var doc map[string]any
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, parseError(err)
	}

	// md.Keys carries no array indices, so every table of an array of
	// tables shares one ranking, taken from the first place a key appears.
	// The order only matters for diagnostics and output.
	order := make(map[string]int)
	for i, k := range md.Keys() {
		joined := strings.Join(k, keySep)
		if _, ok := order[joined]; !ok {
			order[joined] = i
		}
	}
	rank := func(path []string, key string) (int, bool) {
		var b strings.Builder
		for _, p := range path {
			b.WriteString(p)
			b.WriteString(keySep)
		}
		b.WriteString(key)
		pos, ok := order[b.String()]
		return pos, ok
	}

	if doc == nil {
		return tree.NewTable(), nil
	}
	n, err := marshaler.Marshal(doc, marshaler.WithRank(rank), marshaler.WithTimeFormat(formatTime))
	if err != nil {
		return nil, err
	}
	root, ok := n.(*tree.Table)
	if !ok {
		return nil, fmt.Errorf("pomtoml: document root is a %s, not a table", n.Kind())
	}
	return root, nil
}

func parseError(err error) error {
	var pe toml.ParseError
	if errors.As(err, &pe) {
		return &perrors.ParseError{
			Message: pe.Message,
			Line:    pe.Position.Line,
			Column:  pe.Position.Col,
		}
	}
	return &perrors.ParseError{Message: err.Error()}
}

// Location names the TOML decoder gives to values written without an
// offset.
const (
	localDate     = "date-local"
	localTime     = "time-local"
	localDatetime = "datetime-local"
)

// formatTime renders a decoded datetime the way it was written: local
// dates, times and date-times keep their reduced form.
func formatTime(t time.Time) string {
	switch t.Location().String() {
	case localDate:
		return t.Format(time.DateOnly)
	case localTime:
		return t.Format("15:04:05.999999999")
	case localDatetime:
		return t.Format("2006-01-02T15:04:05.999999999")
	default:
		return t.Format(time.RFC3339Nano)
	}
}
