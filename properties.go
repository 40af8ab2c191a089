package pomtoml

import (
	"github.com/KimNorgaard/go-pomtoml/model"
	"github.com/KimNorgaard/go-pomtoml/tree"
)

// properties flattens the table n into p. Nested tables contribute dotted
// keys; scalars of any kind are stored in their text form.
func (ds *decodeState) properties(at scope, n tree.Node, p *model.Properties) error {
	return ds.flatten(at, "", n, func(key, value string) error {
		p.Set(key, value)
		return nil
	})
}

// childFlags reads the "child" table of an scm or site section. Each
// flattened key must name one of targets.
func (ds *decodeState) childFlags(at scope, n tree.Node, targets map[string]*string) error {
	return ds.flatten(at, "", n, func(key, value string) error {
		dst, ok := targets[key]
		if !ok {
			return ds.unknown(at.key(key))
		}
		*dst = value
		return nil
	})
}

// flatten walks n in document order and calls set for every scalar with
// its dotted key relative to at. Arrays fall under the unknown-key policy.
func (ds *decodeState) flatten(at scope, prefix string, n tree.Node, set func(key, value string) error) error {
	tbl, err := asTable(at.String(), n)
	if err != nil {
		return err
	}
	leave, err := ds.enter(at.String())
	if err != nil {
		return err
	}
	defer leave()

	for _, key := range tbl.Keys() {
		v, _ := tbl.Get(key)
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		switch v := v.(type) {
		case *tree.Table:
			if err := ds.flatten(at.child(key), name, v, set); err != nil {
				return err
			}
		case *tree.Array:
			if err := ds.unknown(at.key(key)); err != nil {
				return err
			}
		default:
			s, _ := tree.Text(v)
			if err := set(name, s); err != nil {
				return err
			}
		}
	}
	return nil
}
