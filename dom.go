package pomtoml

import (
	"strings"

	"github.com/KimNorgaard/go-pomtoml/internal/mapper"
	"github.com/KimNorgaard/go-pomtoml/model"
	"github.com/KimNorgaard/go-pomtoml/tree"
)

// domField decodes a table into a configuration tree labeled name.
func domField[T any](name string, set func(T, *model.Dom)) field[T] {
	return func(ds *decodeState, at scope, key string, n tree.Node, rec T) error {
		d, err := ds.dom(at.child(key), name, n)
		if err != nil {
			return err
		}
		set(rec, d)
		return nil
	}
}

// dom builds a configuration tree from the table n. String and boolean
// values become leaves, tables become subtrees and arrays of tables become
// a container of like-named items.
func (ds *decodeState) dom(at scope, name string, n tree.Node) (*model.Dom, error) {
	tbl, err := asTable(at.String(), n)
	if err != nil {
		return nil, err
	}
	leave, err := ds.enter(at.String())
	if err != nil {
		return nil, err
	}
	defer leave()

	d := &model.Dom{Name: name}
	for _, key := range tbl.Keys() {
		v, _ := tbl.Get(key)
		label := mapper.CamelCase(key)
		switch v := v.(type) {
		case *tree.String:
			d.AddChild(&model.Dom{Name: label, Value: v.Value})
		case *tree.Boolean:
			s, _ := tree.Text(v)
			d.AddChild(&model.Dom{Name: label, Value: s})
		case *tree.Table:
			c, err := ds.dom(at.child(key), label, v)
			if err != nil {
				return nil, err
			}
			d.AddChild(c)
		case *tree.Array:
			c, err := ds.domList(at.child(key), label, v)
			if err != nil {
				return nil, err
			}
			d.AddChild(c)
		default:
			if err := ds.unknown(at.key(key)); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}

// domList builds the container for an array. A label ending in "s" names
// the container and loses the "s" for its items; any other label names
// the items and gains an "s" for the container.
func (ds *decodeState) domList(at scope, label string, arr *tree.Array) (*model.Dom, error) {
	container, item := pluralize(label)
	d := &model.Dom{Name: container}
	for i, el := range arr.Elements {
		c, err := ds.dom(at.elem(i), item, el)
		if err != nil {
			return nil, err
		}
		d.AddChild(c)
	}
	return d, nil
}

func pluralize(label string) (container, item string) {
	if len(label) > 1 && strings.HasSuffix(label, "s") {
		return label, strings.TrimSuffix(label, "s")
	}
	return label + "s", label
}
