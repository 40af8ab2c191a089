package model

import (
	"encoding/xml"
	"strings"

	"github.com/KimNorgaard/go-pomtoml/internal/formatter"
)

// Dom is a free-form configuration tree: a label with either a text value
// or an ordered list of children. It is what plugins receive as their
// configuration.
type Dom struct {
	Name     string `yaml:"name"`
	Value    string `yaml:"value,omitempty"`
	Children []*Dom `yaml:"children,omitempty"`
}

// AddChild appends c to d's children.
func (d *Dom) AddChild(c *Dom) { d.Children = append(d.Children, c) }

// Child returns the first child labeled name, or nil.
func (d *Dom) Child(name string) *Dom {
	for _, c := range d.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// String renders d as indented tag-per-element text.
func (d *Dom) String() string {
	var b strings.Builder
	if err := formatter.New(&b, nil).Format(domElement{d}); err != nil {
		return ""
	}
	return b.String()
}

type domElement struct{ d *Dom }

func (e domElement) Tag() string                   { return e.d.Name }
func (e domElement) Text() string                  { return e.d.Value }
func (e domElement) Len() int                      { return len(e.d.Children) }
func (e domElement) Child(i int) formatter.Element { return domElement{e.d.Children[i]} }

// MarshalXML writes d as an element named after d itself; the field name
// is only used when d has no name.
func (d *Dom) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if d.Name != "" {
		start.Name = xml.Name{Local: d.Name}
	}
	start.Attr = nil
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if d.Value != "" {
		if err := e.EncodeToken(xml.CharData(d.Value)); err != nil {
			return err
		}
	}
	for _, c := range d.Children {
		if err := c.MarshalXML(e, xml.StartElement{Name: xml.Name{Local: c.Name}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// UnmarshalXML reads an element into d. Text next to child elements is
// dropped.
func (d *Dom) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	d.Name = start.Name.Local
	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			c := &Dom{}
			if err := c.UnmarshalXML(dec, t); err != nil {
				return err
			}
			d.AddChild(c)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if len(d.Children) == 0 {
				d.Value = strings.TrimSpace(text.String())
			}
			return nil
		}
	}
}
