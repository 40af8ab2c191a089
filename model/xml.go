package model

import (
	"encoding/xml"
	"fmt"
	"reflect"
	"strings"
)

// Records holding "parent>item" lists marshal through encodeRecord:
// encoding/xml writes the parent element of such a list even when the list
// is empty and omitempty is set.

func (m Model) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeRecord(e, start, m)
}

func (c Contributor) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeRecord(e, start, c)
}

func (d Developer) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeRecord(e, start, d)
}

func (l MailingList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeRecord(e, start, l)
}

func (c CIManagement) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeRecord(e, start, c)
}

func (d DependencyManagement) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeRecord(e, start, d)
}

func (d Dependency) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeRecord(e, start, d)
}

func (b Build) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeRecord(e, start, b)
}

func (r Resource) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeRecord(e, start, r)
}

func (p PluginManagement) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeRecord(e, start, p)
}

func (p Plugin) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeRecord(e, start, p)
}

func (x PluginExecution) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeRecord(e, start, x)
}

// xmlField is one element or attribute of a record, in declaration order.
type xmlField struct {
	parent    string
	name      string
	attr      bool
	omitEmpty bool
	value     reflect.Value
}

// encodeRecord writes the struct v as the element start, following its xml
// tags. Embedded structs without a tag are flattened and an XMLName tag
// renames the element.
func encodeRecord(e *xml.Encoder, start xml.StartElement, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("model: cannot encode %s as a record", rv.Type())
	}
	var fields []xmlField
	collectFields(rv, &start, &fields)

	start.Attr = nil
	for _, f := range fields {
		if !f.attr || (f.omitEmpty && isEmptyValue(f.value)) {
			continue
		}
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: f.name}, Value: fmt.Sprint(f.value.Interface())})
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, f := range fields {
		if f.attr || (isEmptyValue(f.value) && (f.omitEmpty || f.parent != "")) {
			continue
		}
		if f.parent == "" {
			if err := e.EncodeElement(f.value.Interface(), xml.StartElement{Name: xml.Name{Local: f.name}}); err != nil {
				return err
			}
			continue
		}
		wrapper := xml.StartElement{Name: xml.Name{Local: f.parent}}
		if err := e.EncodeToken(wrapper); err != nil {
			return err
		}
		for i := range f.value.Len() {
			if err := e.EncodeElement(f.value.Index(i).Interface(), xml.StartElement{Name: xml.Name{Local: f.name}}); err != nil {
				return err
			}
		}
		if err := e.EncodeToken(wrapper.End()); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

func collectFields(rv reflect.Value, start *xml.StartElement, fields *[]xmlField) {
	rt := rv.Type()
	for i := range rt.NumField() {
		sf := rt.Field(i)
		tag := sf.Tag.Get("xml")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if sf.Name == "XMLName" {
			if name != "" {
				start.Name = xml.Name{Local: name}
			}
			continue
		}
		if sf.Anonymous && name == "" && sf.Type.Kind() == reflect.Struct {
			collectFields(rv.Field(i), start, fields)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		f := xmlField{name: name, value: rv.Field(i)}
		if parent, item, ok := strings.Cut(name, ">"); ok {
			f.parent, f.name = parent, item
		}
		for _, opt := range strings.Split(opts, ",") {
			switch opt {
			case "attr":
				f.attr = true
			case "omitempty":
				f.omitEmpty = true
			}
		}
		*fields = append(*fields, f)
	}
}

// isEmptyValue reports whether v is empty in the omitempty sense of
// encoding/xml.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
