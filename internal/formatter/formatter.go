// Package formatter renders labeled trees as tag-per-element text.
package formatter

import (
	"encoding/xml"
	"io"
	"strings"
)

const (
	defaultIndent = 2
)

// Element is a labeled node with either text or children.
type Element interface {
	Tag() string
	Text() string
	Len() int
	Child(i int) Element
}

// Formatter writes elements to an output stream.
type Formatter struct {
	w      io.Writer
	indent string
	depth  int
	err    error
}

// New returns a new formatter that writes to w. A nil indentSpaces selects
// the default indentation; zero produces compact single-line output.
func New(w io.Writer, indentSpaces *int) *Formatter {
	spaces := defaultIndent
	if indentSpaces != nil {
		spaces = *indentSpaces
	}
	var indentStr string
	if spaces > 0 {
		indentStr = strings.Repeat(" ", spaces)
	}
	return &Formatter{w: w, indent: indentStr}
}

// Format writes el and its descendants.
func (f *Formatter) Format(el Element) error {
	f.writeElement(el)
	return f.err
}

func (f *Formatter) write(s string) {
	if f.err != nil {
		return
	}
	_, f.err = io.WriteString(f.w, s)
}

func (f *Formatter) writeIndent() {
	if f.indent == "" {
		return
	}
	for i := 0; i < f.depth; i++ {
		f.write(f.indent)
	}
}

func (f *Formatter) newline() {
	if f.indent != "" {
		f.write("\n")
	}
}

func (f *Formatter) writeText(s string) {
	if f.err != nil {
		return
	}
	f.err = xml.EscapeText(f.w, []byte(s))
}

func (f *Formatter) writeElement(el Element) {
	tag := el.Tag()
	text := el.Text()
	n := el.Len()

	f.writeIndent()
	if text == "" && n == 0 {
		f.write("<" + tag + "/>")
		return
	}

	f.write("<" + tag + ">")
	f.writeText(text)
	if n > 0 {
		f.depth++
		for i := 0; i < n; i++ {
			f.newline()
			f.writeElement(el.Child(i))
		}
		f.depth--
		f.newline()
		f.writeIndent()
	}
	f.write("</" + tag + ">")
}
