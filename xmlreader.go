package pomtoml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	perrors "github.com/KimNorgaard/go-pomtoml/errors"
	"github.com/KimNorgaard/go-pomtoml/model"
)

// XMLReader reads classic pom.xml descriptors. It is the default fallback
// of a Processor. Unknown elements are ignored regardless of Strict.
type XMLReader struct{}

// Read decodes a pom.xml document from r.
func (XMLReader) Read(r io.Reader, opts ...Option) (*model.Model, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("reading XML descriptor", "source", o.source)

	var m model.Model
	if err := xml.NewDecoder(r).Decode(&m); err != nil {
		var se *xml.SyntaxError
		if errors.As(err, &se) {
			return nil, &perrors.ParseError{Message: se.Msg, Line: se.Line}
		}
		if errors.Is(err, io.EOF) {
			return nil, &perrors.ParseError{Message: "empty document"}
		}
		return nil, fmt.Errorf("pomtoml: %w", err)
	}
	m.XMLName = xml.Name{}
	return &m, nil
}
