package pomtoml

import (
	"bytes"
	"io"

	"github.com/KimNorgaard/go-pomtoml/internal/parser"
	"github.com/KimNorgaard/go-pomtoml/model"
	"github.com/KimNorgaard/go-pomtoml/tree"
)

// Unmarshal parses the TOML descriptor in data and returns the project
// model it describes.
func Unmarshal(data []byte, opts ...Option) (*model.Model, error) {
	return NewDecoder(bytes.NewReader(data), opts...).Decode()
}

// Parse reads a TOML document into a generic tree without interpreting
// it. Keys keep their document order.
func Parse(r io.Reader) (*tree.Table, error) {
	return parser.Parse(r)
}
