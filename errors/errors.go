package errors

import "fmt"

// ParseError represents a syntax error reported while reading a
// descriptor. It includes the position of the error when known; a zero
// Line means the position is unknown.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	switch {
	case e.Line == 0:
		return fmt.Sprintf("pomtoml: parsing error: %s", e.Message)
	case e.Column == 0:
		return fmt.Sprintf("pomtoml: parsing error at line %d: %s", e.Line, e.Message)
	default:
		return fmt.Sprintf("pomtoml: parsing error at line %d, column %d: %s", e.Line, e.Column, e.Message)
	}
}
