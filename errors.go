package pomtoml

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedKey is matched by errors reporting a key that no
	// handler accepts at its position. It is only returned in strict mode.
	ErrUnrecognizedKey = errors.New("unrecognized key")
	// ErrShapeMismatch is matched by errors reporting a value of the wrong
	// kind, such as an array where a string is expected.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrMissingSection is matched by shape errors where a table was
	// required.
	ErrMissingSection = errors.New("missing required section")
	// ErrMalformedShorthand is matched by errors reporting a compact
	// "group:artifact:version" key or value that cannot be split.
	ErrMalformedShorthand = errors.New("malformed shorthand")
	// ErrMaxDepth is returned when nesting exceeds the MaxDepth option.
	ErrMaxDepth = errors.New("reached max recursion depth")
)

// A KeyError reports an unrecognized key. Path is the fully qualified
// logical path of the key, including the identity of enclosing records
// where known, e.g. build.plugin[org.example:tool].foo.
type KeyError struct {
	Path string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("pomtoml: unrecognized key %q", e.Path)
}

func (e *KeyError) Unwrap() error { return ErrUnrecognizedKey }

// A ShapeError reports a value whose kind does not match what its
// position requires.
type ShapeError struct {
	Path string
	Want string
	Got  string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("pomtoml: expected %s at %q, got %s", e.Want, e.Path, e.Got)
}

func (e *ShapeError) Unwrap() []error {
	if e.Want == "table" {
		return []error{ErrShapeMismatch, ErrMissingSection}
	}
	return []error{ErrShapeMismatch}
}

// A ShorthandError reports a compact identity string or value that cannot
// be interpreted.
type ShorthandError struct {
	Path   string
	Value  string
	Reason string
}

func (e *ShorthandError) Error() string {
	return fmt.Sprintf("pomtoml: malformed shorthand %q at %q: %s", e.Value, e.Path, e.Reason)
}

func (e *ShorthandError) Unwrap() error { return ErrMalformedShorthand }

// A Deprecation is reported through the warning callback when a key is
// accepted under a spelling that has a preferred replacement.
type Deprecation struct {
	Path string
	Use  string
}

func (e *Deprecation) Error() string {
	return fmt.Sprintf("pomtoml: %q is deprecated, use %s instead", e.Path, e.Use)
}
