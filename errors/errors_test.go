package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	require.EqualError(t, &ParseError{Message: "boom"}, "pomtoml: parsing error: boom")
	require.EqualError(t, &ParseError{Message: "boom", Line: 3}, "pomtoml: parsing error at line 3: boom")
	require.EqualError(t, &ParseError{Message: "boom", Line: 3, Column: 7}, "pomtoml: parsing error at line 3, column 7: boom")
}
