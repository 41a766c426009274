// Package dsv provides error types for delimited-text parsing.
package dsv

import (
	"github.com/shapestone/shape-dsv/internal/assembler"
)

// ColumnCountError reports a line whose column count differs from the first
// line while asymmetry is not allowed. Line is 1-based and counts lines after
// the skipped ones, the header line included.
type ColumnCountError = assembler.ColumnCountError

// ErrColumnCount is matched by errors.Is for every *ColumnCountError.
var ErrColumnCount = assembler.ErrColumnCount

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "dsv: invalid " + e.Field + ": " + e.Message
}
