// Package assembler turns scanner boundaries into a table of lines.
//
// It applies header extraction, line skipping, the line limit, and the
// column-count check against the arity of the first line.
package assembler

import (
	"errors"
	"fmt"
)

// ErrColumnCount indicates a line has a different number of columns than the first line.
var ErrColumnCount = errors.New("invalid column count")

// ColumnCountError reports a line whose column count differs from the
// established arity.
type ColumnCountError struct {
	// Line is the 1-based line number, counted after skipped lines.
	Line int
	// Expected is the column count of the first line.
	Expected int
	// Got is the column count of the offending line.
	Got int
}

// Error returns a formatted error message with the line number and counts.
func (e *ColumnCountError) Error() string {
	return fmt.Sprintf("invalid column count on line %d: expected %d, got %d", e.Line, e.Expected, e.Got)
}

// Unwrap returns ErrColumnCount.
func (e *ColumnCountError) Unwrap() error {
	return ErrColumnCount
}

// Options configures the assembler policy.
type Options struct {
	// ColumnHeaders takes column names from the first line after skipping.
	ColumnHeaders bool
	// AllowAsymmetry accepts lines whose column count differs from the first line.
	AllowAsymmetry bool
	// SkipLines drops this many physical lines before anything else.
	SkipLines int
	// LimitLines stops after this many lines (header included). 0 means unlimited.
	LimitLines int
}

// Stats summarizes a finished assembly.
type Stats struct {
	Lines      int
	Skipped    int
	Asymmetric int
}

// Assembler accumulates columns and lines for a single parse.
// It implements scanner.Sink.
type Assembler struct {
	opts Options

	columnNames []string
	lines       [][]string
	line        []string

	lineIndex       int
	columnIndex     int
	linesSkipped    int
	expectedColumns int
	asymmetric      int
}

// New creates an Assembler with the given options.
func New(opts Options) *Assembler {
	return &Assembler{
		opts:        opts,
		columnNames: make([]string, 0, 8),
		lines:       make([][]string, 0, 16),
		line:        make([]string, 0, 8),
	}
}

// FinalizeColumn completes the current column with value.
func (a *Assembler) FinalizeColumn(value string) {
	if a.linesSkipped >= a.opts.SkipLines {
		if a.isHeaderLine() {
			a.setColumnName(a.columnIndex, value)
		} else {
			if a.columnIndex >= len(a.columnNames) {
				a.setColumnName(a.columnIndex, fmt.Sprintf("Column_%d", a.columnIndex))
			}
			a.line = append(a.line, value)
		}
	}

	a.columnIndex++
}

// FinalizeLine completes the current line. It returns a *ColumnCountError
// when the line breaks the arity and asymmetry is not allowed.
func (a *Assembler) FinalizeLine() error {
	defer func() { a.columnIndex = 0 }()

	if a.linesSkipped < a.opts.SkipLines {
		a.linesSkipped++
		return nil
	}

	if !a.isHeaderLine() {
		a.lines = append(a.lines, a.line)
	}

	if a.lineIndex == 0 {
		a.expectedColumns = a.columnIndex
	} else if a.columnIndex != a.expectedColumns {
		if !a.opts.AllowAsymmetry {
			return &ColumnCountError{
				Line:     a.lineIndex + 1,
				Expected: a.expectedColumns,
				Got:      a.columnIndex,
			}
		}
		a.asymmetric++
	}

	a.line = make([]string, 0, a.expectedColumns)
	a.lineIndex++
	return nil
}

// Done reports whether the line limit has been reached.
func (a *Assembler) Done() bool {
	return a.opts.LimitLines > 0 && a.lineIndex >= a.opts.LimitLines
}

// ColumnNames returns the column-name table.
func (a *Assembler) ColumnNames() []string {
	return a.columnNames
}

// Lines returns the assembled lines.
func (a *Assembler) Lines() [][]string {
	return a.lines
}

// Stats returns counters for the assembled input.
func (a *Assembler) Stats() Stats {
	return Stats{
		Lines:      len(a.lines),
		Skipped:    a.linesSkipped,
		Asymmetric: a.asymmetric,
	}
}

func (a *Assembler) isHeaderLine() bool {
	return a.lineIndex == 0 && a.opts.ColumnHeaders
}

// setColumnName stores name at index, growing the table with synthesized
// names if index is past its end.
func (a *Assembler) setColumnName(index int, name string) {
	for len(a.columnNames) < index {
		a.columnNames = append(a.columnNames, fmt.Sprintf("Column_%d", len(a.columnNames)))
	}
	if index < len(a.columnNames) {
		a.columnNames[index] = name
		return
	}
	a.columnNames = append(a.columnNames, name)
}
