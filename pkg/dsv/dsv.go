// Package dsv provides configurable delimited-text parsing.
//
// This package turns a complete text blob into a table of column names and
// lines. Line and column delimiters may be any non-empty character sequence
// (for example "\r\n" and "," or "#EOL#" and "#EOC#"). Optional quoting with
// a configurable quotation mark and escape character, header extraction,
// line skipping, line limits, and tolerance for lines with differing column
// counts are all set through Options.
//
// The input is scanned in a single pass, character by character. There is no
// streaming across chunk boundaries: readers and files are loaded into
// memory first. All values are text.
//
// # Thread Safety
//
// A Parser is safe for concurrent use by multiple goroutines. Its Config is
// immutable and every call keeps its own scan state.
//
//	p := dsv.MustNew(dsv.WithColumnHeaders(true))
//	go func() { p.Parse(input1) }()
//	go func() { p.Parse(input2) }()
//
// # Quoting
//
// A quotation mark at the start of a column opens a quoted region in which
// delimiters are literal text. A quotation mark in the middle of a column is
// literal text unless WithQuotedSegments is enabled, in which case it opens an
// embedded quoted segment and the marks are dropped. An escape character
// followed by the quotation mark yields a literal quotation mark; with the
// default settings this is the doubled quote ("").
//
// # Example usage:
//
//	result, err := dsv.Parse("name,age\r\nAlice,30\r\nBob,25", dsv.WithColumnHeaders(true))
//	if err != nil {
//	    // handle error
//	}
//	// result.ColumnNames is [name age]
//	// result.Lines is [[Alice 30] [Bob 25]]
//
// # Errors
//
// New returns an *OptionsError naming the invalid option. Parse returns a
// *ColumnCountError (matching ErrColumnCount) when a line has a different
// column count than the first line and asymmetry is not allowed.
package dsv

import (
	"io"
)

// Parse parses text with a Parser built from opts.
func Parse(text string, opts ...Option) (*Result, error) {
	p, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return p.Parse(text)
}

// ParseReader reads all of r and parses it with a Parser built from opts.
//
// Example:
//
//	file, err := os.Open("data.txt")
//	if err != nil {
//	    // handle error
//	}
//	defer file.Close()
//
//	result, err := dsv.ParseReader(file, dsv.WithLineDelimiter("\n"))
func ParseReader(r io.Reader, opts ...Option) (*Result, error) {
	p, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return p.ParseReader(r)
}

// ParseFile loads the named file and parses it with a Parser built from opts.
func ParseFile(filename string, opts ...Option) (*Result, error) {
	p, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return p.ParseFile(filename)
}

// Tokenize returns the lexical tokens of text for a Parser built from opts.
func Tokenize(text string, opts ...Option) ([]Token, error) {
	p, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return p.Tokenize(text), nil
}

// Format returns the format identifier for this parser.
func Format() string {
	return "DSV"
}
