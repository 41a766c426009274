// Package scanner implements the single-pass character state machine that
// splits delimited text into columns and lines.
//
// The scanner only classifies characters and maintains the column buffer.
// Everything that happens at a column or line boundary is delegated to a
// Sink, which owns header, skip, limit and arity policy.
package scanner

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// EscapeMode describes how the escape character relates to the quotation mark.
type EscapeMode int

const (
	// EscapeNone means no escape character is configured.
	EscapeNone EscapeMode = iota
	// EscapeSameCharacter means the escape character is the quotation mark,
	// so a doubled quotation mark is a literal quote.
	EscapeSameCharacter
	// EscapeDistinctCharacter means the escape character differs from the
	// quotation mark (or no quotation mark is configured).
	EscapeDistinctCharacter
)

// String returns the string representation of EscapeMode.
func (m EscapeMode) String() string {
	switch m {
	case EscapeNone:
		return "none"
	case EscapeSameCharacter:
		return "same"
	case EscapeDistinctCharacter:
		return "distinct"
	default:
		return fmt.Sprintf("EscapeMode(%d)", m)
	}
}

// ResolveEscapeMode derives the escape mode from the configured marks.
// An empty string means the mark is absent.
func ResolveEscapeMode(quotationMark, escapeCharacter string) EscapeMode {
	switch {
	case escapeCharacter == "":
		return EscapeNone
	case escapeCharacter == quotationMark:
		return EscapeSameCharacter
	default:
		return EscapeDistinctCharacter
	}
}

// Options configures the scanner. Marks are single characters or empty when absent.
type Options struct {
	LineDelimiter   string
	ColumnDelimiter string
	QuotedSegments  bool
	QuotationMark   string
	EscapeCharacter string
	EscapeMode      EscapeMode
}

// Sink receives column and line boundaries from the scanner.
type Sink interface {
	// FinalizeColumn is called with the completed column value.
	FinalizeColumn(value string)
	// FinalizeLine is called after the last column of a line. A non-nil
	// error aborts the scan.
	FinalizeLine() error
	// Done reports whether no more lines should be scanned.
	Done() bool
}

// state is the mutable scan state for a single Scan call.
type state struct {
	opts   *Options
	sink   Sink
	input  string
	cursor int
	quoted bool
	column strings.Builder

	colFirst  rune
	lineFirst rune
}

// Scan tokenizes input and reports boundaries to sink.
// It returns the first error returned by sink.FinalizeLine.
func Scan(input string, opts Options, sink Sink) error {
	s := &state{
		opts:      &opts,
		sink:      sink,
		input:     input,
		colFirst:  firstRune(opts.ColumnDelimiter),
		lineFirst: firstRune(opts.LineDelimiter),
	}

	for s.cursor < len(s.input) {
		r, size := utf8.DecodeRuneInString(s.input[s.cursor:])

		if s.quoted {
			s.stepQuoted(size)
		} else if err := s.stepUnquoted(r, size); err != nil {
			return err
		}

		if sink.Done() {
			break
		}
	}

	// Input without a trailing delimiter still yields its final row.
	if s.column.Len() > 0 {
		s.finalizeColumn()
		return sink.FinalizeLine()
	}
	return nil
}

func (s *state) stepUnquoted(r rune, size int) error {
	rest := s.input[s.cursor:]

	// Delimiters are matched whole. A first-character hit without the full
	// sequence falls through, so "#EOC#" and "#EOL#" can share a prefix.
	if r == s.colFirst && strings.HasPrefix(rest, s.opts.ColumnDelimiter) {
		s.finalizeColumn()
		s.cursor += len(s.opts.ColumnDelimiter)
		return nil
	}
	if r == s.lineFirst && strings.HasPrefix(rest, s.opts.LineDelimiter) {
		s.finalizeColumn()
		if err := s.sink.FinalizeLine(); err != nil {
			return err
		}
		s.cursor += len(s.opts.LineDelimiter)
		return nil
	}

	switch {
	case s.isEscape():
		if n, ok := s.quoteAt(s.cursor + size); ok {
			s.column.WriteString(s.opts.QuotationMark)
			s.cursor += size + n
			return nil
		}
		if s.opts.EscapeMode == EscapeDistinctCharacter {
			s.appendLiteral(size)
			return nil
		}
		s.openOrAppend(size)
	case s.isQuote():
		s.openOrAppend(size)
	default:
		s.appendLiteral(size)
	}
	return nil
}

func (s *state) stepQuoted(size int) {
	switch {
	case s.isEscape():
		if n, ok := s.quoteAt(s.cursor + size); ok {
			s.column.WriteString(s.opts.QuotationMark)
			s.cursor += size + n
			return
		}
		if s.opts.EscapeMode == EscapeDistinctCharacter {
			s.appendLiteral(size)
			return
		}
		s.quoted = false
		s.cursor += size
	case s.isQuote():
		s.quoted = false
		s.cursor += size
	default:
		s.appendLiteral(size)
	}
}

// openOrAppend enters quoted mode at the start of a column, or anywhere when
// quoted segments are enabled. Otherwise the mark is ordinary text.
func (s *state) openOrAppend(size int) {
	if s.column.Len() == 0 || s.opts.QuotedSegments {
		s.quoted = true
		s.cursor += size
		return
	}
	s.appendLiteral(size)
}

// appendLiteral copies the current character, byte for byte, into the column.
func (s *state) appendLiteral(size int) {
	s.column.WriteString(s.input[s.cursor : s.cursor+size])
	s.cursor += size
}

func (s *state) finalizeColumn() {
	s.sink.FinalizeColumn(s.column.String())
	s.column.Reset()
}

// isEscape reports whether the escape character starts at the cursor.
func (s *state) isEscape() bool {
	return s.opts.EscapeMode != EscapeNone && strings.HasPrefix(s.input[s.cursor:], s.opts.EscapeCharacter)
}

// isQuote reports whether the quotation mark starts at the cursor.
func (s *state) isQuote() bool {
	return s.opts.QuotationMark != "" && strings.HasPrefix(s.input[s.cursor:], s.opts.QuotationMark)
}

// quoteAt reports whether the quotation mark starts at offset i and returns its byte length.
func (s *state) quoteAt(i int) (int, bool) {
	if s.opts.QuotationMark == "" || i >= len(s.input) {
		return 0, false
	}
	if strings.HasPrefix(s.input[i:], s.opts.QuotationMark) {
		return len(s.opts.QuotationMark), true
	}
	return 0, false
}

// firstRune returns the first character of s, or -1 when s is empty.
func firstRune(s string) rune {
	if s == "" {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
