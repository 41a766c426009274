// Package dsv provides configurable options for delimited-text parsing.
package dsv

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/shapestone/shape-dsv/internal/assembler"
	"github.com/shapestone/shape-dsv/internal/scanner"
	"github.com/shapestone/shape-dsv/internal/tokenizer"
)

// EscapeMode describes how the escape character relates to the quotation mark.
type EscapeMode = scanner.EscapeMode

const (
	// EscapeNone means no escape character is configured.
	EscapeNone = scanner.EscapeNone
	// EscapeSameCharacter means the escape character is the quotation mark.
	EscapeSameCharacter = scanner.EscapeSameCharacter
	// EscapeDistinctCharacter means the escape character differs from the quotation mark.
	EscapeDistinctCharacter = scanner.EscapeDistinctCharacter
)

// Default option values.
const (
	DefaultLineDelimiter   = "\r\n"
	DefaultColumnDelimiter = ","
	DefaultQuotationMark   = `"`
	DefaultEscapeCharacter = `"`
)

// Config is a validated, immutable parser configuration.
// Obtain one from DefaultConfig or Parser.Config.
type Config struct {
	lineDelimiter      string
	columnDelimiter    string
	columnHeaders      bool
	quotedSegments     bool
	quotationMark      string
	hasQuotationMark   bool
	escapeCharacter    string
	hasEscapeCharacter bool
	allowAsymmetry     bool
	skipLines          int
	limitLines         int
	escapeMode         EscapeMode
}

// DefaultConfig returns the default parser configuration.
func DefaultConfig() Config {
	cfg := Config{
		lineDelimiter:      DefaultLineDelimiter,
		columnDelimiter:    DefaultColumnDelimiter,
		quotationMark:      DefaultQuotationMark,
		hasQuotationMark:   true,
		escapeCharacter:    DefaultEscapeCharacter,
		hasEscapeCharacter: true,
	}
	cfg.escapeMode = scanner.ResolveEscapeMode(cfg.quote(), cfg.escape())
	return cfg
}

// LineDelimiter returns the character sequence separating lines.
func (c Config) LineDelimiter() string { return c.lineDelimiter }

// ColumnDelimiter returns the character sequence separating columns.
func (c Config) ColumnDelimiter() string { return c.columnDelimiter }

// ColumnHeaders reports whether the first line holds column names.
func (c Config) ColumnHeaders() bool { return c.columnHeaders }

// QuotedSegments reports whether a quotation mark inside a column opens a quoted segment.
func (c Config) QuotedSegments() bool { return c.quotedSegments }

// QuotationMark returns the quotation mark and whether one is configured.
func (c Config) QuotationMark() (string, bool) { return c.quotationMark, c.hasQuotationMark }

// EscapeCharacter returns the escape character and whether one is configured.
func (c Config) EscapeCharacter() (string, bool) { return c.escapeCharacter, c.hasEscapeCharacter }

// AllowAsymmetry reports whether lines may differ in column count.
func (c Config) AllowAsymmetry() bool { return c.allowAsymmetry }

// SkipLines returns the number of leading physical lines dropped.
func (c Config) SkipLines() int { return c.skipLines }

// LimitLines returns the maximum number of lines read, header included. 0 means unlimited.
func (c Config) LimitLines() int { return c.limitLines }

// EscapeMode returns the escape mode resolved from the quotation mark and escape character.
func (c Config) EscapeMode() EscapeMode { return c.escapeMode }

// validate checks the configuration in the order fields are documented and
// returns the first violation.
func (c Config) validate() error {
	if c.lineDelimiter == "" {
		return &OptionsError{Field: "lineDelimiter", Message: "must be set"}
	}
	if c.columnDelimiter == "" {
		return &OptionsError{Field: "columnDelimiter", Message: "must be set"}
	}
	if c.hasQuotationMark && !isSingleCharacter(c.quotationMark) {
		return &OptionsError{Field: "quotationMark", Message: "must be a single character"}
	}
	if c.hasEscapeCharacter && !isSingleCharacter(c.escapeCharacter) {
		return &OptionsError{Field: "escapeQuotationCharacter", Message: "must be a single character"}
	}
	if c.skipLines < 0 {
		return &OptionsError{Field: "skipLines", Message: "must not be negative"}
	}
	if c.limitLines < 0 {
		return &OptionsError{Field: "limitLines", Message: "must not be negative"}
	}
	return nil
}

func (c Config) quote() string {
	if !c.hasQuotationMark {
		return ""
	}
	return c.quotationMark
}

func (c Config) escape() string {
	if !c.hasEscapeCharacter {
		return ""
	}
	return c.escapeCharacter
}

func (c Config) scannerOptions() scanner.Options {
	return scanner.Options{
		LineDelimiter:   c.lineDelimiter,
		ColumnDelimiter: c.columnDelimiter,
		QuotedSegments:  c.quotedSegments,
		QuotationMark:   c.quote(),
		EscapeCharacter: c.escape(),
		EscapeMode:      c.escapeMode,
	}
}

func (c Config) assemblerOptions() assembler.Options {
	return assembler.Options{
		ColumnHeaders:  c.columnHeaders,
		AllowAsymmetry: c.allowAsymmetry,
		SkipLines:      c.skipLines,
		LimitLines:     c.limitLines,
	}
}

func (c Config) tokenizerOptions() tokenizer.Options {
	return tokenizer.Options{
		LineDelimiter:   c.lineDelimiter,
		ColumnDelimiter: c.columnDelimiter,
		QuotationMark:   c.quote(),
		EscapeCharacter: c.escape(),
	}
}

// isSingleCharacter reports whether s is exactly one valid UTF-8 character.
func isSingleCharacter(s string) bool {
	return utf8.ValidString(s) && utf8.RuneCountInString(s) == 1
}

// options collects Option values before validation.
type options struct {
	config Config
	logger *zap.Logger
}

// Option configures a Parser. Unset options keep their defaults.
type Option func(*options)

// WithLineDelimiter sets the line delimiter. Default: "\r\n".
func WithLineDelimiter(delimiter string) Option {
	return func(o *options) {
		o.config.lineDelimiter = delimiter
	}
}

// WithColumnDelimiter sets the column delimiter. Default: ",".
func WithColumnDelimiter(delimiter string) Option {
	return func(o *options) {
		o.config.columnDelimiter = delimiter
	}
}

// WithColumnHeaders takes column names from the first line. Default: false.
func WithColumnHeaders(enabled bool) Option {
	return func(o *options) {
		o.config.columnHeaders = enabled
	}
}

// WithQuotedSegments lets a quotation mark in the middle of a column open a
// quoted segment. Default: false.
func WithQuotedSegments(enabled bool) Option {
	return func(o *options) {
		o.config.quotedSegments = enabled
	}
}

// WithQuotationMark sets the quotation mark. It must be a single character. Default: '"'.
func WithQuotationMark(mark string) Option {
	return func(o *options) {
		o.config.quotationMark = mark
		o.config.hasQuotationMark = true
	}
}

// WithoutQuotationMark disables quoting.
func WithoutQuotationMark() Option {
	return func(o *options) {
		o.config.quotationMark = ""
		o.config.hasQuotationMark = false
	}
}

// WithEscapeCharacter sets the character that escapes a following quotation
// mark. It must be a single character. Default: '"'.
func WithEscapeCharacter(char string) Option {
	return func(o *options) {
		o.config.escapeCharacter = char
		o.config.hasEscapeCharacter = true
	}
}

// WithoutEscapeCharacter disables escaping.
func WithoutEscapeCharacter() Option {
	return func(o *options) {
		o.config.escapeCharacter = ""
		o.config.hasEscapeCharacter = false
	}
}

// WithAllowAsymmetry accepts lines whose column count differs from the first line. Default: false.
func WithAllowAsymmetry(enabled bool) Option {
	return func(o *options) {
		o.config.allowAsymmetry = enabled
	}
}

// WithSkipLines drops n leading physical lines. Default: 0.
func WithSkipLines(n int) Option {
	return func(o *options) {
		o.config.skipLines = n
	}
}

// WithLimitLines stops after n lines, the header line included. 0 means unlimited.
func WithLimitLines(n int) Option {
	return func(o *options) {
		o.config.limitLines = n
	}
}

// WithLogger sets the logger used for parse diagnostics. Default: a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
