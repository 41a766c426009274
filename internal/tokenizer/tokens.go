// Package tokenizer provides a lexical view of delimited text using Shape's tokenizer framework.
package tokenizer

// Token type constants for delimited text.
//
// Note: The tokenizer is context free. It does not know whether a delimiter
// sits inside a quoted region; that interpretation belongs to the scanner.
const (
	// Structural tokens
	TokenColumnDelimiter = "ColumnDelimiter" // column separator, any length
	TokenLineDelimiter   = "LineDelimiter"   // line separator, any length
	TokenQuote           = "Quote"           // quotation mark
	TokenEscape          = "Escape"          // escape character distinct from the quotation mark

	// Content token
	TokenText = "Text" // run of ordinary characters
)
