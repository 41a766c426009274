package dsv

import (
	"github.com/shapestone/shape-dsv/internal/tokenizer"
)

// Token kinds reported by Tokenize.
const (
	TokenColumnDelimiter = tokenizer.TokenColumnDelimiter
	TokenLineDelimiter   = tokenizer.TokenLineDelimiter
	TokenQuote           = tokenizer.TokenQuote
	TokenEscape          = tokenizer.TokenEscape
	TokenText            = tokenizer.TokenText
)

// Token is a lexical unit of delimited text.
type Token struct {
	Kind   string `json:"kind" yaml:"kind"`
	Value  string `json:"value" yaml:"value"`
	Offset int    `json:"offset" yaml:"offset"`
	Row    int    `json:"row" yaml:"row"`
	Column int    `json:"column" yaml:"column"`
}
