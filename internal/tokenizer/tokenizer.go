package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Options configures the tokenizer. Empty marks are absent.
type Options struct {
	LineDelimiter   string
	ColumnDelimiter string
	QuotationMark   string
	EscapeCharacter string
}

// DefaultOptions returns default tokenizer options.
func DefaultOptions() Options {
	return Options{
		LineDelimiter:   "\r\n",
		ColumnDelimiter: ",",
		QuotationMark:   `"`,
		EscapeCharacter: `"`,
	}
}

// NewTokenizer creates a tokenizer for delimited text.
// Matchers are tried in the same order the scanner checks characters:
// 1. Column delimiter
// 2. Line delimiter
// 3. Escape character (only when distinct from the quotation mark)
// 4. Quotation mark
// 5. Text (everything else, including partial delimiters)
func NewTokenizer(opts Options) tokenizer.Tokenizer {
	matchers := make([]tokenizer.Matcher, 0, 5)
	matchers = append(matchers,
		tokenizer.StringMatcherFunc(TokenColumnDelimiter, opts.ColumnDelimiter),
		tokenizer.StringMatcherFunc(TokenLineDelimiter, opts.LineDelimiter),
	)
	if opts.EscapeCharacter != "" && opts.EscapeCharacter != opts.QuotationMark {
		matchers = append(matchers, tokenizer.StringMatcherFunc(TokenEscape, opts.EscapeCharacter))
	}
	if opts.QuotationMark != "" {
		matchers = append(matchers, tokenizer.StringMatcherFunc(TokenQuote, opts.QuotationMark))
	}
	matchers = append(matchers, TextMatcher(opts))

	return tokenizer.NewTokenizerWithoutWhitespace(matchers...)
}

// TextMatcher creates a matcher for runs of ordinary characters.
//
// A run stops before any character that could start a structural token. The
// first character is always consumed, because the structural matchers ahead
// of this one have already rejected it (for example the '#' of an
// incomplete "#EOL#").
func TextMatcher(opts Options) tokenizer.Matcher {
	stops := stopRunes(opts)

	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}

			if len(value) > 0 && stops[r] {
				break
			}

			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken(TokenText, value)
	}
}

// stopRunes collects the first characters of every structural token.
func stopRunes(opts Options) map[rune]bool {
	stops := make(map[rune]bool, 4)
	for _, s := range []string{opts.ColumnDelimiter, opts.LineDelimiter, opts.QuotationMark, opts.EscapeCharacter} {
		for _, r := range s {
			stops[r] = true
			break
		}
	}
	return stops
}
