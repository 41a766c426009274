package dsv

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// sniffColumnDelimiters are the column delimiters Sniff considers, in order
// of preference on equal scores.
var sniffColumnDelimiters = []string{",", "\t", ";", "|"}

var (
	headerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`),      // snake_case or identifier
		regexp.MustCompile(`^[a-zA-Z]+[A-Z][a-zA-Z]*$`),     // camelCase
		regexp.MustCompile(`^[A-Z][a-z]+([ ][A-Z][a-z]+)*$`), // Title Case
	}
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
		regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`),
	}
)

// Dialect is a guess at the delimiters of a sample and whether its first
// line holds column names.
type Dialect struct {
	LineDelimiter   string `json:"lineDelimiter" yaml:"lineDelimiter"`
	ColumnDelimiter string `json:"columnDelimiter" yaml:"columnDelimiter"`
	HasHeader       bool   `json:"hasHeader" yaml:"hasHeader"`
}

// Options returns the options that apply the dialect.
func (d Dialect) Options() []Option {
	return []Option{
		WithLineDelimiter(d.LineDelimiter),
		WithColumnDelimiter(d.ColumnDelimiter),
		WithColumnHeaders(d.HasHeader),
	}
}

// Sniff guesses the dialect of sample. A few complete lines are enough.
//
// The line delimiter is the first of "\r\n", "\n" and "\r" found in the
// sample. The column delimiter is the candidate (comma, tab, semicolon, pipe)
// that splits the first line most often, with a bonus when every line has the
// same column count. Quoted columns follow the default quotation rules.
func Sniff(sample string) Dialect {
	d := Dialect{
		LineDelimiter:   sniffLineDelimiter(sample),
		ColumnDelimiter: DefaultColumnDelimiter,
	}

	var lines [][]string
	best := 0
	for _, delim := range sniffColumnDelimiters {
		sampled := sniffLines(sample, d.LineDelimiter, delim)
		if len(sampled) == 0 {
			continue
		}

		width := len(sampled[0])
		score := width - 1
		if score <= 0 {
			continue
		}
		if lo.EveryBy(sampled, func(line []string) bool { return len(line) == width }) {
			score *= 10
		}
		if score > best {
			best = score
			d.ColumnDelimiter = delim
			lines = sampled
		}
	}

	if lines == nil {
		lines = sniffLines(sample, d.LineDelimiter, d.ColumnDelimiter)
	}
	d.HasHeader = looksLikeHeader(lines)
	return d
}

func sniffLineDelimiter(sample string) string {
	for _, delim := range []string{"\r\n", "\n", "\r"} {
		if strings.Contains(sample, delim) {
			return delim
		}
	}
	return DefaultLineDelimiter
}

// sniffLines splits sample with the given delimiters, dropping blank lines.
func sniffLines(sample, lineDelimiter, columnDelimiter string) [][]string {
	result, err := Parse(sample,
		WithLineDelimiter(lineDelimiter),
		WithColumnDelimiter(columnDelimiter),
		WithAllowAsymmetry(true),
	)
	if err != nil {
		return nil
	}
	return lo.Filter(result.Lines, func(line []string, _ int) bool {
		return len(line) > 1 || (len(line) == 1 && line[0] != "")
	})
}

// looksLikeHeader compares how many fields of the first line look like
// names against how many look like data. It needs at least two lines.
func looksLikeHeader(lines [][]string) bool {
	if len(lines) < 2 {
		return false
	}

	headerScore, dataScore := 0, 0
	for _, field := range lines[0] {
		field = strings.TrimSpace(field)
		if isLikelyHeader(field) {
			headerScore++
		}
		if isLikelyData(field) {
			dataScore++
		}
	}
	return headerScore > dataScore
}

func isLikelyHeader(s string) bool {
	if s == "" || isNumeric(s) {
		return false
	}
	return lo.SomeBy(headerPatterns, func(p *regexp.Regexp) bool { return p.MatchString(s) })
}

func isLikelyData(s string) bool {
	if s == "" {
		return false
	}
	if isNumeric(s) || strings.Contains(s, "@") {
		return true
	}
	return lo.SomeBy(datePatterns, func(p *regexp.Regexp) bool { return p.MatchString(s) })
}

// isNumeric reports whether s is an optionally negative decimal number.
func isNumeric(s string) bool {
	s = strings.TrimPrefix(strings.TrimSpace(s), "-")
	if s == "" {
		return false
	}

	hasDot := false
	for _, ch := range s {
		if ch == '.' {
			if hasDot {
				return false
			}
			hasDot = true
		} else if !unicode.IsDigit(ch) {
			return false
		}
	}
	return true
}
