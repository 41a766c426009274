package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

// sniffSampleSize is how much of the input --sniff looks at.
const sniffSampleSize = 64 * 1024

// addLexicalFlags registers the flags that shape tokens: delimiters and marks.
func addLexicalFlags(flags *pflag.FlagSet) {
	flags.String("line-delimiter", `\r\n`, "character sequence separating lines")
	flags.String("column-delimiter", dsv.DefaultColumnDelimiter, "character sequence separating columns")
	flags.String("quotation-mark", dsv.DefaultQuotationMark, "single character opening and closing quoted columns")
	flags.Bool("no-quotation-mark", false, "disable quoting")
	flags.String("escape-character", dsv.DefaultEscapeCharacter, "single character escaping the quotation mark")
	flags.Bool("no-escape-character", false, "disable escaping")
}

// addParseFlags registers the flags that control line assembly.
func addParseFlags(flags *pflag.FlagSet) {
	flags.Bool("headers", false, "take column names from the first line")
	flags.Bool("quoted-segments", false, "treat quotation marks inside a column as quoted segments")
	flags.Bool("allow-asymmetry", false, "accept lines with a different column count than the first line")
	flags.Int("skip-lines", 0, "number of lines to skip before parsing")
	flags.Int("limit-lines", 0, "maximum number of lines to parse, header included (0 means unlimited)")
}

// lexicalOptions builds the delimiter and mark options from flags, the
// environment and the config file.
func (dc *DsvCommand) lexicalOptions() ([]dsv.Option, error) {
	lineDelimiter, err := decodeEscapes(dc.v.GetString("line-delimiter"))
	if err != nil {
		return nil, fmt.Errorf("line-delimiter: %w", err)
	}
	columnDelimiter, err := decodeEscapes(dc.v.GetString("column-delimiter"))
	if err != nil {
		return nil, fmt.Errorf("column-delimiter: %w", err)
	}

	opts := []dsv.Option{
		dsv.WithLineDelimiter(lineDelimiter),
		dsv.WithColumnDelimiter(columnDelimiter),
		dsv.WithLogger(dc.logger),
	}

	if dc.v.GetBool("no-quotation-mark") {
		opts = append(opts, dsv.WithoutQuotationMark())
	} else {
		opts = append(opts, dsv.WithQuotationMark(dc.v.GetString("quotation-mark")))
	}

	if dc.v.GetBool("no-escape-character") {
		opts = append(opts, dsv.WithoutEscapeCharacter())
	} else {
		opts = append(opts, dsv.WithEscapeCharacter(dc.v.GetString("escape-character")))
	}

	return opts, nil
}

// parseOptions builds the full option set for the parse command. With
// --sniff, the dialect guessed from data fills in delimiters and headers
// that were not set by flag, environment or config file.
func (dc *DsvCommand) parseOptions(data []byte) ([]dsv.Option, error) {
	opts, err := dc.lexicalOptions()
	if err != nil {
		return nil, err
	}

	opts = append(opts,
		dsv.WithColumnHeaders(dc.v.GetBool("headers")),
		dsv.WithQuotedSegments(dc.v.GetBool("quoted-segments")),
		dsv.WithAllowAsymmetry(dc.v.GetBool("allow-asymmetry")),
		dsv.WithSkipLines(dc.v.GetInt("skip-lines")),
		dsv.WithLimitLines(dc.v.GetInt("limit-lines")),
	)

	if !dc.v.GetBool("sniff") {
		return opts, nil
	}

	dialect := dsv.Sniff(string(data[:min(len(data), sniffSampleSize)]))
	dc.logger.Debug("sniffed dialect",
		zap.String("lineDelimiter", strconv.Quote(dialect.LineDelimiter)),
		zap.String("columnDelimiter", strconv.Quote(dialect.ColumnDelimiter)),
		zap.Bool("hasHeader", dialect.HasHeader))

	if !dc.v.IsSet("line-delimiter") {
		opts = append(opts, dsv.WithLineDelimiter(dialect.LineDelimiter))
	}
	if !dc.v.IsSet("column-delimiter") {
		opts = append(opts, dsv.WithColumnDelimiter(dialect.ColumnDelimiter))
	}
	if !dc.v.IsSet("headers") {
		opts = append(opts, dsv.WithColumnHeaders(dialect.HasHeader))
	}
	return opts, nil
}

// decodeEscapes interprets Go escape sequences such as \r\n and \t in s.
// Values without a backslash are returned unchanged.
func decodeEscapes(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	decoded, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
	if err != nil {
		return "", fmt.Errorf("invalid escape sequence in %q: %w", s, err)
	}
	return decoded, nil
}
