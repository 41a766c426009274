package command

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

// OutputFormat selects how results are printed.
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
)

var outputFormats = []OutputFormat{FormatTable, FormatJSON, FormatYAML}

// ParseFormat parses a string into an OutputFormat.
func ParseFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(s))
	if !lo.Contains(outputFormats, format) {
		return "", fmt.Errorf("invalid format: %s (valid: table, json, yaml)", s)
	}
	return format, nil
}

// encode writes data as JSON or YAML.
func encode(w io.Writer, format OutputFormat, data any) error {
	opts := []yaml.EncodeOption{yaml.UseJSONMarshaler()}
	if format == FormatJSON {
		opts = append(opts, yaml.JSON())
	}
	if err := yaml.NewEncoder(w, opts...).Encode(data); err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

// writeResult prints a parse result in the given format.
func writeResult(w io.Writer, format OutputFormat, result *dsv.Result) error {
	if format != FormatTable {
		return encode(w, format, result)
	}

	// Asymmetric lines are padded to the width of the name table.
	width := len(result.ColumnNames)
	rows := lo.Map(result.Lines, func(line []string, _ int) []string {
		if len(line) >= width {
			return line
		}
		return append(append(make([]string, 0, width), line...), make([]string, width-len(line))...)
	})
	return writeTable(w, result.ColumnNames, rows)
}

// writeTokens prints tokens in the given format. Table values are quoted so
// delimiters stay visible.
func writeTokens(w io.Writer, format OutputFormat, tokens []dsv.Token) error {
	if format != FormatTable {
		return encode(w, format, tokens)
	}

	rows := lo.Map(tokens, func(t dsv.Token, _ int) []string {
		return []string{
			t.Kind,
			strconv.Quote(t.Value),
			strconv.Itoa(t.Offset),
			strconv.Itoa(t.Row),
			strconv.Itoa(t.Column),
		}
	})
	return writeTable(w, []string{"kind", "value", "offset", "row", "column"}, rows)
}

func writeTable(w io.Writer, headers []string, rows [][]string) error {
	if len(headers) == 0 {
		return nil
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithTrimSpace(tw.Off),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header(headers)

	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
