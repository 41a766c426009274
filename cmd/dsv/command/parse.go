package command

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

// AddParseCommand adds the parse subcommand to root.
func AddParseCommand(root *cobra.Command, dc *DsvCommand) {
	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse delimited text into column names and lines",
		Long: heredoc.Doc(`
			Parse reads a file, or stdin when the file is omitted or "-", and prints
			the column names and lines as a table, JSON or YAML.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dc.runParse(cmd, args)
		},
	}

	addLexicalFlags(cmd.Flags())
	addParseFlags(cmd.Flags())
	cmd.Flags().String("format", string(FormatTable), "output format (table, json, yaml)")
	cmd.Flags().Bool("sniff", false, "guess delimiters and headers from the input; explicit settings still win")

	root.AddCommand(cmd)
}

func (dc *DsvCommand) runParse(cmd *cobra.Command, args []string) error {
	format, err := ParseFormat(dc.v.GetString("format"))
	if err != nil {
		return err
	}

	data, err := dc.readInput(cmd, args)
	if err != nil {
		return err
	}

	opts, err := dc.parseOptions(data)
	if err != nil {
		return err
	}
	p, err := dsv.New(opts...)
	if err != nil {
		return err
	}

	result, err := p.ParseBytes(data)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	dc.logger.Debug("writing result",
		zap.String("format", string(format)),
		zap.Int("lines", result.Len()))

	return writeResult(cmd.OutOrStdout(), format, result)
}
