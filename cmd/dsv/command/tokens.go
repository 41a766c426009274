package command

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

// AddTokensCommand adds the tokens subcommand to root.
func AddTokensCommand(root *cobra.Command, dc *DsvCommand) {
	cmd := &cobra.Command{
		Use:   "tokens [file|-]",
		Short: "Print the lexical tokens of delimited text",
		Long: heredoc.Doc(`
			Tokens reads a file, or stdin when the file is omitted or "-", and prints
			every delimiter, quotation mark, escape and text run with its position.
			Tokens are context free: a delimiter inside quotes is still a delimiter.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseFormat(dc.v.GetString("format"))
			if err != nil {
				return err
			}

			opts, err := dc.lexicalOptions()
			if err != nil {
				return err
			}
			p, err := dsv.New(opts...)
			if err != nil {
				return err
			}

			data, err := dc.readInput(cmd, args)
			if err != nil {
				return err
			}

			return writeTokens(cmd.OutOrStdout(), format, p.Tokenize(string(data)))
		},
	}

	addLexicalFlags(cmd.Flags())
	cmd.Flags().String("format", string(FormatTable), "output format (table, json, yaml)")

	root.AddCommand(cmd)
}
