// Package command implements the dsv command line.
package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// DsvCommand holds the state shared by dsv subcommands.
type DsvCommand struct {
	fs     afero.Fs
	v      *viper.Viper
	logger *zap.Logger
}

// NewRootCommand creates the dsv root command with all subcommands.
// Input files and the config file are read from fs.
func NewRootCommand(fs afero.Fs) *cobra.Command {
	v := viper.New()
	v.SetFs(fs)
	v.SetEnvPrefix("DSV")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	dc := &DsvCommand{
		fs:     fs,
		v:      v,
		logger: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:   "dsv",
		Short: "Parse delimited text with configurable delimiters and quoting",
		Long: heredoc.Doc(`
			dsv splits delimited text into column names and lines.

			Delimiters may be any character sequence; escape sequences such as \r\n and
			\t are decoded. Every flag can also be set in a config file (--config) or
			through a DSV_ environment variable, for example DSV_COLUMN_DELIMITER.
			Flags take precedence over the environment, which takes precedence over the
			config file.

			Examples:
			  dsv parse data.csv --headers
			  dsv parse --column-delimiter '\t' --format json < data.tsv
			  dsv tokens --line-delimiter '#EOL#' data.txt
		`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Flag errors have already been reported with usage at this point.
			cmd.SilenceUsage = true
			return dc.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = dc.logger.Sync()
		},
	}

	root.PersistentFlags().String("config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log debug output to stderr")

	AddParseCommand(root, dc)
	AddTokensCommand(root, dc)
	AddVersionCommand(root)

	return root
}

// load binds the executing command's flags, reads the config file and
// builds the logger.
func (dc *DsvCommand) load(cmd *cobra.Command) error {
	if err := dc.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	if path := dc.v.GetString("config"); path != "" {
		dc.v.SetConfigFile(path)
		if err := dc.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if dc.v.GetBool("verbose") {
		config := zap.NewDevelopmentConfig()
		config.DisableCaller = true
		logger, err := config.Build()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		dc.logger = logger
	}
	return nil
}

// readInput returns the contents of the file named by args, or stdin when
// args is empty or "-".
func (dc *DsvCommand) readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		dc.logger.Debug("reading input", zap.String("source", "stdin"))
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	dc.logger.Debug("reading input", zap.String("source", args[0]))
	data, err := afero.ReadFile(dc.fs, args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return data, nil
}
