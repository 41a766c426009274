package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

// Version is set at build time with -ldflags "-X".
var Version = "dev"

// AddVersionCommand adds the version subcommand to root.
func AddVersionCommand(root *cobra.Command) {
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the dsv version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dsv %s (%s)\n", Version, dsv.Format())
		},
	})
}
