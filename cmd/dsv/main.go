// dsv parses delimited text from files or stdin and prints it as a table,
// JSON or YAML.
package main

import (
	"os"

	"github.com/spf13/afero"

	"github.com/shapestone/shape-dsv/cmd/dsv/command"
)

func main() {
	if err := command.NewRootCommand(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}
