// Package cli assembles the nocsim command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// Execute builds the root command and runs it against os.Args.
func Execute() error {
	root := &cobra.Command{
		Use:           "nocsim",
		Short:         "Discrete-event network-on-chip simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newVersionCmd())
	root.AddCommand(newServeCmd())
	return root.Execute()
}
