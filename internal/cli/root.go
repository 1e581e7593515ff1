// Package cli defines the pvkbot command surface.
package cli

import "github.com/spf13/cobra"

// NewRootCmd creates the top-level "pvkbot" command and registers all
// subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pvkbot",
		Short: "KiberOne trial-lesson signup bot",
	}

	root.AddCommand(
		newServeCmd(),
	)

	return root
}
