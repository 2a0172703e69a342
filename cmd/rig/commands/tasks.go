package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/rig/internal/registry"
)

func (c *CLI) newTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the registered task classes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, entry := range registry.All() {
				fmt.Fprintln(cmd.OutOrStdout(), entry.Descriptor.String())
			}
		},
	}
}
