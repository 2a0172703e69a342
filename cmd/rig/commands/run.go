package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/rig/internal/app"
	"go.trai.ch/rig/internal/registry"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the configured test suite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			ci, _ := cmd.Flags().GetBool("ci")
			outputDir, _ := cmd.Flags().GetString("output-dir")

			opts := app.RunOptions{
				ConfigPath:  configPath,
				CI:          ci,
				OutputDir:   outputDir,
				TaskOptions: map[string]string{},
			}
			// Settings flags override the config file only when set.
			if cmd.Flags().Changed("failfast") {
				v, _ := cmd.Flags().GetBool("failfast")
				opts.FailFast = &v
			}
			if cmd.Flags().Changed("verbosity") {
				v, _ := cmd.Flags().GetInt("verbosity")
				opts.Verbosity = &v
			}
			if cmd.Flags().Changed("workers") {
				v, _ := cmd.Flags().GetInt("workers")
				opts.Workers = &v
			}
			// Everything else that was set belongs to a task class.
			cmd.Flags().Visit(func(f *pflag.Flag) {
				if builtinRunFlags[f.Name] {
					return
				}
				opts.TaskOptions[f.Name] = f.Value.String()
			})

			return c.app.Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().Bool("ci", false, "Enable the extended run: task hooks and XML report")
	cmd.Flags().String("output-dir", "", "Directory for the XML report and task artifacts")
	cmd.Flags().Bool("failfast", false, "Stop the suite on the first non-passing case")
	cmd.Flags().IntP("verbosity", "v", 1, "Runner verbosity (0 quiet, 1 normal, 2 echo all output)")
	cmd.Flags().Int("workers", 0, "Run cases in parallel with this many workers")

	// Every registered task class contributes its flags, configured or
	// not, so the command line parses the same way for every run.
	for _, entry := range registry.All() {
		if entry.Flags != nil {
			entry.Flags(cmd.Flags())
		}
	}
	return cmd
}

// builtinRunFlags are the run command's own flags, excluded from the
// task option pass-through.
var builtinRunFlags = map[string]bool{
	"ci":         true,
	"config":     true,
	"output-dir": true,
	"failfast":   true,
	"verbosity":  true,
	"workers":    true,
	"help":       true,
}
