package commands

import (
	"github.com/spf13/cobra"

	"github.com/deploykit/deploykit/cmd/deploykit/handlers"
)

// Validate returns the command that checks a deployment configuration
// without emitting manifests.
//
// Flags:
//
//	--config, -c: Path to the deployment configuration (default "deploy.yaml")
func Validate() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a deployment configuration",
		Long: `Validate a deployment configuration.

Runs the full build, including capability resolution, and reports the
resources that would be rendered. No output is written.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Validate(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "deploy.yaml", "Deployment configuration file")

	return cmd
}
