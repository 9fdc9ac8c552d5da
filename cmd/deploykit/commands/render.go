package commands

import (
	"github.com/spf13/cobra"

	"github.com/deploykit/deploykit/cmd/deploykit/handlers"
)

// Render returns the command that builds a deployment and writes its
// resource manifests.
//
// Flags:
//
//	--config, -c: Path to the deployment configuration (default "deploy.yaml")
//	--output, -o: Path to the manifest output file ("-" for stdout)
func Render() *cobra.Command {
	var (
		configPath string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render deployment manifests from a configuration",
		Long: `Render the resource manifests of one API deployment.

The configuration is validated, capabilities are resolved (generating a
fresh database credential on every run), and the finalized resources are
written as a multi-document YAML stream for the provisioning engine to
apply. Nothing is created by this command itself.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Render(cmd.Context(), configPath, outputPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "deploy.yaml", "Deployment configuration file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "-", "Manifest output file (\"-\" for stdout)")

	return cmd
}
