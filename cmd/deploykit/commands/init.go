package commands

import (
	"github.com/spf13/cobra"

	"github.com/deploykit/deploykit/cmd/deploykit/handlers"
)

// Init returns the command for interactively creating a deployment configuration.
//
// Flags:
//
//	--output, -o: Path to output file (default "deploy.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a deployment configuration",
		Long: `Interactively create a deployment configuration file.

This command guides you through configuring your API deployment
step by step. It will ask about:

  - Application identity (name and container image)
  - Workload shape (port, replicas, namespace)
  - Environment variables
  - An optional managed PostgreSQL database and its size tier

The generated YAML is the input to "deploykit render".`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "deploy.yaml", "Output file path")

	return cmd
}
