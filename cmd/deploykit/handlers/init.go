// Package handlers implements the execution logic behind the CLI commands.
package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/deploykit/deploykit/internal/config"
	"github.com/deploykit/deploykit/internal/config/wizard"
)

// Factory function variables - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// isTerminal reports whether stdout is an interactive terminal.
	isTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// runWizard runs the interactive configuration wizard.
	runWizard = wizard.RunWizard

	// writeConfig writes the config to a file.
	writeConfig = config.WriteFile
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if !isTerminal() {
		return fmt.Errorf("init requires an interactive terminal; create %s manually instead", outputPath)
	}

	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := result.ToConfig()

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("deploykit - declarative API deployments")
	fmt.Println("=======================================")
	fmt.Println()
	fmt.Println("This wizard creates a deployment configuration with sensible defaults.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println(successStyle.Render("Configuration saved!"))
	fmt.Println()
	fmt.Printf("  File: %s\n", pathStyle.Render(outputPath))
	fmt.Println()
	fmt.Printf("  Application: %s\n", cfg.Name)
	fmt.Printf("  Image:       %s\n", cfg.Image)
	fmt.Printf("  Port:        %d, replicas: %d\n", cfg.Port, cfg.Replicas)
	if cfg.Database != nil {
		fmt.Printf("  Database:    postgres (%s)\n", cfg.Database.Size)
	}
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  deploykit validate -c %s\n", outputPath)
	fmt.Printf("  deploykit render -c %s\n", outputPath)
}
