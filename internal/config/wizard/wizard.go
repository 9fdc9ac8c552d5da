package wizard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/deploykit/deploykit/internal/config"
	"github.com/deploykit/deploykit/pkg/builder"
)

// Result holds the user's choices from the wizard.
type Result struct {
	Name      string
	Image     string
	Port      string
	Replicas  int
	Namespace string
	EnvText   string

	AttachDatabase bool
	DatabaseSize   builder.DatabaseSize
}

// RunWizard runs the interactive deployment configuration wizard.
func RunWizard(ctx context.Context) (*Result, error) {
	result := &Result{
		// Defaults
		Port:         "8080",
		Replicas:     config.DefaultReplicas,
		Namespace:    config.DefaultNamespace,
		DatabaseSize: builder.SizeMicro,
	}

	form := huh.NewForm(
		// Application identity
		huh.NewGroup(
			huh.NewInput().
				Title("Application name").
				Description("Used for every derived resource (DNS-safe, lowercase)").
				Placeholder("my-api").
				Value(&result.Name).
				Validate(validateName),

			huh.NewInput().
				Title("Container image").
				Description("Image reference to deploy").
				Placeholder("registry.example.com/my-api:latest").
				Value(&result.Image).
				Validate(validateImage),
		),

		// Workload shape
		huh.NewGroup(
			huh.NewInput().
				Title("Container port").
				Description("The port your application listens on").
				Value(&result.Port).
				Validate(validatePort),

			huh.NewSelect[int]().
				Title("Replicas").
				Description("Number of workload replicas").
				Options(
					huh.NewOption("1 replica", 1),
					huh.NewOption("2 replicas", 2),
					huh.NewOption("3 replicas", 3),
					huh.NewOption("5 replicas", 5),
				).
				Value(&result.Replicas),

			huh.NewInput().
				Title("Namespace").
				Description("Target namespace for rendered resources").
				Value(&result.Namespace),
		),

		// Environment
		huh.NewGroup(
			huh.NewText().
				Title("Environment variables (optional)").
				Description("One KEY=VALUE per line. Leave empty to skip.").
				Value(&result.EnvText).
				Validate(validateEnvText),
		),

		// Managed database
		huh.NewGroup(
			huh.NewConfirm().
				Title("Attach a managed PostgreSQL database?").
				Description("Generates a credential and injects a connection string").
				Value(&result.AttachDatabase),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	// Database size only matters when a database is attached.
	if result.AttachDatabase {
		sizeForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[builder.DatabaseSize]().
					Title("Database size").
					Description("Instance size tier").
					Options(
						huh.NewOption("Micro  - dev and testing", builder.SizeMicro),
						huh.NewOption("Small  - light production", builder.SizeSmall),
						huh.NewOption("Medium - steady production", builder.SizeMedium),
						huh.NewOption("Large  - heavy production", builder.SizeLarge),
					).
					Value(&result.DatabaseSize),
			),
		)
		if err := sizeForm.RunWithContext(ctx); err != nil {
			return nil, fmt.Errorf("wizard canceled: %w", err)
		}
	}

	return result, nil
}

// ToConfig converts the wizard result to a deployment configuration.
func (r *Result) ToConfig() *config.Config {
	cfg := &config.Config{
		Name:      r.Name,
		Image:     r.Image,
		Replicas:  r.Replicas,
		Namespace: r.Namespace,
	}
	cfg.Port, _ = strconv.Atoi(r.Port)

	if env := ParseEnv(r.EnvText); len(env) > 0 {
		cfg.Env = env
	}
	if r.AttachDatabase {
		cfg.Database = &config.DatabaseConfig{Size: string(r.DatabaseSize)}
	}
	return cfg
}

// ParseEnv parses KEY=VALUE lines into a map. Blank lines are skipped;
// malformed lines are ignored because validateEnvText rejects them first.
func ParseEnv(text string) map[string]string {
	env := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok || key == "" {
			continue
		}
		env[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return env
}

func validateName(s string) error {
	if s == "" {
		return errNameRequired
	}
	if len(s) > 63 {
		return errNameInvalid
	}
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return errNameInvalid
		}
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return errNameInvalid
	}
	return nil
}

func validateImage(s string) error {
	if s == "" {
		return errImageRequired
	}
	return nil
}

func validatePort(s string) error {
	port, err := strconv.Atoi(s)
	if err != nil || port <= 0 || port >= 65536 {
		return errPortInvalid
	}
	return nil
}

func validateEnvText(s string) error {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, _, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return errEnvInvalid
		}
	}
	return nil
}
