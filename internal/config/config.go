package config

import (
	"fmt"

	"github.com/deploykit/deploykit/pkg/builder"
)

// Default values applied by LoadFile when the file omits them.
const (
	DefaultReplicas  = 1
	DefaultNamespace = "default"
)

// Config describes one API deployment.
type Config struct {
	// Name is the application name, used for every derived resource.
	Name string `yaml:"name"`

	// Image is the container image reference.
	Image string `yaml:"image"`

	// Port is the port the container listens on.
	Port int `yaml:"port"`

	// Replicas is the desired number of workload replicas.
	Replicas int `yaml:"replicas"`

	// Namespace is the target namespace for rendered resources.
	Namespace string `yaml:"namespace,omitempty"`

	// Env holds static environment variables passed to the workload.
	Env map[string]string `yaml:"env,omitempty"`

	// Database attaches a managed database when set.
	Database *DatabaseConfig `yaml:"database,omitempty"`
}

// DatabaseConfig configures the managed database capability.
type DatabaseConfig struct {
	// Size is the instance size tier (micro, small, medium, large).
	Size string `yaml:"size"`
}

// Validate checks the configuration for common errors and returns a detailed
// error if validation fails.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if err := validateName(c.Name); err != nil {
		return fmt.Errorf("invalid name %q: %w", c.Name, err)
	}
	if c.Image == "" {
		return fmt.Errorf("image is required")
	}
	if c.Port <= 0 || c.Port >= 65536 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.Replicas < 1 {
		return fmt.Errorf("replicas must be at least 1, got %d", c.Replicas)
	}
	if c.Database != nil {
		if _, err := builder.ParseDatabaseSize(c.Database.Size); err != nil {
			return fmt.Errorf("database validation failed: %w", err)
		}
	}
	return nil
}

// validateName enforces DNS-safe application names, since every rendered
// resource name derives from it.
func validateName(s string) error {
	if len(s) > 63 {
		return fmt.Errorf("must be 63 characters or less")
	}
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return fmt.Errorf("may only contain lowercase letters, numbers, and hyphens")
		}
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return fmt.Errorf("cannot start or end with a hyphen")
	}
	return nil
}

// ToBuilder constructs the deployment builder for this configuration,
// attaching capabilities in a fixed order: environment first, database
// second, so database-derived fields win on key collisions.
func (c *Config) ToBuilder() *builder.Builder {
	b := builder.New(c.Name, c.Image, c.Port, c.Replicas)
	if len(c.Env) > 0 {
		b = b.AttachEnvironment(c.Env)
	}
	if c.Database != nil {
		b = b.AttachManagedDatabase(builder.DatabaseOptions{
			Size: builder.DatabaseSize(c.Database.Size),
		})
	}
	return b
}
