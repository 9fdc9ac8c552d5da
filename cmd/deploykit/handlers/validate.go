package handlers

import (
	"fmt"
)

// Validate loads the configuration and runs the full build, including
// capability resolution, without emitting anything.
func Validate(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	spec, err := cfg.ToBuilder().Build()
	if err != nil {
		return fmt.Errorf("configuration is invalid: %w", err)
	}

	fmt.Printf("Configuration %s is valid.\n\n", configPath)
	fmt.Println("Resources that would be rendered:")
	for _, d := range spec.All() {
		fmt.Printf("  %-18s %s\n", d.Kind(), d.Name())
	}
	return nil
}
