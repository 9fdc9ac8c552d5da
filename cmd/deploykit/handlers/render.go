package handlers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/deploykit/deploykit/internal/config"
	"github.com/deploykit/deploykit/pkg/emit"
)

// Factory function variables for render - can be replaced in tests.
var (
	// loadConfig loads the deployment configuration from a file.
	loadConfig = config.LoadFile

	// stdout is where manifests go when the output path is "-".
	stdout io.Writer = os.Stdout

	// newLogger constructs the logger used for emission events.
	newLogger = func() logr.Logger {
		return zap.New(zap.UseDevMode(os.Getenv("DEBUG") == "true"))
	}
)

// Render builds the deployment described by configPath and writes its
// manifests to outputPath ("-" for stdout). A fresh credential is generated
// on every run.
func Render(ctx context.Context, configPath, outputPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	spec, err := cfg.ToBuilder().Build()
	if err != nil {
		return fmt.Errorf("failed to build deployment: %w", err)
	}

	log := newLogger().WithName("render").WithValues("app", cfg.Name)

	out := stdout
	if outputPath != "-" {
		f, err := os.Create(outputPath) // #nosec G304
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	emitter := emit.NewManifestEmitter(out, cfg.Namespace, emit.NewLogrObserver(log))
	if err := emitter.Emit(ctx, spec); err != nil {
		return fmt.Errorf("failed to emit manifests: %w", err)
	}

	if outputPath != "-" {
		log.Info("wrote manifests", "path", outputPath, "resources", len(spec.All()))
	}
	return nil
}
