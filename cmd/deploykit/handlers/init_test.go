package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploykit/deploykit/internal/config"
	"github.com/deploykit/deploykit/internal/config/wizard"
)

// saveAndRestoreFactories snapshots the factory function variables and
// restores them when the test finishes.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()
	origFileExists := fileExists
	origIsTerminal := isTerminal
	origRunWizard := runWizard
	origWriteConfig := writeConfig
	origLoadConfig := loadConfig
	origStdout := stdout
	origNewLogger := newLogger

	t.Cleanup(func() {
		fileExists = origFileExists
		isTerminal = origIsTerminal
		runWizard = origRunWizard
		writeConfig = origWriteConfig
		loadConfig = origLoadConfig
		stdout = origStdout
		newLogger = origNewLogger
	})
}

func TestInit_RequiresTerminal(t *testing.T) {
	saveAndRestoreFactories(t)

	isTerminal = func() bool { return false }

	err := Init(context.Background(), "deploy.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestInit_WritesWizardResult(t *testing.T) {
	saveAndRestoreFactories(t)

	isTerminal = func() bool { return true }
	fileExists = func(string) bool { return false }
	runWizard = func(context.Context) (*wizard.Result, error) {
		return &wizard.Result{
			Name:     "my-api",
			Image:    "my-api-image",
			Port:     "8080",
			Replicas: 2,
		}, nil
	}

	var written *config.Config
	var writtenPath string
	writeConfig = func(cfg *config.Config, path string) error {
		written = cfg
		writtenPath = path
		return nil
	}

	require.NoError(t, Init(context.Background(), "out.yaml"))
	assert.Equal(t, "out.yaml", writtenPath)
	require.NotNil(t, written)
	assert.Equal(t, "my-api", written.Name)
	assert.Equal(t, 8080, written.Port)
}

func TestInit_WizardCanceled(t *testing.T) {
	saveAndRestoreFactories(t)

	isTerminal = func() bool { return true }
	fileExists = func(string) bool { return false }
	runWizard = func(context.Context) (*wizard.Result, error) {
		return nil, errors.New("user aborted")
	}

	err := Init(context.Background(), "out.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wizard canceled")
}

func TestInit_WriteFailure(t *testing.T) {
	saveAndRestoreFactories(t)

	isTerminal = func() bool { return true }
	fileExists = func(string) bool { return true }
	runWizard = func(context.Context) (*wizard.Result, error) {
		return &wizard.Result{Name: "my-api", Image: "img", Port: "80", Replicas: 1}, nil
	}
	writeConfig = func(*config.Config, string) error {
		return errors.New("disk full")
	}

	err := Init(context.Background(), "out.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config")
}
