package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deploy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, `
name: my-api
image: my-api-image
port: 80
replicas: 2
env:
  LOG_LEVEL: debug
database:
  size: micro
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "my-api", cfg.Name)
	assert.Equal(t, "my-api-image", cfg.Image)
	assert.Equal(t, 80, cfg.Port)
	assert.Equal(t, 2, cfg.Replicas)
	assert.Equal(t, "debug", cfg.Env["LOG_LEVEL"])
	require.NotNil(t, cfg.Database)
	assert.Equal(t, "micro", cfg.Database.Size)
}

func TestLoadFile_Defaults(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, `
name: my-api
image: my-api-image
port: 8080
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultReplicas, cfg.Replicas)
	assert.Equal(t, DefaultNamespace, cfg.Namespace)
	assert.Nil(t, cfg.Database)
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing file", "", "failed to read config file"},
		{"bad yaml", "name: [unclosed", "failed to unmarshal yaml"},
		{"invalid config", "name: my-api\nimage: img\nport: 0\n", "validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var path string
			if tt.content == "" {
				path = filepath.Join(t.TempDir(), "missing.yaml")
			} else {
				path = writeTempConfig(t, tt.content)
			}

			_, err := LoadFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWriteFile_RoundTrip(t *testing.T) {
	t.Parallel()
	cfg := &Config{
		Name:      "my-api",
		Image:     "my-api-image",
		Port:      80,
		Replicas:  3,
		Namespace: "staging",
		Database:  &DatabaseConfig{Size: "small"},
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
