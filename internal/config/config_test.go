package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploykit/deploykit/pkg/builder"
	"github.com/deploykit/deploykit/pkg/descriptor"
)

func validConfig() *Config {
	return &Config{
		Name:     "my-api",
		Image:    "my-api-image",
		Port:     80,
		Replicas: 2,
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing name", func(c *Config) { c.Name = "" }, "name is required"},
		{"uppercase name", func(c *Config) { c.Name = "MyAPI" }, "lowercase"},
		{"leading hyphen", func(c *Config) { c.Name = "-api" }, "hyphen"},
		{"missing image", func(c *Config) { c.Image = "" }, "image is required"},
		{"port zero", func(c *Config) { c.Port = 0 }, "port"},
		{"port too large", func(c *Config) { c.Port = 70000 }, "port"},
		{"zero replicas", func(c *Config) { c.Replicas = 0 }, "replicas"},
		{"bad database size", func(c *Config) { c.Database = &DatabaseConfig{Size: "huge"} }, "huge"},
		{"valid database", func(c *Config) { c.Database = &DatabaseConfig{Size: "small"} }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestToBuilder(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Env = map[string]string{"LOG_LEVEL": "info"}
	cfg.Database = &DatabaseConfig{Size: "micro"}

	spec, err := cfg.ToBuilder().Build()
	require.NoError(t, err)

	level, ok := spec.Workload.Field(builder.EnvFieldPrefix + "LOG_LEVEL")
	require.True(t, ok)
	assert.Equal(t, "info", level)

	assert.Len(t, spec.ExtrasOfKind(descriptor.KindManagedDatabase), 1)
	assert.Len(t, spec.ExtrasOfKind(descriptor.KindCredential), 1)

	// Database is attached last: its DATABASE_URL wins over user env.
	cfg2 := validConfig()
	cfg2.Env = map[string]string{"DATABASE_URL": "postgres://elsewhere"}
	cfg2.Database = &DatabaseConfig{Size: "micro"}

	spec2, err := cfg2.ToBuilder().Build()
	require.NoError(t, err)
	url, _ := spec2.Workload.Field(builder.EnvFieldPrefix + "DATABASE_URL")
	assert.NotEqual(t, "postgres://elsewhere", url)
}
