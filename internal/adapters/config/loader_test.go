package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/adapters/config"
	"go.trai.ch/rig/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rig.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `
suite:
  name: api
  cases:
    - name: unit
      cmd: ["go", "test", "./..."]
      env:
        GOFLAGS: "-count=1"
    - name: lint
      cmd: ["golangci-lint", "run"]
tasks:
  - timing.Profile
  - checksum.Manifest
output_dir: build/reports
failfast: true
verbosity: 2
workers: 4
options:
  timing-file: phases.yaml
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "api", cfg.Suite.Name)
	require.Len(t, cfg.Suite.Cases, 2)
	assert.Equal(t, "unit", cfg.Suite.Cases[0].Name)
	assert.Equal(t, []string{"go", "test", "./..."}, cfg.Suite.Cases[0].Command)
	assert.Equal(t, "-count=1", cfg.Suite.Cases[0].Env["GOFLAGS"])

	assert.Equal(t, []string{"timing.Profile", "checksum.Manifest"}, cfg.Tasks)
	assert.Equal(t, "build/reports", cfg.OutputDir)
	assert.True(t, cfg.Settings.FailFast)
	assert.Equal(t, 2, cfg.Settings.Verbosity)
	assert.Equal(t, 4, cfg.Settings.Workers)
	assert.Equal(t, "phases.yaml", cfg.Options["timing-file"])
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
suite:
  cases:
    - name: unit
      cmd: ["true"]
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "suite", cfg.Suite.Name)
	assert.Equal(t, domain.DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, 1, cfg.Settings.Verbosity)
	assert.False(t, cfg.Settings.FailFast)
	assert.Empty(t, cfg.Tasks)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantIs  error
	}{
		{
			name:    "no cases",
			content: "suite:\n  name: empty\n",
			wantIs:  domain.ErrNoSuiteCases,
		},
		{
			name: "case without command",
			content: `
suite:
  cases:
    - name: broken
`,
		},
		{
			name: "duplicate case name",
			content: `
suite:
  cases:
    - name: dup
      cmd: ["true"]
    - name: dup
      cmd: ["false"]
`,
		},
		{
			name: "malformed descriptor",
			content: `
suite:
  cases:
    - name: unit
      cmd: ["true"]
tasks:
  - notamodule
`,
			wantIs: domain.ErrNotATaskModule,
		},
		{
			name:    "invalid yaml",
			content: "suite: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.True(t, errors.Is(err, tt.wantIs))
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
