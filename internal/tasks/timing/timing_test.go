package timing_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/rig/internal/registry"
	"go.trai.ch/rig/internal/tasks/timing"
	"gopkg.in/yaml.v3"
)

func runLifecycle(t *testing.T, task ports.Task) {
	t.Helper()
	ctx := context.Background()
	suite := &domain.Suite{Name: "api"}

	require.NoError(t, task.(ports.EnvironmentPreparer).SetupTestEnvironment(ctx))
	require.NoError(t, task.(ports.BeforeSuiteHook).BeforeSuiteRun(ctx, suite))
	require.NoError(t, task.(ports.AfterSuiteHook).AfterSuiteRun(ctx, suite))
	require.NoError(t, task.(ports.EnvironmentCleaner).TeardownTestEnvironment(ctx))
}

func TestProfile_WritesPhases(t *testing.T) {
	dir := t.TempDir()
	task, err := timing.New(registry.TaskConfig{OutputDir: dir})
	require.NoError(t, err)

	runLifecycle(t, task)

	data, err := os.ReadFile(filepath.Join(dir, "timing.yaml")) //nolint:gosec // test-owned path
	require.NoError(t, err)

	var doc struct {
		Phases []struct {
			Name     string `yaml:"name"`
			Duration string `yaml:"duration"`
		} `yaml:"phases"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))

	names := make([]string, len(doc.Phases))
	for i, p := range doc.Phases {
		names[i] = p.Name
		assert.NotEmpty(t, p.Duration)
	}
	assert.Equal(t, []string{"environment_setup", "suite_run", "total"}, names)
}

func TestProfile_FileNameOption(t *testing.T) {
	dir := t.TempDir()
	task, err := timing.New(registry.TaskConfig{
		OutputDir: dir,
		Options:   map[string]string{timing.FlagFile: "phases.yaml"},
	})
	require.NoError(t, err)

	runLifecycle(t, task)

	_, err = os.Stat(filepath.Join(dir, "phases.yaml"))
	require.NoError(t, err)
}

func TestProfile_ContributesFlag(t *testing.T) {
	entries, err := registry.Resolve([]string{"timing.Profile"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Flags)
}
