package report_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/adapters/report"
	"go.trai.ch/rig/internal/core/domain"
)

func resultFixture() *domain.SuiteResult {
	return &domain.SuiteResult{
		Suite:    "api",
		Duration: 1500 * time.Millisecond,
		Cases: []domain.CaseResult{
			{
				Name:     "unit",
				Outcome:  domain.OutcomePassed,
				Output:   "ok\n",
				Duration: 500 * time.Millisecond,
			},
			{
				Name:     "integration",
				Outcome:  domain.OutcomeFailed,
				Output:   "assertion failed\n",
				Message:  "exit status 1",
				Duration: 750 * time.Millisecond,
			},
			{
				Name:    "env",
				Outcome: domain.OutcomeErrored,
				Message: "executable not found",
			},
			{
				Name:    "later",
				Outcome: domain.OutcomeSkipped,
				Message: "not run",
			},
		},
	}
}

func TestDump_GoldenReport(t *testing.T) {
	dir := t.TempDir()
	sink := report.NewJUnitSink()

	path, err := sink.Dump(resultFixture(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "TEST-api.xml"), path)

	data, err := os.ReadFile(path) //nolint:gosec // test-owned path
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "junit_report", data)
}

func TestDump_CreatesOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	sink := report.NewJUnitSink()

	path, err := sink.Dump(resultFixture(), dir)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestDump_SanitizesSuiteName(t *testing.T) {
	dir := t.TempDir()
	sink := report.NewJUnitSink()

	result := resultFixture()
	result.Suite = "api suite/v2"

	path, err := sink.Dump(result, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "TEST-api_suite_v2.xml"), path)
}

func TestDump_UnwritableDirectory(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	dir := filepath.Join(t.TempDir(), "ro")
	require.NoError(t, os.MkdirAll(dir, 0o500))

	_, err := report.NewJUnitSink().Dump(resultFixture(), filepath.Join(dir, "sub"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrPermission))
}
