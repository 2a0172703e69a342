package shell_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/adapters/shell"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newRunner(t *testing.T) *shell.Runner {
	t.Helper()
	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	return shell.NewRunner(logger)
}

func TestRun_Pass(t *testing.T) {
	r := newRunner(t)

	result := r.Run(context.Background(), domain.TestCase{
		Name:    "echo",
		Command: []string{"echo", "hello"},
	})

	assert.Equal(t, domain.OutcomePassed, result.Outcome)
	assert.Contains(t, result.Output, "hello")
	assert.True(t, result.Duration > 0)
}

func TestRun_NonZeroExitFails(t *testing.T) {
	r := newRunner(t)

	result := r.Run(context.Background(), domain.TestCase{
		Name:    "false",
		Command: []string{"false"},
	})

	assert.Equal(t, domain.OutcomeFailed, result.Outcome)
	assert.NotEmpty(t, result.Message)
}

func TestRun_UnknownBinaryErrors(t *testing.T) {
	r := newRunner(t)

	result := r.Run(context.Background(), domain.TestCase{
		Name:    "missing",
		Command: []string{"definitely-not-a-binary-rig"},
	})

	assert.Equal(t, domain.OutcomeErrored, result.Outcome)
}

func TestRun_EmptyCommandErrors(t *testing.T) {
	r := newRunner(t)

	result := r.Run(context.Background(), domain.TestCase{Name: "empty"})
	assert.Equal(t, domain.OutcomeErrored, result.Outcome)
}

func TestRun_CancelledContextSkips(t *testing.T) {
	r := newRunner(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := r.Run(ctx, domain.TestCase{Name: "skip", Command: []string{"echo", "hi"}})
	assert.Equal(t, domain.OutcomeSkipped, result.Outcome)
}

func TestRun_CaseEnvOverridesProcessEnv(t *testing.T) {
	r := newRunner(t)
	t.Setenv("RIG_TEST_VALUE", "outer")

	result := r.Run(context.Background(), domain.TestCase{
		Name:    "env",
		Command: []string{"sh", "-c", "echo $RIG_TEST_VALUE"},
		Env:     map[string]string{"RIG_TEST_VALUE": "inner"},
	})

	require.Equal(t, domain.OutcomePassed, result.Outcome)
	assert.Contains(t, result.Output, "inner")
	assert.NotContains(t, result.Output, "outer")
}
