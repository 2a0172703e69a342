// Package shell provides the subprocess case runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
)

// Runner implements ports.CaseRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new shell Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

var _ ports.CaseRunner = (*Runner)(nil)

// Run executes the case command as a subprocess. The case environment is
// layered over the process environment. Exit status maps to the outcome:
// zero passes, non-zero fails, and anything that prevents execution
// (empty command, unknown binary, cancelled context) errors or skips.
func (r *Runner) Run(ctx context.Context, tc domain.TestCase) domain.CaseResult {
	if ctx.Err() != nil {
		return domain.CaseResult{Name: tc.Name, Outcome: domain.OutcomeSkipped, Message: "cancelled"}
	}
	if len(tc.Command) == 0 {
		return domain.CaseResult{Name: tc.Name, Outcome: domain.OutcomeErrored, Message: "empty command"}
	}

	cmd := exec.CommandContext(ctx, tc.Command[0], tc.Command[1:]...) //nolint:gosec // command comes from the user's config
	cmd.Env = mergeEnvironment(os.Environ(), tc.Env)

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	start := time.Now()
	err := cmd.Run()
	result := domain.CaseResult{
		Name:     tc.Name,
		Output:   buf.String(),
		Duration: time.Since(start),
	}

	switch {
	case err == nil:
		result.Outcome = domain.OutcomePassed
	case isExitError(err):
		result.Outcome = domain.OutcomeFailed
		result.Message = err.Error()
	case ctx.Err() != nil:
		result.Outcome = domain.OutcomeSkipped
		result.Message = "cancelled"
	default:
		result.Outcome = domain.OutcomeErrored
		result.Message = err.Error()
	}
	return result
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

// mergeEnvironment layers overrides on top of the base "KEY=VALUE" list.
// Later entries win, so overrides are appended after deduplication.
func mergeEnvironment(base []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return base
	}

	merged := make([]string, 0, len(base)+len(overrides))
	for _, kv := range base {
		key, _, ok := strings.Cut(kv, "=")
		if ok {
			if _, overridden := overrides[key]; overridden {
				continue
			}
		}
		merged = append(merged, kv)
	}
	for k, v := range overrides {
		merged = append(merged, k+"="+v)
	}
	return merged
}
