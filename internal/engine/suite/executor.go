// Package suite implements the test suite executor used as the wrapped
// runner and as the dispatcher's collecting run.
package suite

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Executor runs suites case by case through a CaseRunner. It implements
// both ports.Runner (with its own configured settings) and
// ports.SuiteCollector (with caller-provided settings).
type Executor struct {
	cases     ports.CaseRunner
	telemetry ports.Telemetry
	logger    ports.Logger
	settings  domain.RunSettings
}

// NewExecutor creates an Executor with the given default settings.
func NewExecutor(cases ports.CaseRunner, telemetry ports.Telemetry, logger ports.Logger, settings domain.RunSettings) *Executor {
	return &Executor{
		cases:     cases,
		telemetry: telemetry,
		logger:    logger,
		settings:  settings,
	}
}

// Settings returns the executor's default run settings.
func (e *Executor) Settings() domain.RunSettings {
	return e.settings
}

// SetupTestEnvironment prepares the plain runner. The executor itself has
// no environment state; the hook exists so a wrapping dispatcher has a
// genuine runner lifecycle to delegate to.
func (e *Executor) SetupTestEnvironment(_ context.Context) error {
	e.logger.Info("setting up test environment")
	return nil
}

// TeardownTestEnvironment tears the plain runner down.
func (e *Executor) TeardownTestEnvironment(_ context.Context) error {
	e.logger.Info("tearing down test environment")
	return nil
}

// RunSuite executes the suite with the executor's own settings.
func (e *Executor) RunSuite(ctx context.Context, suite *domain.Suite) (*domain.SuiteResult, error) {
	return e.Collect(ctx, suite, e.settings)
}

// Collect executes the suite with explicit settings. Results are returned
// in suite order regardless of execution order. Under failfast, cases
// after the first non-passing one are reported as skipped.
func (e *Executor) Collect(ctx context.Context, suite *domain.Suite, settings domain.RunSettings) (*domain.SuiteResult, error) {
	if len(suite.Cases) == 0 {
		return nil, zerr.With(domain.ErrNoSuiteCases, "suite", suite.Name)
	}

	start := time.Now()
	var results []domain.CaseResult
	if settings.Workers > 1 {
		results = e.runParallel(ctx, suite, settings)
	} else {
		results = e.runSequential(ctx, suite, settings)
	}

	return &domain.SuiteResult{
		Suite:    suite.Name,
		Cases:    results,
		Duration: time.Since(start),
	}, nil
}

func (e *Executor) runSequential(ctx context.Context, suite *domain.Suite, settings domain.RunSettings) []domain.CaseResult {
	results := make([]domain.CaseResult, len(suite.Cases))
	stopped := false
	for i, tc := range suite.Cases {
		if stopped || ctx.Err() != nil {
			results[i] = skippedResult(tc)
			continue
		}
		results[i] = e.runCase(ctx, tc, settings)
		if settings.FailFast && results[i].Outcome != domain.OutcomePassed {
			stopped = true
		}
	}
	return results
}

func (e *Executor) runParallel(ctx context.Context, suite *domain.Suite, settings domain.RunSettings) []domain.CaseResult {
	results := make([]domain.CaseResult, len(suite.Cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(settings.Workers)

	for i, tc := range suite.Cases {
		if gctx.Err() != nil {
			results[i] = skippedResult(tc)
			continue
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				results[i] = skippedResult(tc)
				return nil
			}
			results[i] = e.runCase(gctx, tc, settings)
			if settings.FailFast && results[i].Outcome != domain.OutcomePassed {
				// Cancel the group so queued cases are skipped.
				return domain.ErrSuiteFailed
			}
			return nil
		})
	}
	// The only group error is the internal failfast signal; case failures
	// are reported through the result, not as an execution error.
	_ = g.Wait()

	for i, tc := range suite.Cases {
		if results[i].Outcome == "" {
			results[i] = skippedResult(tc)
		}
	}
	return results
}

func (e *Executor) runCase(ctx context.Context, tc domain.TestCase, settings domain.RunSettings) domain.CaseResult {
	vctx, vertex := e.telemetry.Record(ctx, "test."+tc.Name)
	result := e.cases.Run(vctx, tc)

	switch result.Outcome {
	case domain.OutcomePassed:
		vertex.Complete(nil)
	case domain.OutcomeSkipped:
		vertex.Complete(nil)
	default:
		_, _ = fmt.Fprint(vertex.Stderr(), result.Output)
		vertex.Complete(zerr.New(result.Message))
	}

	e.report(result, settings)
	return result
}

// report surfaces a case result on the log according to verbosity. In
// buffered mode output stays in the result for the XML report; it is only
// echoed for non-passing cases, or for all cases at verbosity 2 and up.
func (e *Executor) report(result domain.CaseResult, settings domain.RunSettings) {
	if settings.Verbosity < 1 {
		return
	}
	e.logger.Info(fmt.Sprintf("%s: %s (%.3fs)", result.Name, result.Outcome, result.Duration.Seconds()))

	echo := settings.Verbosity >= 2 || (result.Outcome != domain.OutcomePassed && result.Outcome != domain.OutcomeSkipped)
	if echo && result.Output != "" {
		e.logger.Info(result.Output)
	}
}

func skippedResult(tc domain.TestCase) domain.CaseResult {
	return domain.CaseResult{
		Name:    tc.Name,
		Outcome: domain.OutcomeSkipped,
		Message: "not run",
	}
}
