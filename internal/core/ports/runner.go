// Package ports defines the core interfaces for the harness.
package ports

import (
	"context"

	"go.trai.ch/rig/internal/core/domain"
)

// Runner is the wrapped test runner the dispatcher delegates to.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// SetupTestEnvironment prepares the environment before any suite runs.
	SetupTestEnvironment(ctx context.Context) error

	// RunSuite executes the suite with the runner's own settings.
	RunSuite(ctx context.Context, suite *domain.Suite) (*domain.SuiteResult, error)

	// TeardownTestEnvironment releases whatever SetupTestEnvironment acquired.
	TeardownTestEnvironment(ctx context.Context) error

	// Settings exposes the runner's execution settings so a wrapping
	// dispatcher can mirror them in a collecting run.
	Settings() domain.RunSettings
}

// SuiteCollector executes a suite with explicit settings, capturing case
// output for reporting.
type SuiteCollector interface {
	Collect(ctx context.Context, suite *domain.Suite, settings domain.RunSettings) (*domain.SuiteResult, error)
}

// CaseRunner executes a single test case.
type CaseRunner interface {
	Run(ctx context.Context, tc domain.TestCase) domain.CaseResult
}
