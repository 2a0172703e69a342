package ports

import (
	"context"

	"go.trai.ch/rig/internal/core/domain"
)

// Task is a plugin participating in the test lifecycle. The lifecycle hooks
// are optional capability interfaces; a task implements only the phases it
// cares about and the dispatcher silently skips the rest.
type Task interface {
	Name() string
}

// EnvironmentPreparer is implemented by tasks that hook environment setup.
type EnvironmentPreparer interface {
	SetupTestEnvironment(ctx context.Context) error
}

// BeforeSuiteHook is implemented by tasks that run before the suite.
type BeforeSuiteHook interface {
	BeforeSuiteRun(ctx context.Context, suite *domain.Suite) error
}

// AfterSuiteHook is implemented by tasks that run after the suite.
type AfterSuiteHook interface {
	AfterSuiteRun(ctx context.Context, suite *domain.Suite) error
}

// EnvironmentCleaner is implemented by tasks that hook environment teardown.
type EnvironmentCleaner interface {
	TeardownTestEnvironment(ctx context.Context) error
}
