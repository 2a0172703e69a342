// Package app implements the application layer for rig.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/rig/internal/engine/dispatcher"
	"go.trai.ch/rig/internal/engine/suite"
	"go.trai.ch/rig/internal/registry"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	caseRunner   ports.CaseRunner
	reports      ports.ReportSink
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	caseRunner ports.CaseRunner,
	reports ports.ReportSink,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		caseRunner:   caseRunner,
		reports:      reports,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// RunOptions is the CLI-facing configuration for a single run. Pointer
// fields override the config file only when the flag was actually set.
type RunOptions struct {
	ConfigPath string
	CI         bool
	OutputDir  string
	FailFast   *bool
	Verbosity  *int
	Workers    *int
	// TaskOptions carries task-contributed flag values, merged over the
	// config file's options.
	TaskOptions map[string]string
}

// Run executes the full lifecycle: load configuration, resolve and
// instantiate tasks (CI mode only), then setup, suite run and teardown
// through the dispatcher. Teardown is attempted even when the run fails.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	settings := cfg.Settings
	if opts.FailFast != nil {
		settings.FailFast = *opts.FailFast
	}
	if opts.Verbosity != nil {
		settings.Verbosity = *opts.Verbosity
	}
	if opts.Workers != nil {
		settings.Workers = *opts.Workers
	}

	outputDir := cfg.OutputDir
	if opts.OutputDir != "" {
		outputDir = opts.OutputDir
	}
	if outputDir == "" {
		outputDir = domain.DefaultOutputDir
	}

	// The task list is resolved here, at call time, so it always reflects
	// the current configuration. With CI off no task is ever constructed.
	var tasks []ports.Task
	if opts.CI {
		entries, err := registry.Resolve(cfg.Tasks)
		if err != nil {
			return err
		}
		options := make(map[string]string, len(cfg.Options)+len(opts.TaskOptions))
		for k, v := range cfg.Options {
			options[k] = v
		}
		for k, v := range opts.TaskOptions {
			options[k] = v
		}
		tasks, err = registry.Instantiate(entries, registry.TaskConfig{
			OutputDir: outputDir,
			Options:   options,
			Logger:    a.logger,
		})
		if err != nil {
			return err
		}
	}

	runner := suite.NewExecutor(a.caseRunner, a.telemetry, a.logger, settings)
	disp := dispatcher.New(runner, runner, a.reports, a.telemetry, a.logger, dispatcher.Config{
		CI:        opts.CI,
		OutputDir: outputDir,
		Tasks:     tasks,
	})

	if err := disp.SetupTestEnvironment(ctx); err != nil {
		return zerr.Wrap(err, "environment setup failed")
	}

	result, runErr := disp.RunSuite(ctx, &cfg.Suite)
	teardownErr := disp.TeardownTestEnvironment(ctx)
	if runErr != nil {
		return zerr.Wrap(runErr, "suite run failed")
	}
	if teardownErr != nil {
		return zerr.Wrap(teardownErr, "environment teardown failed")
	}

	passed, failed, errored, skipped := result.Counts()
	a.logger.Info(fmt.Sprintf("suite %s: %d passed, %d failed, %d errored, %d skipped",
		result.Suite, passed, failed, errored, skipped))
	if result.Failed() {
		return zerr.With(domain.ErrSuiteFailed, "suite", result.Suite)
	}
	return nil
}
