// Package dispatcher forwards test lifecycle phases to task plugins
// around a wrapped runner.
package dispatcher

import (
	"context"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

// Config configures a Dispatcher.
type Config struct {
	// CI enables task dispatch and XML report dumping. With CI off every
	// lifecycle call delegates straight to the wrapped runner.
	CI bool
	// OutputDir receives the XML report and task artifacts.
	OutputDir string
	// Tasks in instantiation order; hooks dispatch in this order.
	Tasks []ports.Task
}

// Dispatcher wraps a test runner by explicit delegation. In CI mode it
// dispatches the four lifecycle hooks to its tasks and dumps the suite
// result as XML; otherwise it is a transparent passthrough.
type Dispatcher struct {
	runner    ports.Runner
	collector ports.SuiteCollector
	reports   ports.ReportSink
	telemetry ports.Telemetry
	logger    ports.Logger

	ci        bool
	outputDir string
	tasks     []ports.Task
}

// New creates a Dispatcher around the given runner.
func New(
	runner ports.Runner,
	collector ports.SuiteCollector,
	reports ports.ReportSink,
	telemetry ports.Telemetry,
	logger ports.Logger,
	cfg Config,
) *Dispatcher {
	return &Dispatcher{
		runner:    runner,
		collector: collector,
		reports:   reports,
		telemetry: telemetry,
		logger:    logger,
		ci:        cfg.CI,
		outputDir: cfg.OutputDir,
		tasks:     cfg.Tasks,
	}
}

// SetupTestEnvironment delegates to the wrapped runner first, then
// dispatches the setup hook to each task that implements it.
func (d *Dispatcher) SetupTestEnvironment(ctx context.Context) error {
	if err := d.runner.SetupTestEnvironment(ctx); err != nil {
		return err
	}
	if !d.ci {
		return nil
	}
	for _, task := range d.tasks {
		hook, ok := task.(ports.EnvironmentPreparer)
		if !ok {
			continue
		}
		if err := hook.SetupTestEnvironment(ctx); err != nil {
			return hookErr(err, "setup hook failed", task)
		}
	}
	return nil
}

// RunSuite executes the suite. In CI mode it dispatches the before hooks,
// runs a collecting execution with buffering plus the wrapped runner's own
// failfast and verbosity settings, dumps the result as XML into the output
// directory, dispatches the after hooks and returns the result.
func (d *Dispatcher) RunSuite(ctx context.Context, suite *domain.Suite) (*domain.SuiteResult, error) {
	if !d.ci {
		return d.runner.RunSuite(ctx, suite)
	}

	for _, task := range d.tasks {
		hook, ok := task.(ports.BeforeSuiteHook)
		if !ok {
			continue
		}
		if err := hook.BeforeSuiteRun(ctx, suite); err != nil {
			return nil, hookErr(err, "before-suite hook failed", task)
		}
	}

	settings := d.runner.Settings()
	settings.Buffered = true

	vctx, vertex := d.telemetry.Record(ctx, "suite."+suite.Name)
	result, err := d.collector.Collect(vctx, suite, settings)
	if err != nil {
		vertex.Complete(err)
		return nil, zerr.Wrap(err, "suite execution failed")
	}
	if result.Failed() {
		vertex.Complete(domain.ErrSuiteFailed)
	} else {
		vertex.Complete(nil)
	}

	path, err := d.reports.Dump(result, d.outputDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to dump XML report")
	}
	d.logger.Info("wrote test report " + path)

	for _, task := range d.tasks {
		hook, ok := task.(ports.AfterSuiteHook)
		if !ok {
			continue
		}
		if err := hook.AfterSuiteRun(ctx, suite); err != nil {
			return nil, hookErr(err, "after-suite hook failed", task)
		}
	}
	return result, nil
}

// TeardownTestEnvironment dispatches the teardown hook to each task that
// implements it, then delegates to the wrapped runner last.
func (d *Dispatcher) TeardownTestEnvironment(ctx context.Context) error {
	if d.ci {
		for _, task := range d.tasks {
			hook, ok := task.(ports.EnvironmentCleaner)
			if !ok {
				continue
			}
			if err := hook.TeardownTestEnvironment(ctx); err != nil {
				return hookErr(err, "teardown hook failed", task)
			}
		}
	}
	return d.runner.TeardownTestEnvironment(ctx)
}

// hookErr wraps a task hook failure with the task's identity. Hook errors
// are not isolated: the remaining dispatch for the phase is abandoned.
func hookErr(err error, msg string, task ports.Task) error {
	return zerr.With(zerr.Wrap(err, msg), "task", task.Name())
}
