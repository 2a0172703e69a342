package dispatcher_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/rig/internal/core/ports/mocks"
	"go.trai.ch/rig/internal/engine/dispatcher"
	"go.uber.org/mock/gomock"
)

func tasksOf(ts ...ports.Task) []ports.Task { return ts }

// spyTask implements all four lifecycle hooks and records calls into a
// shared log so dispatch order can be asserted.
type spyTask struct {
	name  string
	calls *[]string
	fail  map[string]error
}

func (s *spyTask) Name() string { return s.name }

func (s *spyTask) record(phase string) error {
	*s.calls = append(*s.calls, s.name+":"+phase)
	return s.fail[phase]
}

func (s *spyTask) SetupTestEnvironment(context.Context) error { return s.record("setup") }

func (s *spyTask) BeforeSuiteRun(context.Context, *domain.Suite) error { return s.record("before") }

func (s *spyTask) AfterSuiteRun(context.Context, *domain.Suite) error { return s.record("after") }

func (s *spyTask) TeardownTestEnvironment(context.Context) error { return s.record("teardown") }

// beforeOnlyTask implements only the before-suite hook.
type beforeOnlyTask struct {
	calls *[]string
}

func (s *beforeOnlyTask) Name() string { return "beforeonly" }

func (s *beforeOnlyTask) BeforeSuiteRun(context.Context, *domain.Suite) error {
	*s.calls = append(*s.calls, "beforeonly:before")
	return nil
}

// hooklessTask implements no lifecycle hook at all.
type hooklessTask struct{}

func (hooklessTask) Name() string { return "hookless" }

type dispatcherMocks struct {
	runner    *mocks.MockRunner
	collector *mocks.MockSuiteCollector
	reports   *mocks.MockReportSink
	telemetry *mocks.MockTelemetry
	logger    *mocks.MockLogger
}

func newDispatcher(t *testing.T, cfg dispatcher.Config) (*dispatcher.Dispatcher, dispatcherMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := dispatcherMocks{
		runner:    mocks.NewMockRunner(ctrl),
		collector: mocks.NewMockSuiteCollector(ctrl),
		reports:   mocks.NewMockReportSink(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	m.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		},
	).AnyTimes()
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	d := dispatcher.New(m.runner, m.collector, m.reports, m.telemetry, m.logger, cfg)
	return d, m
}

func suiteFixture() *domain.Suite {
	return &domain.Suite{
		Name: "api",
		Cases: []domain.TestCase{
			{Name: "unit", Command: []string{"true"}},
		},
	}
}

func passingResult() *domain.SuiteResult {
	return &domain.SuiteResult{
		Suite: "api",
		Cases: []domain.CaseResult{{Name: "unit", Outcome: domain.OutcomePassed}},
	}
}

func TestDisabledMode_DelegatesDirectly(t *testing.T) {
	var calls []string
	task := &spyTask{name: "spy", calls: &calls, fail: map[string]error{}}

	// Tasks are present but CI is off: they must never be consulted.
	d, m := newDispatcher(t, dispatcher.Config{CI: false, Tasks: tasksOf(task)})

	ctx := context.Background()
	suite := suiteFixture()
	want := passingResult()

	m.runner.EXPECT().SetupTestEnvironment(ctx).Return(nil)
	m.runner.EXPECT().RunSuite(ctx, suite).Return(want, nil)
	m.runner.EXPECT().TeardownTestEnvironment(ctx).Return(nil)

	require.NoError(t, d.SetupTestEnvironment(ctx))
	got, err := d.RunSuite(ctx, suite)
	require.NoError(t, err)
	assert.Same(t, want, got)
	require.NoError(t, d.TeardownTestEnvironment(ctx))

	assert.Empty(t, calls, "no task hook may run when CI mode is off")
}

func TestRunSuite_CIMode(t *testing.T) {
	var calls []string
	withHook := &beforeOnlyTask{calls: &calls}
	without := hooklessTask{}

	d, m := newDispatcher(t, dispatcher.Config{
		CI:        true,
		OutputDir: "reports",
		Tasks:     tasksOf(withHook, without),
	})

	ctx := context.Background()
	suite := suiteFixture()
	want := passingResult()

	m.runner.EXPECT().Settings().Return(domain.RunSettings{FailFast: true, Verbosity: 2})
	m.collector.EXPECT().
		Collect(gomock.Any(), suite, domain.RunSettings{FailFast: true, Verbosity: 2, Buffered: true}).
		Return(want, nil)
	m.reports.EXPECT().Dump(want, "reports").Return("reports/TEST-api.xml", nil)

	got, err := d.RunSuite(ctx, suite)
	require.NoError(t, err)
	assert.Same(t, want, got)
	assert.Equal(t, []string{"beforeonly:before"}, calls, "exactly one before hook call expected")
}

func TestHookOrder_MatchesInstantiationOrder(t *testing.T) {
	var calls []string
	first := &spyTask{name: "first", calls: &calls, fail: map[string]error{}}
	second := &spyTask{name: "second", calls: &calls, fail: map[string]error{}}

	d, m := newDispatcher(t, dispatcher.Config{
		CI:        true,
		OutputDir: "out",
		Tasks:     tasksOf(first, second),
	})

	ctx := context.Background()
	suite := suiteFixture()
	result := passingResult()

	m.runner.EXPECT().SetupTestEnvironment(ctx).DoAndReturn(func(context.Context) error {
		calls = append(calls, "runner:setup")
		return nil
	})
	m.runner.EXPECT().Settings().Return(domain.RunSettings{})
	m.collector.EXPECT().Collect(gomock.Any(), suite, domain.RunSettings{Buffered: true}).Return(result, nil)
	m.reports.EXPECT().Dump(result, "out").Return("out/TEST-api.xml", nil)
	m.runner.EXPECT().TeardownTestEnvironment(ctx).DoAndReturn(func(context.Context) error {
		calls = append(calls, "runner:teardown")
		return nil
	})

	require.NoError(t, d.SetupTestEnvironment(ctx))
	_, err := d.RunSuite(ctx, suite)
	require.NoError(t, err)
	require.NoError(t, d.TeardownTestEnvironment(ctx))

	assert.Equal(t, []string{
		"runner:setup",
		"first:setup",
		"second:setup",
		"first:before",
		"second:before",
		"first:after",
		"second:after",
		"first:teardown",
		"second:teardown",
		"runner:teardown",
	}, calls)
}

func TestHookFailure_AbortsPhase(t *testing.T) {
	var calls []string
	boom := errors.New("hook boom")
	first := &spyTask{name: "first", calls: &calls, fail: map[string]error{"before": boom}}
	second := &spyTask{name: "second", calls: &calls, fail: map[string]error{}}

	d, _ := newDispatcher(t, dispatcher.Config{
		CI:    true,
		Tasks: tasksOf(first, second),
	})

	// The collector must never run: the failing before hook aborts the phase.
	_, err := d.RunSuite(context.Background(), suiteFixture())
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, []string{"first:before"}, calls)
}

func TestRunSuite_CollectorErrorPropagates(t *testing.T) {
	d, m := newDispatcher(t, dispatcher.Config{CI: true, OutputDir: "out"})

	boom := errors.New("exec boom")
	m.runner.EXPECT().Settings().Return(domain.RunSettings{})
	m.collector.EXPECT().Collect(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := d.RunSuite(context.Background(), suiteFixture())
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestRunSuite_ReportDumpErrorPropagates(t *testing.T) {
	d, m := newDispatcher(t, dispatcher.Config{CI: true, OutputDir: "out"})

	boom := errors.New("disk full")
	m.runner.EXPECT().Settings().Return(domain.RunSettings{})
	m.collector.EXPECT().Collect(gomock.Any(), gomock.Any(), gomock.Any()).Return(passingResult(), nil)
	m.reports.EXPECT().Dump(gomock.Any(), "out").Return("", boom)

	_, err := d.RunSuite(context.Background(), suiteFixture())
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}
