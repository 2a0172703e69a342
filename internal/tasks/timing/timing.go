// Package timing provides a task that profiles the lifecycle phases.
package timing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/rig/internal/registry"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FlagFile is the CLI flag selecting the profile file name.
const FlagFile = "timing-file"

const defaultFile = "timing.yaml"

func init() {
	registry.Register("timing", "Profile", registry.Registration{
		New: New,
		Flags: func(fs *pflag.FlagSet) {
			fs.String(FlagFile, defaultFile, "File name for the timing profile, relative to the output directory")
		},
	})
}

// Profile implements all four lifecycle hooks, timestamping each phase and
// writing the wall times as YAML at teardown.
type Profile struct {
	outputDir string
	file      string
	logger    ports.Logger

	envStart   time.Time
	suiteStart time.Time
	phases     []phase
}

type phase struct {
	Name     string `yaml:"name"`
	Duration string `yaml:"duration"`
}

// New constructs the task. The profile file name comes from the
// "timing-file" option.
func New(cfg registry.TaskConfig) (ports.Task, error) {
	return &Profile{
		outputDir: cfg.OutputDir,
		file:      cfg.Option(FlagFile, defaultFile),
		logger:    cfg.Logger,
	}, nil
}

func (p *Profile) Name() string { return "timing.Profile" }

// SetupTestEnvironment marks the start of the run.
func (p *Profile) SetupTestEnvironment(_ context.Context) error {
	p.envStart = time.Now()
	return nil
}

// BeforeSuiteRun marks the start of suite execution.
func (p *Profile) BeforeSuiteRun(_ context.Context, _ *domain.Suite) error {
	p.suiteStart = time.Now()
	p.record("environment_setup", p.envStart, p.suiteStart)
	return nil
}

// AfterSuiteRun records the suite phase.
func (p *Profile) AfterSuiteRun(_ context.Context, _ *domain.Suite) error {
	p.record("suite_run", p.suiteStart, time.Now())
	return nil
}

// TeardownTestEnvironment records the total and writes the profile.
func (p *Profile) TeardownTestEnvironment(_ context.Context) error {
	p.record("total", p.envStart, time.Now())

	doc := struct {
		Phases []phase `yaml:"phases"`
	}{Phases: p.phases}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return zerr.Wrap(err, "failed to serialize timing profile")
	}
	if err := os.MkdirAll(p.outputDir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create output directory")
	}
	path := filepath.Join(p.outputDir, p.file)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write timing profile"), "path", path)
	}
	if p.logger != nil {
		p.logger.Info("wrote timing profile " + path)
	}
	return nil
}

func (p *Profile) record(name string, from, to time.Time) {
	if from.IsZero() {
		// The phase never started; keep the entry so the profile shape is
		// stable, with an explicit marker instead of a bogus duration.
		p.phases = append(p.phases, phase{Name: name, Duration: "unknown"})
		return
	}
	p.phases = append(p.phases, phase{
		Name:     name,
		Duration: fmt.Sprintf("%.3fs", to.Sub(from).Seconds()),
	})
}
