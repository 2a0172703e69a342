// Package config provides the configuration loader for rig.
package config

import (
	"os"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration file at path.
func (l *Loader) Load(path string) (*domain.Config, error) {
	return Load(path)
}

// Load reads a rig.yaml file and returns the harness configuration.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file rigfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	// First pass: validate the suite shape.
	if len(file.Suite.Cases) == 0 {
		return nil, zerr.With(domain.ErrNoSuiteCases, "path", path)
	}
	seen := make(map[string]bool, len(file.Suite.Cases))
	for _, c := range file.Suite.Cases {
		if len(c.Cmd) == 0 {
			return nil, zerr.With(zerr.New("case has no command"), "case", c.Name)
		}
		if seen[c.Name] {
			return nil, zerr.With(zerr.New("duplicate case name"), "case", c.Name)
		}
		seen[c.Name] = true
	}
	// Descriptors are validated for shape here; whether they resolve is
	// decided at run time against the registry.
	for _, d := range file.Tasks {
		if _, err := domain.ParseDescriptor(d); err != nil {
			return nil, err
		}
	}

	// Second pass: map DTOs to the domain config.
	cfg := &domain.Config{
		Suite:     domain.Suite{Name: file.Suite.Name},
		Tasks:     file.Tasks,
		OutputDir: file.OutputDir,
		Settings: domain.RunSettings{
			FailFast:  file.FailFast,
			Verbosity: 1,
			Workers:   file.Workers,
		},
		Options: file.Options,
	}
	if cfg.Suite.Name == "" {
		cfg.Suite.Name = "suite"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = domain.DefaultOutputDir
	}
	if file.Verbosity != nil {
		cfg.Settings.Verbosity = *file.Verbosity
	}
	for _, c := range file.Suite.Cases {
		cfg.Suite.Cases = append(cfg.Suite.Cases, domain.TestCase{
			Name:    c.Name,
			Command: c.Cmd,
			Env:     c.Env,
		})
	}
	return cfg, nil
}

// rigfile represents the structure of the rig.yaml configuration file.
type rigfile struct {
	Suite     suiteDTO          `yaml:"suite"`
	Tasks     []string          `yaml:"tasks"`
	OutputDir string            `yaml:"output_dir"`
	FailFast  bool              `yaml:"failfast"`
	Verbosity *int              `yaml:"verbosity"`
	Workers   int               `yaml:"workers"`
	Options   map[string]string `yaml:"options"`
}

type suiteDTO struct {
	Name  string    `yaml:"name"`
	Cases []caseDTO `yaml:"cases"`
}

type caseDTO struct {
	Name string            `yaml:"name"`
	Cmd  []string          `yaml:"cmd"`
	Env  map[string]string `yaml:"env"`
}
