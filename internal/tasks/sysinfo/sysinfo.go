// Package sysinfo provides a task that captures the host environment.
package sysinfo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/rig/internal/registry"
	"go.trai.ch/zerr"
)

const fileName = "sysinfo.txt"

func init() {
	registry.Register("sysinfo", "Snapshot", registry.Registration{
		New: New,
	})
}

// Snapshot dumps a description of the host into the output directory at
// environment setup, so CI failures can be matched to the machine state
// they ran under.
type Snapshot struct {
	outputDir string
	logger    ports.Logger
}

// New constructs the task.
func New(cfg registry.TaskConfig) (ports.Task, error) {
	return &Snapshot{
		outputDir: cfg.OutputDir,
		logger:    cfg.Logger,
	}, nil
}

func (s *Snapshot) Name() string { return "sysinfo.Snapshot" }

// SetupTestEnvironment writes the snapshot file.
func (s *Snapshot) SetupTestEnvironment(_ context.Context) error {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	wd, err := os.Getwd()
	if err != nil {
		wd = "unknown"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "hostname: %s\n", hostname)
	fmt.Fprintf(&b, "go: %s\n", runtime.Version())
	fmt.Fprintf(&b, "os: %s\n", runtime.GOOS)
	fmt.Fprintf(&b, "arch: %s\n", runtime.GOARCH)
	fmt.Fprintf(&b, "cpus: %d\n", runtime.NumCPU())
	fmt.Fprintf(&b, "workdir: %s\n", wd)

	if err := os.MkdirAll(s.outputDir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create output directory")
	}
	path := filepath.Join(s.outputDir, fileName)
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write snapshot"), "path", path)
	}
	if s.logger != nil {
		s.logger.Info("wrote system snapshot " + path)
	}
	return nil
}
