// Package checksum provides a task that fingerprints run artifacts.
package checksum

import (
	"context"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/rig/internal/registry"
	"go.trai.ch/zerr"
)

const manifestName = "checksums.txt"

func init() {
	registry.Register("checksum", "Manifest", registry.Registration{
		New: New,
	})
}

// Manifest hashes every artifact in the output directory after the suite
// runs and writes a stable manifest, so downstream jobs can verify the
// report bundle they picked up is the one this run produced.
type Manifest struct {
	outputDir string
	logger    ports.Logger
}

// New constructs the task.
func New(cfg registry.TaskConfig) (ports.Task, error) {
	return &Manifest{
		outputDir: cfg.OutputDir,
		logger:    cfg.Logger,
	}, nil
}

func (m *Manifest) Name() string { return "checksum.Manifest" }

// AfterSuiteRun writes the manifest. The manifest itself and dotfiles are
// excluded; entries are sorted by path so the output is reproducible.
func (m *Manifest) AfterSuiteRun(_ context.Context, _ *domain.Suite) error {
	var lines []string
	err := filepath.WalkDir(m.outputDir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if name == manifestName || strings.HasPrefix(name, ".") {
			return nil
		}
		sum, err := hashFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(m.outputDir, path)
		if err != nil {
			return err
		}
		lines = append(lines, fmt.Sprintf("%016x  %s", sum, rel))
		return nil
	})
	if err != nil {
		return zerr.Wrap(err, "failed to hash artifacts")
	}

	sort.Strings(lines)
	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}

	path := filepath.Join(m.outputDir, manifestName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write manifest"), "path", path)
	}
	if m.logger != nil {
		m.logger.Info("wrote artifact manifest " + path)
	}
	return nil
}

// hashFile computes the XXHash of a file's content.
func hashFile(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from walking the output dir
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // best effort close in defer

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return h.Sum64(), nil
}
