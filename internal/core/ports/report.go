package ports

import "go.trai.ch/rig/internal/core/domain"

// ReportSink persists a suite result into a directory and returns the
// written file's path.
//
//go:generate go run go.uber.org/mock/mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks
type ReportSink interface {
	Dump(result *domain.SuiteResult, dir string) (string, error)
}
