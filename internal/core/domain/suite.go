// Package domain holds the core types for the rig test harness.
package domain

// DefaultOutputDir is where reports land when no directory is configured.
const DefaultOutputDir = "reports"

// TestCase is one runnable entry of a suite.
type TestCase struct {
	Name    string
	Command []string
	Env     map[string]string
}

// Suite is an ordered collection of test cases.
type Suite struct {
	Name  string
	Cases []TestCase
}

// RunSettings controls how a suite execution behaves.
type RunSettings struct {
	// FailFast stops the run after the first non-passing case.
	FailFast bool
	// Verbosity: 0 silent, 1 summary per case, 2 full case output.
	Verbosity int
	// Workers bounds parallel case execution; values below 2 mean sequential.
	Workers int
	// Buffered captures case output for the report instead of streaming it.
	Buffered bool
}

// Config is the loaded harness configuration.
type Config struct {
	Suite     Suite
	Tasks     []string
	OutputDir string
	Settings  RunSettings
	Options   map[string]string
}
