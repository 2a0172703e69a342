package domain

import "time"

// Outcome classifies how a single test case ended.
type Outcome string

const (
	// OutcomePassed indicates the case exited cleanly.
	OutcomePassed Outcome = "passed"
	// OutcomeFailed indicates the case ran and reported failure.
	OutcomeFailed Outcome = "failed"
	// OutcomeErrored indicates the case could not be executed.
	OutcomeErrored Outcome = "errored"
	// OutcomeSkipped indicates the case was never run, e.g. after a fail-fast stop.
	OutcomeSkipped Outcome = "skipped"
)

// CaseResult records the outcome of one test case.
type CaseResult struct {
	Name     string
	Outcome  Outcome
	Output   string
	Message  string
	Duration time.Duration
}

// SuiteResult aggregates case results in suite order.
type SuiteResult struct {
	Suite    string
	Cases    []CaseResult
	Duration time.Duration
}

// Counts returns the number of passed, failed, errored and skipped cases.
func (r *SuiteResult) Counts() (passed, failed, errored, skipped int) {
	for _, c := range r.Cases {
		switch c.Outcome {
		case OutcomePassed:
			passed++
		case OutcomeFailed:
			failed++
		case OutcomeErrored:
			errored++
		case OutcomeSkipped:
			skipped++
		}
	}
	return passed, failed, errored, skipped
}

// Failed reports whether any case failed or errored.
func (r *SuiteResult) Failed() bool {
	_, failed, errored, _ := r.Counts()
	return failed > 0 || errored > 0
}
