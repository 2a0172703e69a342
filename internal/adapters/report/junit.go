// Package report implements the XML report sink.
package report

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

// JUnitSink implements ports.ReportSink writing JUnit-style XML files.
type JUnitSink struct{}

// NewJUnitSink creates a new JUnitSink.
func NewJUnitSink() *JUnitSink {
	return &JUnitSink{}
}

var _ ports.ReportSink = (*JUnitSink)(nil)

// Dump writes the suite result as TEST-<suite>.xml into dir, creating the
// directory if needed, and returns the written file's path.
func (s *JUnitSink) Dump(result *domain.SuiteResult, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", zerr.Wrap(err, "failed to create output directory")
	}

	data, err := xml.MarshalIndent(toXML(result), "", "  ")
	if err != nil {
		return "", zerr.Wrap(err, "failed to serialize report")
	}

	path := filepath.Join(dir, "TEST-"+sanitize(result.Suite)+".xml")
	content := append([]byte(xml.Header), data...)
	content = append(content, '\n')
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to write report"), "path", path)
	}
	return path, nil
}

func toXML(result *domain.SuiteResult) xmlTestSuite {
	_, failed, errored, skipped := result.Counts()

	suite := xmlTestSuite{
		Name:     result.Suite,
		Tests:    len(result.Cases),
		Failures: failed,
		Errors:   errored,
		Skipped:  skipped,
		Time:     seconds(result.Duration.Seconds()),
	}
	for _, c := range result.Cases {
		tc := xmlTestCase{
			Name:      c.Name,
			Classname: result.Suite,
			Time:      seconds(c.Duration.Seconds()),
		}
		switch c.Outcome {
		case domain.OutcomeFailed:
			tc.Failure = &xmlFailure{Message: c.Message, Content: c.Output}
		case domain.OutcomeErrored:
			tc.Error = &xmlFailure{Message: c.Message, Content: c.Output}
		case domain.OutcomeSkipped:
			tc.Skipped = &xmlSkipped{Message: c.Message}
		case domain.OutcomePassed:
			if c.Output != "" {
				tc.SystemOut = &xmlSystemOut{Content: c.Output}
			}
		}
		suite.TestCases = append(suite.TestCases, tc)
	}
	return suite
}

func seconds(s float64) string {
	return fmt.Sprintf("%.3f", s)
}

// sanitize keeps report file names filesystem-safe.
func sanitize(name string) string {
	if name == "" {
		return "suite"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, name)
}

type xmlTestSuite struct {
	XMLName   xml.Name      `xml:"testsuite"`
	Name      string        `xml:"name,attr"`
	Tests     int           `xml:"tests,attr"`
	Failures  int           `xml:"failures,attr"`
	Errors    int           `xml:"errors,attr"`
	Skipped   int           `xml:"skipped,attr"`
	Time      string        `xml:"time,attr"`
	TestCases []xmlTestCase `xml:"testcase"`
}

type xmlTestCase struct {
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Time      string        `xml:"time,attr"`
	Failure   *xmlFailure   `xml:"failure,omitempty"`
	Error     *xmlFailure   `xml:"error,omitempty"`
	Skipped   *xmlSkipped   `xml:"skipped,omitempty"`
	SystemOut *xmlSystemOut `xml:"system-out,omitempty"`
}

type xmlFailure struct {
	Message string `xml:"message,attr"`
	Content string `xml:",chardata"`
}

type xmlSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

type xmlSystemOut struct {
	Content string `xml:",chardata"`
}
