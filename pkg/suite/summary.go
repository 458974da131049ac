package suite

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Summary aggregates the results of one suite run.
type Summary struct {
	SuiteName string   `json:"suite_name,omitempty"`
	Total     int      `json:"total"`
	Passed    int      `json:"passed"`
	Failed    int      `json:"failed"`
	PassRate  float64  `json:"pass_rate"`
	Failures  []Result `json:"failures,omitempty"`
}

// Summarize builds a Summary from evaluation results.
func Summarize(name string, results []Result) *Summary {
	s := &Summary{SuiteName: name, Total: len(results)}

	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
			s.Failures = append(s.Failures, r)
		}
	}

	if s.Total > 0 {
		s.PassRate = float64(s.Passed) / float64(s.Total)
	}
	return s
}

// AllPassed reports whether the run had no failures.
func (s *Summary) AllPassed() bool {
	return s.Failed == 0
}

// JSON renders the summary as indented JSON.
func (s *Summary) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf(
			"failed to marshal summary: %w", err,
		)
	}
	return data, nil
}

// String renders a compact human-readable summary.
func (s *Summary) String() string {
	var b strings.Builder
	if s.SuiteName != "" {
		fmt.Fprintf(&b, "suite %s: ", s.SuiteName)
	}
	fmt.Fprintf(
		&b, "%d/%d passed (%.0f%%)",
		s.Passed, s.Total, s.PassRate*100,
	)
	for _, r := range s.Failures {
		fmt.Fprintf(
			&b, "\n  %s on %s: %s",
			r.Type, r.Target, r.Message,
		)
	}
	return b.String()
}
