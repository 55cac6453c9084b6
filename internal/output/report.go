// Package output renders one scan pass for the hosting side: a JSON report
// file and a short text summary. The engine itself never writes anything.
package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"tamperscan/internal/model"
)

// Report wraps the verdict of one evaluation pass with scan metadata.
type Report struct {
	ScanID         string               `json:"scanId"`
	Hostname       string               `json:"hostname,omitempty"`
	StartedAt      time.Time            `json:"startedAt"`
	DurationMillis int64                `json:"durationMillis"`
	Verdict        model.Verdict        `json:"verdict"`
	Outcomes       []model.CheckOutcome `json:"outcomes"`
}

// NewReport builds a report from the outcomes of one pass. The verdict is
// derived here so report and outcomes can never disagree.
func NewReport(startedAt time.Time, outcomes []model.CheckOutcome) *Report {
	hostname, _ := os.Hostname()
	return &Report{
		ScanID:         uuid.NewString(),
		Hostname:       hostname,
		StartedAt:      startedAt,
		DurationMillis: time.Since(startedAt).Milliseconds(),
		Verdict:        model.BuildVerdict(outcomes),
		Outcomes:       outcomes,
	}
}

// WriteText prints the human-readable summary.
func WriteText(w io.Writer, r *Report) {
	status := "CLEAN"
	if r.Verdict.Compromised {
		status = "COMPROMISED"
	}
	fmt.Fprintf(w, "Verdict: %s\n", status)
	fmt.Fprintf(w, "Checks: %d run, %d failed\n", len(r.Outcomes), len(r.Verdict.FailedKinds))
	for _, o := range r.Outcomes {
		if o.Passed {
			continue
		}
		fmt.Fprintf(w, "  %s: %s\n", o.Kind, o.Message)
	}
}
