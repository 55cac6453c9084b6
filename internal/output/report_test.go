package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tamperscan/internal/model"
)

func TestNewReportDerivesVerdictFromOutcomes(t *testing.T) {
	outcomes := []model.CheckOutcome{
		model.Pass(model.KindProcessFork),
		model.Fail(model.KindSuspiciousFiles, "suspicious file present: /etc/apt"),
	}
	r := NewReport(time.Now().UTC(), outcomes)

	if !r.Verdict.Compromised {
		t.Error("Verdict.Compromised = false, want true")
	}
	if r.ScanID == "" {
		t.Error("ScanID is empty")
	}
	if len(r.Outcomes) != 2 {
		t.Errorf("len(Outcomes) = %d, want 2", len(r.Outcomes))
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	r := NewReport(time.Now().UTC(), []model.CheckOutcome{
		model.Fail(model.KindEnvironmentVariables, "suspicious environment variable set: LD_PRELOAD"),
	})
	path := filepath.Join(t.TempDir(), "scan.json")

	if err := WriteJSON(path, r); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var got Report
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ScanID != r.ScanID {
		t.Errorf("ScanID = %q, want %q", got.ScanID, r.ScanID)
	}
	if !got.Verdict.Compromised || len(got.Verdict.FailedKinds) != 1 {
		t.Errorf("verdict did not survive the round trip: %+v", got.Verdict)
	}
}

func TestWriteTextListsFailures(t *testing.T) {
	r := NewReport(time.Now().UTC(), []model.CheckOutcome{
		model.Pass(model.KindProcessFork),
		model.Fail(model.KindRunningProcesses, "instrumentation daemon running: frida"),
	})

	var sb strings.Builder
	WriteText(&sb, r)
	out := sb.String()

	if !strings.Contains(out, "COMPROMISED") {
		t.Errorf("output = %q, want verdict line", out)
	}
	if !strings.Contains(out, "frida") {
		t.Errorf("output = %q, want the failure message listed", out)
	}
	if strings.Contains(out, string(model.KindProcessFork)) {
		t.Errorf("output = %q, passing checks must not be listed", out)
	}
}
