package model

import (
	"reflect"
	"testing"
)

func TestBuildVerdictEmptyPass(t *testing.T) {
	outcomes := []CheckOutcome{
		Pass(KindSuspiciousFiles),
		Pass(KindProcessFork),
	}
	v := BuildVerdict(outcomes)
	if v.Compromised {
		t.Error("Compromised = true for all-pass outcomes")
	}
	if v.SummaryMessage != "" {
		t.Errorf("SummaryMessage = %q, want empty", v.SummaryMessage)
	}
	if len(v.FailedKinds) != 0 {
		t.Errorf("FailedKinds = %v, want empty", v.FailedKinds)
	}
}

func TestBuildVerdictJoinsMessagesInOrder(t *testing.T) {
	outcomes := []CheckOutcome{
		Fail(KindSuspiciousFiles, "first"),
		Pass(KindProcessFork),
		Fail(KindRunningProcesses, "second"),
	}
	v := BuildVerdict(outcomes)
	if !v.Compromised {
		t.Error("Compromised = false with failing outcomes")
	}
	if v.SummaryMessage != "first, second" {
		t.Errorf("SummaryMessage = %q, want %q", v.SummaryMessage, "first, second")
	}
	want := []CheckKind{KindSuspiciousFiles, KindRunningProcesses}
	if !reflect.DeepEqual(v.FailedKinds, want) {
		t.Errorf("FailedKinds = %v, want %v", v.FailedKinds, want)
	}
}

func TestAllKindsCoversEveryKindOnce(t *testing.T) {
	seen := map[CheckKind]bool{}
	for _, k := range AllKinds() {
		if seen[k] {
			t.Errorf("kind %s listed twice", k)
		}
		seen[k] = true
	}
	if len(seen) != 11 {
		t.Errorf("len(AllKinds()) = %d, want 11", len(seen))
	}
}
