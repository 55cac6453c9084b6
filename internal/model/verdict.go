package model

import "strings"

// messageSeparator joins individual failure messages into SummaryMessage.
const messageSeparator = ", "

// Verdict is the aggregate of one evaluation pass.
type Verdict struct {
	Compromised    bool        `json:"compromised"`
	SummaryMessage string      `json:"summaryMessage,omitempty"`
	FailedKinds    []CheckKind `json:"failedKinds,omitempty"`
}

// BuildVerdict derives a Verdict from the outcomes of one pass. Outcomes must
// be in execution order; FailedKinds preserves that order and SummaryMessage
// joins the failure messages in the same order.
func BuildVerdict(outcomes []CheckOutcome) Verdict {
	var v Verdict
	var messages []string
	for _, o := range outcomes {
		if o.Passed {
			continue
		}
		v.Compromised = true
		v.FailedKinds = append(v.FailedKinds, o.Kind)
		messages = append(messages, o.Message)
	}
	v.SummaryMessage = strings.Join(messages, messageSeparator)
	return v
}
