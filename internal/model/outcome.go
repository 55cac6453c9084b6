package model

// CheckOutcome is the result of one probe invocation. It is produced once and
// never mutated. Passed=true always carries an empty Message.
type CheckOutcome struct {
	Kind    CheckKind `json:"kind"`
	Passed  bool      `json:"passed"`
	Message string    `json:"message,omitempty"`
}

// Pass is the clean outcome for kind. Probes also resolve internal faults
// (permission denied, missing API) to Pass: absence of evidence is treated as
// absence of tampering.
func Pass(kind CheckKind) CheckOutcome {
	return CheckOutcome{Kind: kind, Passed: true}
}

// Fail records a detected tamper signal with a human-readable reason.
func Fail(kind CheckKind, message string) CheckOutcome {
	return CheckOutcome{Kind: kind, Passed: false, Message: message}
}
