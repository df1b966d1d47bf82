package domain

// Status is the display state of a session.
type Status string

const (
	StatusReady    Status = "SYSTEM_READY"
	StatusArmed    Status = "TOKEN_ARMED"
	StatusSecured  Status = "ENTRY_SECURED_TOKEN_VOID"
	StatusMismatch Status = "CRITICAL_FAILURE_MATH_MISMATCH"
)

// String returns the status name.
func (s Status) String() string {
	return string(s)
}

// Outcome is the result of the last state-changing operation.
type Outcome string

const (
	// OutcomeNone means no commit has happened since the last generate or discard.
	OutcomeNone Outcome = "none"

	// OutcomeSecured means the last commit stored an entry and burned the token.
	OutcomeSecured Outcome = "secured"

	// OutcomeMismatch means the last commit failed the unity check.
	OutcomeMismatch Outcome = "mismatch"

	// OutcomeSkipped means a commit guard was not met. It is reported to the
	// caller but never recorded as the last outcome.
	OutcomeSkipped Outcome = "skipped"
)

// DeriveStatus projects token presence and the last outcome onto a Status.
func DeriveStatus(tokenPresent bool, last Outcome) Status {
	switch {
	case tokenPresent && last == OutcomeMismatch:
		return StatusMismatch
	case tokenPresent:
		return StatusArmed
	case last == OutcomeSecured:
		return StatusSecured
	default:
		return StatusReady
	}
}
