package domain

import "time"

type Outcome string

const (
	OutcomeAccepted  Outcome = "accepted"
	OutcomeSuggested Outcome = "suggested"
	OutcomeRejected  Outcome = "rejected"
)

// Decision is the allocator's answer to a request. For OutcomeSuggested the
// slot is an alternative that the guest has to agree to; it is never booked
// automatically.
type Decision struct {
	Outcome  Outcome   `json:"outcome"`
	TableRef string    `json:"table_ref,omitempty"`
	StartAt  time.Time `json:"start_at,omitempty"`
	Capacity int       `json:"capacity"`
}

func Accepted(table string, start time.Time, capacity int) Decision {
	return Decision{Outcome: OutcomeAccepted, TableRef: table, StartAt: start, Capacity: capacity}
}

func Suggested(table string, start time.Time, capacity int) Decision {
	return Decision{Outcome: OutcomeSuggested, TableRef: table, StartAt: start, Capacity: capacity}
}

func Rejected(capacity int) Decision {
	return Decision{Outcome: OutcomeRejected, Capacity: capacity}
}
