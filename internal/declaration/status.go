package declaration

import "fmt"

// Status is a lifecycle state. Draft is the only initial state; Approved
// and Rejected are terminal.
type Status string

const (
	StatusDraft    Status = "DRAFT"
	StatusFiled    Status = "FILED"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// transitions lists every permitted move of the state machine.
var transitions = map[Status][]Status{
	StatusDraft: {StatusFiled},
	StatusFiled: {StatusApproved, StatusRejected},
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusDraft, StatusFiled, StatusApproved, StatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, s)
}

// CanTransitionTo reports whether the state machine allows moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

func (s Status) String() string { return string(s) }
