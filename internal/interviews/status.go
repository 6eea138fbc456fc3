package interviews

import "github.com/nikmy/interviewd/pkg/errors"

type Status string

const (
	StatusPlanned   Status = "PLANNED"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// ErrInvalidTransition marks transitions rejected by the status machine.
var ErrInvalidTransition = errors.Error("invalid status transition")

// transitions is the full status machine. Terminal statuses have no
// outgoing edges; identity transitions are never allowed.
var transitions = map[Status][]Status{
	StatusPlanned:   {StatusActive, StatusCancelled},
	StatusActive:    {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if _, known := transitions[s]; !known {
		return "", errors.Validationf("unknown status %q", raw)
	}

	return s, nil
}

// ValidateTransition succeeds iff next is reachable from current in one step.
func ValidateTransition(current, next Status) error {
	for _, allowed := range transitions[current] {
		if next == allowed {
			return nil
		}
	}

	return errors.Mark(
		ErrInvalidTransition,
		errors.Errorf("transition %s -> %s is not allowed", current, next),
	)
}

func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}
