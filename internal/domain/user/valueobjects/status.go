package valueobjects

import "fmt"

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusDeleted   Status = "deleted"
)

var ValidStatuses = map[Status]bool{
	StatusPending:   true,
	StatusActive:    true,
	StatusSuspended: true,
	StatusDeleted:   true,
}

var statusTransitions = map[Status][]Status{
	StatusPending: {
		StatusActive,
		StatusDeleted,
	},
	StatusActive: {
		StatusSuspended,
		StatusDeleted,
	},
	StatusSuspended: {
		StatusActive,
		StatusDeleted,
	},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return ValidStatuses[s]
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

func (s Status) IsActive() bool {
	return s == StatusActive
}

func (s Status) IsSuspended() bool {
	return s == StatusSuspended
}

func (s Status) IsDeleted() bool {
	return s == StatusDeleted
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid user status: %s", s)
	}
	return st, nil
}
