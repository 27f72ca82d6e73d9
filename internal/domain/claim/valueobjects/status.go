package valueobjects

import "fmt"

type ClaimStatus string

const (
	StatusPending            ClaimStatus = "pending"
	StatusApproved           ClaimStatus = "approved"
	StatusRejected           ClaimStatus = "rejected"
	StatusHandoverInProgress ClaimStatus = "handover_in_progress"
	StatusCompleted          ClaimStatus = "completed"
)

var validClaimStatuses = map[ClaimStatus]bool{
	StatusPending:            true,
	StatusApproved:           true,
	StatusRejected:           true,
	StatusHandoverInProgress: true,
	StatusCompleted:          true,
}

// rejected and completed are terminal; they are retained as an audit trail
// and never transition again. handover_in_progress may fall back to
// approved when the passcode expires unverified.
var claimStatusTransitions = map[ClaimStatus][]ClaimStatus{
	StatusPending: {
		StatusApproved,
		StatusRejected,
	},
	StatusApproved: {
		StatusHandoverInProgress,
	},
	StatusHandoverInProgress: {
		StatusCompleted,
		StatusApproved,
	},
}

func (s ClaimStatus) String() string {
	return string(s)
}

func (s ClaimStatus) IsValid() bool {
	return validClaimStatuses[s]
}

func (s ClaimStatus) CanTransitionTo(newStatus ClaimStatus) bool {
	for _, allowed := range claimStatusTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (s ClaimStatus) IsPending() bool {
	return s == StatusPending
}

func (s ClaimStatus) IsApproved() bool {
	return s == StatusApproved
}

func (s ClaimStatus) IsRejected() bool {
	return s == StatusRejected
}

func (s ClaimStatus) IsHandoverInProgress() bool {
	return s == StatusHandoverInProgress
}

func (s ClaimStatus) IsCompleted() bool {
	return s == StatusCompleted
}

// IsTerminal reports whether the claim can never transition again.
func (s ClaimStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

func NewClaimStatus(s string) (ClaimStatus, error) {
	cs := ClaimStatus(s)
	if !cs.IsValid() {
		return "", fmt.Errorf("invalid claim status: %s", s)
	}
	return cs, nil
}
