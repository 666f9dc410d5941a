package record

import (
	"time"
)

type Record struct {
	ID         string
	EmployeeID string
	Day        time.Time
	Type       Type
	Status     Status
	CreatedAt  time.Time
	DecidedBy  *string
	DecidedAt  *time.Time

	// DTO
	EmployeeName *string
}

// Type classifies a worked day.
type Type string

const (
	TypeDay    Type = "day"
	TypeNight  Type = "night"
	TypeTravel Type = "travel"
)

func (t Type) Valid() bool {
	switch t {
	case TypeDay, TypeNight, TypeTravel:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Terminal reports whether the status admits no further transition.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func (d Decision) Valid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// Status returns the terminal status the decision leads to.
func (d Decision) Status() Status {
	if d == DecisionApprove {
		return StatusApproved
	}
	return StatusRejected
}
