package purchase

import (
	"github.com/google/uuid"
)

type Status string

const (
	StatusCommitted Status = "committed"
	StatusRejected  Status = "rejected"
)

func (s Status) Valid() bool {
	return s == StatusCommitted || s == StatusRejected
}

// Rejection reports a line that did not fit, with the availability seen at decision time.
type Rejection struct {
	EventID   uuid.UUID
	Requested int
	Available int
}

type Outcome struct {
	RequestID  uuid.UUID
	Status     Status
	TicketIDs  []uuid.UUID
	Rejections []Rejection
	// Replayed is set when the outcome was reproduced from an earlier commit.
	Replayed bool
}

func Committed(requestID uuid.UUID, ticketIDs []uuid.UUID, replayed bool) *Outcome {
	return &Outcome{
		RequestID: requestID,
		Status:    StatusCommitted,
		TicketIDs: ticketIDs,
		Replayed:  replayed,
	}
}

func Rejected(requestID uuid.UUID, rejections []Rejection) *Outcome {
	return &Outcome{
		RequestID:  requestID,
		Status:     StatusRejected,
		Rejections: rejections,
	}
}

func (o *Outcome) IsCommitted() bool {
	return o.Status == StatusCommitted
}
