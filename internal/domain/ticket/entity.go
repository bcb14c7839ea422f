package ticket

import (
	"time"

	"ticketqueen/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotOwner    = errs.New("ticket is not owned by buyer")
	ErrAlreadyUsed = errs.New("ticket has already been used")
	ErrInvalidSeq  = errs.New("ticket sequence must not be negative")
)

// Ticket is one admission unit. It is never deleted and used only moves false -> true.
// (requestID, eventID, seq) identifies the unit a purchase minted, so minting twice is a no-op.
type Ticket struct {
	id        uuid.UUID
	requestID uuid.UUID
	eventID   uuid.UUID
	buyerID   uuid.UUID
	seq       int
	used      bool
	usedAt    *time.Time
	createdAt time.Time
}

func New(requestID, eventID, buyerID uuid.UUID, seq int, now time.Time) (*Ticket, error) {
	if seq < 0 {
		return nil, ErrInvalidSeq
	}
	return &Ticket{
		id:        uuid.New(),
		requestID: requestID,
		eventID:   eventID,
		buyerID:   buyerID,
		seq:       seq,
		createdAt: now,
	}, nil
}

func Reconstruct(id, requestID, eventID, buyerID uuid.UUID, seq int, used bool, usedAt *time.Time, createdAt time.Time) *Ticket {
	return &Ticket{
		id:        id,
		requestID: requestID,
		eventID:   eventID,
		buyerID:   buyerID,
		seq:       seq,
		used:      used,
		usedAt:    usedAt,
		createdAt: createdAt,
	}
}

func (t *Ticket) ID() uuid.UUID        { return t.id }
func (t *Ticket) RequestID() uuid.UUID { return t.requestID }
func (t *Ticket) EventID() uuid.UUID   { return t.eventID }
func (t *Ticket) BuyerID() uuid.UUID   { return t.buyerID }
func (t *Ticket) Seq() int             { return t.seq }
func (t *Ticket) Used() bool           { return t.used }
func (t *Ticket) UsedAt() *time.Time   { return t.usedAt }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }

func (t *Ticket) OwnedBy(buyerID uuid.UUID) bool {
	return t.buyerID == buyerID
}

// MarkUsed checks ownership before the used flag so a stranger learns nothing about usage.
func (t *Ticket) MarkUsed(buyerID uuid.UUID, now time.Time) error {
	if !t.OwnedBy(buyerID) {
		return ErrNotOwner
	}
	if t.used {
		return ErrAlreadyUsed
	}
	t.used = true
	usedAt := now
	t.usedAt = &usedAt
	return nil
}
