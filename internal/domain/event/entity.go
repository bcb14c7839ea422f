package event

import (
	"fmt"
	"math"
	"time"

	"ticketqueen/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxCapacity matches the int4 counter columns.
const MaxCapacity = math.MaxInt32

var (
	ErrNegativeCapacity = errs.New("event capacity cannot be negative")
	ErrCapacityTooLarge = errs.New("event capacity is too large")
	ErrInvalidQuantity  = errs.New("quantity must be positive")
	ErrOverRelease      = errs.New("release exceeds reserved count")
	ErrCorruptCounters  = errs.New("event counters out of range")
)

// InsufficientAvailabilityError is returned by Reserve when qty exceeds what is left.
type InsufficientAvailabilityError struct {
	EventID   uuid.UUID
	Requested int
	Available int
}

func (e *InsufficientAvailabilityError) Error() string {
	return fmt.Sprintf("event %s: requested %d, available %d", e.EventID, e.Requested, e.Available)
}

// Event keeps 0 <= reserved <= total at all times; total is fixed at creation.
type Event struct {
	id        uuid.UUID
	name      string
	date      time.Time
	venue     string
	price     Money
	total     int
	reserved  int
	createdAt time.Time
	updatedAt time.Time
}

func NewEvent(name string, date time.Time, venue string, price Money, total int, now time.Time) (*Event, error) {
	if total < 0 {
		return nil, ErrNegativeCapacity
	}
	if total > MaxCapacity {
		return nil, ErrCapacityTooLarge
	}
	n, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	v, err := normalizeVenue(venue)
	if err != nil {
		return nil, err
	}

	return &Event{
		id:        uuid.New(),
		name:      n,
		date:      date,
		venue:     v,
		price:     price,
		total:     total,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds an event from storage and rejects counters that break the invariant.
func Reconstruct(id uuid.UUID, name string, date time.Time, venue string, priceCents int64, total, reserved int, createdAt, updatedAt time.Time) (*Event, error) {
	price, err := NewMoney(priceCents)
	if err != nil {
		return nil, err
	}
	if total < 0 || reserved < 0 || reserved > total {
		return nil, errs.Wrapf(ErrCorruptCounters, "event %s: total=%d reserved=%d", id, total, reserved)
	}
	return &Event{
		id:        id,
		name:      name,
		date:      date,
		venue:     venue,
		price:     price,
		total:     total,
		reserved:  reserved,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (e *Event) ID() uuid.UUID        { return e.id }
func (e *Event) Name() string         { return e.name }
func (e *Event) Date() time.Time      { return e.date }
func (e *Event) Venue() string        { return e.venue }
func (e *Event) Price() Money         { return e.price }
func (e *Event) Total() int           { return e.total }
func (e *Event) Reserved() int        { return e.reserved }
func (e *Event) CreatedAt() time.Time { return e.createdAt }
func (e *Event) UpdatedAt() time.Time { return e.updatedAt }

func (e *Event) Available() int {
	return e.total - e.reserved
}

// Reserve takes qty units or fails without side effect.
func (e *Event) Reserve(qty int, now time.Time) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if available := e.Available(); qty > available {
		return &InsufficientAvailabilityError{EventID: e.id, Requested: qty, Available: available}
	}
	e.reserved += qty
	e.updatedAt = now
	return nil
}

// Release gives back qty units previously taken by Reserve.
func (e *Event) Release(qty int, now time.Time) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > e.reserved {
		return ErrOverRelease
	}
	e.reserved -= qty
	e.updatedAt = now
	return nil
}

// Restate overwrites reserved with a value derived from the ledger.
func (e *Event) Restate(reserved int, now time.Time) error {
	if reserved < 0 || reserved > e.total {
		return errs.Wrapf(ErrCorruptCounters, "event %s: derived reserved=%d exceeds total=%d", e.id, reserved, e.total)
	}
	e.reserved = reserved
	e.updatedAt = now
	return nil
}
