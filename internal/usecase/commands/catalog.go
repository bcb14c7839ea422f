package commands

import (
	"context"
	"time"

	"ticketqueen/internal/domain/event"
	"ticketqueen/internal/infra"
	"ticketqueen/internal/pkg/clock"
	"ticketqueen/internal/pkg/errs"
	"ticketqueen/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound           = errs.New("event not found")
	ErrInvalidEvent            = errs.New("invalid event")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateEventInput struct {
	Name       string
	Date       time.Time
	Venue      string
	PriceCents int64
	Total      int
}

type EventCommands interface {
	CreateEvent(ctx context.Context, in CreateEventInput) (*shared.EventSnapshot, error)
}

// EventCatalog owns every change to an event's reserved count.
type EventCatalog struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewEventCatalog(uow shared.UnitOfWork, clk clock.Clock) *EventCatalog {
	return &EventCatalog{uow: uow, clock: clk}
}

// Get returns a point-in-time snapshot of an event.
func (c *EventCatalog) Get(ctx context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	snap, err := c.uow.CommandReads().EventByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrEventNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snap, nil
}

func (c *EventCatalog) CreateEvent(ctx context.Context, in CreateEventInput) (*shared.EventSnapshot, error) {
	price, err := event.NewMoney(in.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidEvent)
	}
	ev, err := event.NewEvent(in.Name, in.Date, in.Venue, price, in.Total, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidEvent)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Events().Create(ctx, ev)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snapshotOf(ev), nil
}

// Lock row-locks the events of one purchase inside tx and returns the session that
// reserves and releases against them.
func (c *EventCatalog) Lock(ctx context.Context, tx shared.Tx, ids []uuid.UUID) (*CatalogSession, error) {
	events, err := tx.Events().LockForUpdate(ctx, ids)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrEventNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &CatalogSession{tx: tx, events: events, clock: c.clock}, nil
}

// CatalogSession is bound to one transaction. Every change is written through to tx.
type CatalogSession struct {
	tx     shared.Tx
	events map[uuid.UUID]*event.Event
	clock  clock.Clock
}

func (s *CatalogSession) Available(eventID uuid.UUID) int {
	ev, ok := s.events[eventID]
	if !ok {
		return 0
	}
	return ev.Available()
}

// TryReserve returns the new reserved count, or *event.InsufficientAvailabilityError
// with nothing changed.
func (s *CatalogSession) TryReserve(ctx context.Context, eventID uuid.UUID, qty int) (int, error) {
	ev, ok := s.events[eventID]
	if !ok {
		return 0, ErrEventNotFound
	}
	if err := ev.Reserve(qty, s.clock.Now()); err != nil {
		return ev.Reserved(), err
	}
	if err := s.tx.Events().UpdateReserved(ctx, ev); err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return ev.Reserved(), nil
}

func (s *CatalogSession) Release(ctx context.Context, eventID uuid.UUID, qty int) error {
	ev, ok := s.events[eventID]
	if !ok {
		return ErrEventNotFound
	}
	if err := ev.Release(qty, s.clock.Now()); err != nil {
		return err
	}
	if err := s.tx.Events().UpdateReserved(ctx, ev); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func snapshotOf(ev *event.Event) *shared.EventSnapshot {
	return &shared.EventSnapshot{
		ID:         ev.ID(),
		Name:       ev.Name(),
		Date:       ev.Date(),
		Venue:      ev.Venue(),
		PriceCents: ev.Price().Cents(),
		Total:      ev.Total(),
		Reserved:   ev.Reserved(),
		Available:  ev.Available(),
	}
}
