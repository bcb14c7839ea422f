package repository

import (
	"context"
	"slices"

	"ticketqueen/internal/domain/event"
	"ticketqueen/internal/domain/purchase"
	"ticketqueen/internal/infra"
	"ticketqueen/internal/infra/repository/converter"
	sqlc "ticketqueen/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type EventWriteQueries interface {
	CreateEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEventParams) error
	LockEventsForUpdate(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Events, error)
	ListEventIDs(ctx context.Context, db sqlc.DBTX) ([]uuid.UUID, error)
	UpdateEventReserved(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateEventReservedParams) (int64, error)
}

type EventRepository struct {
	queries EventWriteQueries
	db      sqlc.DBTX
}

func NewEventRepository(queries EventWriteQueries, db sqlc.DBTX) *EventRepository {
	return &EventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EventRepository) Create(ctx context.Context, ev *event.Event) error {
	if err := r.queries.CreateEvent(ctx, r.db, converter.EventToCreateParams(ev)); err != nil {
		return infra.WrapRepoErr("failed to create event", err)
	}
	return nil
}

// LockForUpdate takes the row locks in ascending id order so concurrent
// transactions across instances cannot deadlock on overlapping sets.
func (r *EventRepository) LockForUpdate(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*event.Event, error) {
	ordered := slices.Clone(ids)
	purchase.SortIDs(ordered)
	ordered = slices.Compact(ordered)

	rows, err := r.queries.LockEventsForUpdate(ctx, r.db, ordered)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock events", err)
	}
	if len(rows) != len(ordered) {
		return nil, infra.NotFound("event not found")
	}

	out := make(map[uuid.UUID]*event.Event, len(rows))
	for _, row := range rows {
		ev, err := converter.EventFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("stored event is invalid", err, infra.KindCheckViolated)
		}
		out[row.ID] = ev
	}
	return out, nil
}

func (r *EventRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := r.queries.ListEventIDs(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list event ids", err)
	}
	return ids, nil
}

func (r *EventRepository) UpdateReserved(ctx context.Context, ev *event.Event) error {
	n, err := r.queries.UpdateEventReserved(ctx, r.db, converter.EventToReservedParams(ev))
	if err != nil {
		return infra.WrapRepoErr("failed to update reserved count", err)
	}
	if n == 0 {
		return infra.NotFound("event not found")
	}
	return nil
}
