package readstore

import (
	"context"

	"ticketqueen/internal/infra"
	sqlc "ticketqueen/internal/infra/sqlc/generated"
	"ticketqueen/internal/pkg/pgconv"
	"ticketqueen/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventReadQueries interface {
	ListEvents(ctx context.Context, db sqlc.DBTX) ([]sqlc.Events, error)
	GetEventByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Events, error)
}

// EventReadStore reads committed rows without row locks, so a listing never waits on a purchase.
type EventReadStore struct {
	queries EventReadQueries
	db      sqlc.DBTX
}

func NewEventReadStore(queries EventReadQueries, db sqlc.DBTX) *EventReadStore {
	return &EventReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EventReadStore) FindAll(ctx context.Context) ([]*queries.EventView, error) {
	rows, err := r.queries.ListEvents(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}
	out := make([]*queries.EventView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEventView(row))
	}
	return out, nil
}

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	row, err := r.queries.GetEventByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get event by id", err)
	}
	return toEventView(row), nil
}

func toEventView(row sqlc.Events) *queries.EventView {
	total, reserved := int(row.Total), int(row.Reserved)
	return &queries.EventView{
		ID:         row.ID,
		Name:       row.Name,
		Date:       pgconv.TimeFromPgtype(row.EventDate),
		Venue:      row.Venue,
		PriceCents: row.PriceCents,
		Total:      total,
		Reserved:   reserved,
		Available:  max(total-reserved, 0),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
