package repository

import (
	"context"
	"time"

	"ticketqueen/internal/domain/ticket"
	"ticketqueen/internal/infra"
	"ticketqueen/internal/infra/repository/converter"
	sqlc "ticketqueen/internal/infra/sqlc/generated"
	"ticketqueen/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type TicketWriteQueries interface {
	InsertTicketIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertTicketIfAbsentParams) (int64, error)
	ListTicketsByRequestAndEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTicketsByRequestAndEventParams) ([]sqlc.Tickets, error)
	GetTicketForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Tickets, error)
	MarkTicketUsed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkTicketUsedParams) (int64, error)
}

type TicketRepository struct {
	queries TicketWriteQueries
	db      sqlc.DBTX
}

func NewTicketRepository(queries TicketWriteQueries, db sqlc.DBTX) *TicketRepository {
	return &TicketRepository{
		queries: queries,
		db:      db,
	}
}

func (r *TicketRepository) InsertIfAbsent(ctx context.Context, t *ticket.Ticket) error {
	if _, err := r.queries.InsertTicketIfAbsent(ctx, r.db, converter.TicketToInsertParams(t)); err != nil {
		return infra.WrapRepoErr("failed to insert ticket", err)
	}
	return nil
}

func (r *TicketRepository) ListByRequestAndEvent(ctx context.Context, requestID, eventID uuid.UUID) ([]*ticket.Ticket, error) {
	rows, err := r.queries.ListTicketsByRequestAndEvent(ctx, r.db, sqlc.ListTicketsByRequestAndEventParams{
		RequestID: requestID,
		EventID:   eventID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tickets", err)
	}
	out := make([]*ticket.Ticket, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.TicketFromRow(row))
	}
	return out, nil
}

func (r *TicketRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	row, err := r.queries.GetTicketForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock ticket", err)
	}
	return converter.TicketFromRow(row), nil
}

func (r *TicketRepository) MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) (bool, error) {
	n, err := r.queries.MarkTicketUsed(ctx, r.db, sqlc.MarkTicketUsedParams{
		ID:     id,
		UsedAt: pgconv.TimeToPgtype(usedAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark ticket used", err)
	}
	return n == 1, nil
}
