package readstore

import (
	"context"

	"ticketqueen/internal/domain/purchase"
	"ticketqueen/internal/infra"
	"ticketqueen/internal/infra/repository/converter"
	sqlc "ticketqueen/internal/infra/sqlc/generated"
	"ticketqueen/internal/pkg/pgconv"
	"ticketqueen/internal/usecase/shared"

	"github.com/google/uuid"
)

type CommandReadQueries interface {
	GetEventByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Events, error)
	GetCommittedEntryByRequestID(ctx context.Context, db sqlc.DBTX, requestID uuid.UUID) (sqlc.LedgerEntries, error)
	ListLedgerLineItems(ctx context.Context, db sqlc.DBTX, entrySeq int64) ([]sqlc.LedgerLineItems, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
}

// CommandReadStore serves the write side's lookups. db is the pool outside a
// transaction and the pgx.Tx inside one.
type CommandReadStore struct {
	queries CommandReadQueries
	db      sqlc.DBTX
}

func NewCommandReadStore(queries CommandReadQueries, db sqlc.DBTX) *CommandReadStore {
	return &CommandReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CommandReadStore) EventByID(ctx context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	row, err := r.queries.GetEventByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get event snapshot", err)
	}
	total, reserved := int(row.Total), int(row.Reserved)
	return &shared.EventSnapshot{
		ID:         row.ID,
		Name:       row.Name,
		Date:       pgconv.TimeFromPgtype(row.EventDate),
		Venue:      row.Venue,
		PriceCents: row.PriceCents,
		Total:      total,
		Reserved:   reserved,
		Available:  max(total-reserved, 0),
	}, nil
}

func (r *CommandReadStore) CommittedEntry(ctx context.Context, requestID uuid.UUID) (*purchase.LedgerEntry, error) {
	row, err := r.queries.GetCommittedEntryByRequestID(ctx, r.db, requestID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("committed ledger entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get committed ledger entry", err)
	}
	lines, err := r.queries.ListLedgerLineItems(ctx, r.db, row.Seq)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ledger lines", err)
	}
	return converter.LedgerEntryFromRows(row, lines), nil
}

func (r *CommandReadStore) UserByEmail(ctx context.Context, email string) (*shared.UserCredentials, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &shared.UserCredentials{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
