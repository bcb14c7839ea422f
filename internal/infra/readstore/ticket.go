package readstore

import (
	"context"
	"time"

	"ticketqueen/internal/infra"
	sqlc "ticketqueen/internal/infra/sqlc/generated"
	"ticketqueen/internal/pkg/pgconv"
	"ticketqueen/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketViewQueries interface {
	GetTicketsByBuyerFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.GetTicketsByBuyerFirstPageParams) ([]sqlc.GetTicketsByBuyerFirstPageRow, error)
	GetTicketsByBuyerKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetTicketsByBuyerKeysetParams) ([]sqlc.GetTicketsByBuyerKeysetRow, error)
}

type TicketReadStore struct {
	queries TicketViewQueries
	db      sqlc.DBTX
}

func NewTicketReadStore(queries TicketViewQueries, db sqlc.DBTX) *TicketReadStore {
	return &TicketReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TicketReadStore) FindByBuyerFirstPage(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*queries.TicketView, error) {
	params := sqlc.GetTicketsByBuyerFirstPageParams{BuyerID: buyerID, Limit: limit}
	rows, err := r.queries.GetTicketsByBuyerFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get tickets first page by buyer", err)
	}
	out := make([]*queries.TicketView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTicketView(sqlc.GetTicketsByBuyerKeysetRow(row)))
	}
	return out, nil
}

func (r *TicketReadStore) FindByBuyerKeyset(ctx context.Context, buyerID uuid.UUID, lastPurchasedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.TicketView, error) {
	params := sqlc.GetTicketsByBuyerKeysetParams{
		BuyerID:   buyerID,
		CreatedAt: pgconv.TimeToPgtype(lastPurchasedAt),
		ID:        lastID,
		Limit:     limit,
	}
	rows, err := r.queries.GetTicketsByBuyerKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get tickets keyset by buyer", err)
	}
	out := make([]*queries.TicketView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTicketView(row))
	}
	return out, nil
}

// Both page queries select the same columns, so the first-page row converts to the keyset row.
func toTicketView(row sqlc.GetTicketsByBuyerKeysetRow) *queries.TicketView {
	return &queries.TicketView{
		ID:          row.ID,
		RequestID:   row.RequestID,
		BuyerID:     row.BuyerID,
		EventID:     row.EventID,
		EventName:   row.EventName,
		EventDate:   pgconv.TimeFromPgtype(row.EventDate),
		Venue:       row.Venue,
		PriceCents:  row.PriceCents,
		Used:        row.Used,
		UsedAt:      pgconv.TimePtrFromPgtype(row.UsedAt),
		PurchasedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
