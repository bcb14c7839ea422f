package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TicketReadStore pages a buyer's tickets newest first, ordered by (purchased_at, id) descending.
type TicketReadStore interface {
	FindByBuyerFirstPage(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*TicketView, error)
	FindByBuyerKeyset(ctx context.Context, buyerID uuid.UUID, lastPurchasedAt time.Time, lastID uuid.UUID, limit int32) ([]*TicketView, error)
}

type TicketQueries interface {
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, cursor *Cursor, limit int) ([]*TicketView, *Cursor, error)
}

type ticketQueriesImpl struct {
	store TicketReadStore
}

func NewTicketQueries(store TicketReadStore) TicketQueries {
	return &ticketQueriesImpl{store: store}
}

func (q *ticketQueriesImpl) ListByBuyer(ctx context.Context, buyerID uuid.UUID, cursor *Cursor, limit int) ([]*TicketView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*TicketView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByBuyerFirstPage(ctx, buyerID, int32(limit+1))
	} else {
		lastPurchasedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.store.FindByBuyerKeyset(ctx, buyerID, lastPurchasedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.PurchasedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
