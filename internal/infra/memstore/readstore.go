package memstore

import (
	"bytes"
	"context"
	"slices"
	"time"

	"ticketqueen/internal/infra"
	"ticketqueen/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventReadStore struct {
	s *Store
}

func NewEventReadStore(s *Store) *EventReadStore {
	return &EventReadStore{s: s}
}

// FindAll orders by date, then name, like the Postgres read store.
func (r *EventReadStore) FindAll(_ context.Context) ([]*queries.EventView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*queries.EventView, 0, len(r.s.events))
	for _, row := range r.s.events {
		out = append(out, toEventView(row))
	}
	slices.SortFunc(out, func(a, b *queries.EventView) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		if a.Name != b.Name {
			if a.Name < b.Name {
				return -1
			}
			return 1
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	return out, nil
}

func (r *EventReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.EventView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.events[id]
	if !ok {
		return nil, infra.NotFound("event not found")
	}
	return toEventView(row), nil
}

func toEventView(row *eventRow) *queries.EventView {
	return &queries.EventView{
		ID:         row.id,
		Name:       row.name,
		Date:       row.date,
		Venue:      row.venue,
		PriceCents: row.priceCents,
		Total:      row.total,
		Reserved:   row.reserved,
		Available:  row.total - row.reserved,
		CreatedAt:  row.createdAt,
	}
}

type TicketReadStore struct {
	s *Store
}

func NewTicketReadStore(s *Store) *TicketReadStore {
	return &TicketReadStore{s: s}
}

func (r *TicketReadStore) FindByBuyerFirstPage(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*queries.TicketView, error) {
	return r.page(buyerID, nil, limit), nil
}

func (r *TicketReadStore) FindByBuyerKeyset(ctx context.Context, buyerID uuid.UUID, lastPurchasedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.TicketView, error) {
	after := func(v *queries.TicketView) bool {
		if c := v.PurchasedAt.Compare(lastPurchasedAt); c != 0 {
			return c < 0
		}
		return bytes.Compare(v.ID[:], lastID[:]) < 0
	}
	return r.page(buyerID, after, limit), nil
}

func (r *TicketReadStore) page(buyerID uuid.UUID, keep func(*queries.TicketView) bool, limit int32) []*queries.TicketView {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*queries.TicketView
	for _, row := range r.s.tickets {
		if row.buyerID != buyerID {
			continue
		}
		ev := r.s.events[row.eventID]
		v := &queries.TicketView{
			ID:          row.id,
			RequestID:   row.requestID,
			BuyerID:     row.buyerID,
			EventID:     row.eventID,
			EventName:   ev.name,
			EventDate:   ev.date,
			Venue:       ev.venue,
			PriceCents:  ev.priceCents,
			Used:        row.used,
			PurchasedAt: row.createdAt,
		}
		if row.usedAt != nil {
			at := *row.usedAt
			v.UsedAt = &at
		}
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	slices.SortFunc(out, func(a, b *queries.TicketView) int {
		if c := b.PurchasedAt.Compare(a.PurchasedAt); c != 0 {
			return c
		}
		return bytes.Compare(b.ID[:], a.ID[:])
	})
	if limit > 0 && len(out) > int(limit) {
		out = out[:limit]
	}
	return out
}
