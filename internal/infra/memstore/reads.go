package memstore

import (
	"context"

	"ticketqueen/internal/domain/purchase"
	"ticketqueen/internal/infra"
	"ticketqueen/internal/usecase/shared"

	"github.com/google/uuid"
)

type reads struct {
	s *Store
}

func (r reads) EventByID(_ context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	row, ok := r.s.events[id]
	if !ok {
		return nil, infra.NotFound("event not found")
	}
	return &shared.EventSnapshot{
		ID:         row.id,
		Name:       row.name,
		Date:       row.date,
		Venue:      row.venue,
		PriceCents: row.priceCents,
		Total:      row.total,
		Reserved:   row.reserved,
		Available:  row.total - row.reserved,
	}, nil
}

func (r reads) CommittedEntry(_ context.Context, requestID uuid.UUID) (*purchase.LedgerEntry, error) {
	seq, ok := r.s.committed[requestID]
	if !ok {
		return nil, infra.NotFound("committed ledger entry not found")
	}
	return cloneEntry(r.s.entries[seq-1]), nil
}

func (r reads) UserByEmail(_ context.Context, email string) (*shared.UserCredentials, error) {
	id, ok := r.s.emails[email]
	if !ok {
		return nil, infra.NotFound("user not found")
	}
	u := r.s.users[id]
	return &shared.UserCredentials{
		ID:           u.id,
		Username:     u.username,
		Email:        u.email,
		PasswordHash: u.passwordHash,
		CreatedAt:    u.createdAt,
	}, nil
}

// lockedReads takes the read lock per call for use outside transactions.
type lockedReads struct {
	inner reads
}

func (r *lockedReads) EventByID(ctx context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	r.inner.s.mu.RLock()
	defer r.inner.s.mu.RUnlock()
	return r.inner.EventByID(ctx, id)
}

func (r *lockedReads) CommittedEntry(ctx context.Context, requestID uuid.UUID) (*purchase.LedgerEntry, error) {
	r.inner.s.mu.RLock()
	defer r.inner.s.mu.RUnlock()
	return r.inner.CommittedEntry(ctx, requestID)
}

func (r *lockedReads) UserByEmail(ctx context.Context, email string) (*shared.UserCredentials, error) {
	r.inner.s.mu.RLock()
	defer r.inner.s.mu.RUnlock()
	return r.inner.UserByEmail(ctx, email)
}
