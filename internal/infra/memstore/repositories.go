package memstore

import (
	"context"
	"slices"
	"time"

	"ticketqueen/internal/domain/event"
	"ticketqueen/internal/domain/purchase"
	"ticketqueen/internal/domain/ticket"
	"ticketqueen/internal/domain/user"
	"ticketqueen/internal/infra"

	"github.com/google/uuid"
)

type eventRepo struct {
	tx *memTx
}

func (r eventRepo) Create(_ context.Context, ev *event.Event) error {
	s := r.tx.s
	if _, exists := s.events[ev.ID()]; exists {
		return infra.WrapRepoErr("event already exists", nil, infra.KindDuplicateKey)
	}
	s.events[ev.ID()] = &eventRow{
		id:         ev.ID(),
		name:       ev.Name(),
		date:       ev.Date(),
		venue:      ev.Venue(),
		priceCents: ev.Price().Cents(),
		total:      ev.Total(),
		reserved:   ev.Reserved(),
		createdAt:  ev.CreatedAt(),
		updatedAt:  ev.UpdatedAt(),
	}
	r.tx.onRollback(func() { delete(s.events, ev.ID()) })
	return nil
}

func (r eventRepo) LockForUpdate(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*event.Event, error) {
	ordered := slices.Clone(ids)
	purchase.SortIDs(ordered)

	out := make(map[uuid.UUID]*event.Event, len(ordered))
	for _, id := range ordered {
		row, ok := r.tx.s.events[id]
		if !ok {
			return nil, infra.NotFound("event not found")
		}
		ev, err := event.Reconstruct(row.id, row.name, row.date, row.venue, row.priceCents, row.total, row.reserved, row.createdAt, row.updatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to load event", err)
		}
		out[id] = ev
	}
	return out, nil
}

func (r eventRepo) ListIDs(_ context.Context) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(r.tx.s.events))
	for id := range r.tx.s.events {
		ids = append(ids, id)
	}
	purchase.SortIDs(ids)
	return ids, nil
}

func (r eventRepo) UpdateReserved(_ context.Context, ev *event.Event) error {
	row, ok := r.tx.s.events[ev.ID()]
	if !ok {
		return infra.NotFound("event not found")
	}
	if ev.Reserved() < 0 || ev.Reserved() > row.total {
		return infra.WrapRepoErr("reserved out of range", nil, infra.KindCheckViolated)
	}
	prevReserved, prevUpdated := row.reserved, row.updatedAt
	row.reserved = ev.Reserved()
	row.updatedAt = ev.UpdatedAt()
	r.tx.onRollback(func() {
		row.reserved = prevReserved
		row.updatedAt = prevUpdated
	})
	return nil
}

type ledgerRepo struct {
	tx *memTx
}

func (r ledgerRepo) Append(_ context.Context, entry *purchase.LedgerEntry) (int64, error) {
	s := r.tx.s
	if entry.IsCommitted() {
		if _, dup := s.committed[entry.RequestID]; dup {
			return 0, infra.WrapRepoErr("request already committed", nil, infra.KindDuplicateKey)
		}
	}
	for _, l := range entry.Lines {
		if _, ok := s.events[l.EventID]; !ok {
			return 0, infra.WrapRepoErr("ledger line references unknown event", nil, infra.KindForeignKeyViolated)
		}
	}

	seq := int64(len(s.entries) + 1)
	row := *cloneEntry(*entry)
	row.Seq = seq
	s.entries = append(s.entries, row)
	if row.IsCommitted() {
		s.committed[row.RequestID] = seq
	}
	r.tx.onRollback(func() {
		s.entries = s.entries[:seq-1]
		if row.IsCommitted() {
			delete(s.committed, row.RequestID)
		}
	})
	return seq, nil
}

func (r ledgerRepo) LatestSeq(_ context.Context) (int64, error) {
	return int64(len(r.tx.s.entries)), nil
}

func (r ledgerRepo) CommittedLinesAfter(_ context.Context, afterSeq int64) ([]purchase.CommittedLine, error) {
	var out []purchase.CommittedLine
	for i := max(afterSeq, 0); i < int64(len(r.tx.s.entries)); i++ {
		e := r.tx.s.entries[i]
		if !e.IsCommitted() {
			continue
		}
		for _, l := range e.Lines {
			out = append(out, purchase.CommittedLine{Seq: e.Seq, EventID: l.EventID, Quantity: l.Requested})
		}
	}
	return out, nil
}

func (r ledgerRepo) PendingIssuance(_ context.Context) ([]*purchase.LedgerEntry, error) {
	s := r.tx.s
	var out []*purchase.LedgerEntry
	for _, e := range s.entries {
		if !e.IsCommitted() {
			continue
		}
		if len(s.byRequest[e.RequestID]) < e.TotalQuantity() {
			out = append(out, cloneEntry(e))
		}
	}
	return out, nil
}

func (r ledgerRepo) Checkpoints(_ context.Context) (map[uuid.UUID]purchase.Checkpoint, error) {
	out := make(map[uuid.UUID]purchase.Checkpoint, len(r.tx.s.checkpoints))
	for id, cp := range r.tx.s.checkpoints {
		out[id] = cp
	}
	return out, nil
}

func (r ledgerRepo) SaveCheckpoint(_ context.Context, cp purchase.Checkpoint) error {
	s := r.tx.s
	if _, ok := s.events[cp.EventID]; !ok {
		return infra.WrapRepoErr("checkpoint references unknown event", nil, infra.KindForeignKeyViolated)
	}
	prev, had := s.checkpoints[cp.EventID]
	s.checkpoints[cp.EventID] = cp
	r.tx.onRollback(func() {
		if had {
			s.checkpoints[cp.EventID] = prev
			return
		}
		delete(s.checkpoints, cp.EventID)
	})
	return nil
}

type ticketRepo struct {
	tx *memTx
}

func (r ticketRepo) InsertIfAbsent(_ context.Context, t *ticket.Ticket) error {
	s := r.tx.s
	key := ticketKey{requestID: t.RequestID(), eventID: t.EventID(), seq: t.Seq()}
	if _, exists := s.ticketKeys[key]; exists {
		return nil
	}
	if _, ok := s.events[t.EventID()]; !ok {
		return infra.WrapRepoErr("ticket references unknown event", nil, infra.KindForeignKeyViolated)
	}
	if _, exists := s.tickets[t.ID()]; exists {
		return infra.WrapRepoErr("ticket id already exists", nil, infra.KindDuplicateKey)
	}

	s.tickets[t.ID()] = &ticketRow{
		id:        t.ID(),
		requestID: t.RequestID(),
		eventID:   t.EventID(),
		buyerID:   t.BuyerID(),
		seq:       t.Seq(),
		used:      t.Used(),
		usedAt:    t.UsedAt(),
		// Postgres keeps microseconds; cursors depend on it.
		createdAt: t.CreatedAt().Truncate(time.Microsecond),
	}
	s.ticketKeys[key] = t.ID()
	s.byRequest[t.RequestID()] = append(s.byRequest[t.RequestID()], t.ID())

	r.tx.onRollback(func() {
		delete(s.tickets, t.ID())
		delete(s.ticketKeys, key)
		ids := s.byRequest[t.RequestID()]
		s.byRequest[t.RequestID()] = ids[:len(ids)-1]
		if len(s.byRequest[t.RequestID()]) == 0 {
			delete(s.byRequest, t.RequestID())
		}
	})
	return nil
}

func (r ticketRepo) ListByRequestAndEvent(_ context.Context, requestID, eventID uuid.UUID) ([]*ticket.Ticket, error) {
	var out []*ticket.Ticket
	for _, id := range r.tx.s.byRequest[requestID] {
		row := r.tx.s.tickets[id]
		if row.eventID == eventID {
			out = append(out, toTicket(row))
		}
	}
	slices.SortFunc(out, func(a, b *ticket.Ticket) int { return a.Seq() - b.Seq() })
	return out, nil
}

func (r ticketRepo) GetForUpdate(_ context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	row, ok := r.tx.s.tickets[id]
	if !ok {
		return nil, infra.NotFound("ticket not found")
	}
	return toTicket(row), nil
}

func (r ticketRepo) MarkUsed(_ context.Context, id uuid.UUID, usedAt time.Time) (bool, error) {
	row, ok := r.tx.s.tickets[id]
	if !ok {
		return false, infra.NotFound("ticket not found")
	}
	if row.used {
		return false, nil
	}
	at := usedAt.Truncate(time.Microsecond)
	row.used = true
	row.usedAt = &at
	r.tx.onRollback(func() {
		row.used = false
		row.usedAt = nil
	})
	return true, nil
}

func toTicket(row *ticketRow) *ticket.Ticket {
	var usedAt *time.Time
	if row.usedAt != nil {
		at := *row.usedAt
		usedAt = &at
	}
	return ticket.Reconstruct(row.id, row.requestID, row.eventID, row.buyerID, row.seq, row.used, usedAt, row.createdAt)
}

type userRepo struct {
	tx *memTx
}

func (r userRepo) Create(_ context.Context, u *user.User) error {
	s := r.tx.s
	email := u.Email().Value()
	if _, exists := s.emails[email]; exists {
		return infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey)
	}
	s.users[u.ID()] = &userRow{
		id:           u.ID(),
		username:     u.Username().Value(),
		email:        email,
		passwordHash: u.PasswordHash(),
		createdAt:    u.CreatedAt(),
		updatedAt:    u.UpdatedAt(),
	}
	s.emails[email] = u.ID()
	r.tx.onRollback(func() {
		delete(s.users, u.ID())
		delete(s.emails, email)
	})
	return nil
}
