// Package memstore keeps the whole store in process memory behind one RWMutex.
//
// A write transaction holds the write lock from start to finish and records an
// undo step for every mutation, so readers see committed state only and a
// failed transaction leaves no trace. Rows are copied in and out; callers never
// share memory with the store.
package memstore

import (
	"context"
	"slices"
	"sync"
	"time"

	"ticketqueen/internal/domain/purchase"
	"ticketqueen/internal/usecase/shared"

	"github.com/google/uuid"
)

type eventRow struct {
	id         uuid.UUID
	name       string
	date       time.Time
	venue      string
	priceCents int64
	total      int
	reserved   int
	createdAt  time.Time
	updatedAt  time.Time
}

type ticketRow struct {
	id        uuid.UUID
	requestID uuid.UUID
	eventID   uuid.UUID
	buyerID   uuid.UUID
	seq       int
	used      bool
	usedAt    *time.Time
	createdAt time.Time
}

type ticketKey struct {
	requestID uuid.UUID
	eventID   uuid.UUID
	seq       int
}

type userRow struct {
	id           uuid.UUID
	username     string
	email        string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

type Store struct {
	mu sync.RWMutex

	events      map[uuid.UUID]*eventRow
	entries     []purchase.LedgerEntry // entries[i].Seq == i+1
	committed   map[uuid.UUID]int64
	checkpoints map[uuid.UUID]purchase.Checkpoint
	tickets     map[uuid.UUID]*ticketRow
	ticketKeys  map[ticketKey]uuid.UUID
	byRequest   map[uuid.UUID][]uuid.UUID
	users       map[uuid.UUID]*userRow
	emails      map[string]uuid.UUID
}

func New() *Store {
	return &Store{
		events:      make(map[uuid.UUID]*eventRow),
		committed:   make(map[uuid.UUID]int64),
		checkpoints: make(map[uuid.UUID]purchase.Checkpoint),
		tickets:     make(map[uuid.UUID]*ticketRow),
		ticketKeys:  make(map[ticketKey]uuid.UUID),
		byRequest:   make(map[uuid.UUID][]uuid.UUID),
		users:       make(map[uuid.UUID]*userRow),
		emails:      make(map[string]uuid.UUID),
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{s: s}
	defer func() {
		if p := recover(); p != nil {
			tx.rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &lockedReads{inner: reads{s: s}}
}

type memTx struct {
	s    *Store
	undo []func()
}

func (t *memTx) onRollback(f func()) {
	t.undo = append(t.undo, f)
}

func (t *memTx) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

func (t *memTx) Events() shared.EventRepository   { return eventRepo{tx: t} }
func (t *memTx) Ledger() shared.LedgerRepository  { return ledgerRepo{tx: t} }
func (t *memTx) Tickets() shared.TicketRepository { return ticketRepo{tx: t} }
func (t *memTx) Users() shared.UserRepository     { return userRepo{tx: t} }

// Reads inside a transaction run under the write lock already held.
func (t *memTx) Reads() shared.CommandReads { return reads{s: t.s} }

func cloneEntry(e purchase.LedgerEntry) *purchase.LedgerEntry {
	e.Lines = slices.Clone(e.Lines)
	return &e
}
