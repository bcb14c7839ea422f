// Package lockset serialises work per event inside one process.
//
// Each event id owns a one-slot channel. Acquire takes the slots for a set of ids
// in ascending id order, so two callers with overlapping sets can never wait on
// each other in a cycle, and callers with disjoint sets never contend. Blocked
// senders on a channel are woken in arrival order.
package lockset

import (
	"context"
	"slices"
	"sync"

	"ticketqueen/internal/domain/purchase"
	"ticketqueen/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAcquireCanceled = errs.New("lock acquisition canceled")

type Manager struct {
	mu    sync.Mutex
	slots map[uuid.UUID]*slot
}

type slot struct {
	ch   chan struct{}
	refs int
}

func New() *Manager {
	return &Manager{slots: make(map[uuid.UUID]*slot)}
}

// Acquire blocks until every id is held or ctx is done. On failure nothing stays held.
// The returned release is idempotent.
func (m *Manager) Acquire(ctx context.Context, ids []uuid.UUID) (func(), error) {
	ordered := slices.Clone(ids)
	purchase.SortIDs(ordered)
	ordered = slices.Compact(ordered)

	held := make([]uuid.UUID, 0, len(ordered))
	for _, id := range ordered {
		s := m.ref(id)
		select {
		case s.ch <- struct{}{}:
			held = append(held, id)
		case <-ctx.Done():
			m.unref(id)
			m.releaseAll(held)
			return nil, errs.Mark(ctx.Err(), ErrAcquireCanceled)
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() { m.releaseAll(held) })
	}, nil
}

// Len reports how many ids currently have holders or waiters.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.slots)
}

func (m *Manager) releaseAll(held []uuid.UUID) {
	for i := len(held) - 1; i >= 0; i-- {
		m.mu.Lock()
		s := m.slots[held[i]]
		m.mu.Unlock()
		<-s.ch
		m.unref(held[i])
	}
}

func (m *Manager) ref(id uuid.UUID) *slot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[id]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		m.slots[id] = s
	}
	s.refs++
	return s
}

func (m *Manager) unref(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.slots[id]
	s.refs--
	if s.refs == 0 {
		delete(m.slots, id)
	}
}
