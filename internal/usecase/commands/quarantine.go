package commands

import (
	"sync"

	"ticketqueen/internal/domain/purchase"

	"github.com/google/uuid"
)

// Quarantine tracks events whose committed purchases still owe tickets.
// An event stays blocked while any request touching it is unresolved.
type Quarantine struct {
	mu        sync.RWMutex
	byRequest map[uuid.UUID][]uuid.UUID
	byEvent   map[uuid.UUID]int
}

func NewQuarantine() *Quarantine {
	return &Quarantine{
		byRequest: make(map[uuid.UUID][]uuid.UUID),
		byEvent:   make(map[uuid.UUID]int),
	}
}

func (q *Quarantine) Add(requestID uuid.UUID, eventIDs []uuid.UUID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, exists := q.byRequest[requestID]; exists {
		return
	}
	q.byRequest[requestID] = eventIDs
	for _, id := range eventIDs {
		q.byEvent[id]++
	}
}

// Lift clears a request once its tickets exist.
func (q *Quarantine) Lift(requestID uuid.UUID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	eventIDs, ok := q.byRequest[requestID]
	if !ok {
		return
	}
	delete(q.byRequest, requestID)
	for _, id := range eventIDs {
		q.byEvent[id]--
		if q.byEvent[id] <= 0 {
			delete(q.byEvent, id)
		}
	}
}

// Blocked returns the subset of ids that are quarantined, in lock order.
func (q *Quarantine) Blocked(ids []uuid.UUID) []uuid.UUID {
	q.mu.RLock()
	defer q.mu.RUnlock()
	var out []uuid.UUID
	for _, id := range ids {
		if q.byEvent[id] > 0 {
			out = append(out, id)
		}
	}
	purchase.SortIDs(out)
	return out
}

func (q *Quarantine) Requests() []uuid.UUID {
	q.mu.RLock()
	defer q.mu.RUnlock()
	out := make([]uuid.UUID, 0, len(q.byRequest))
	for id := range q.byRequest {
		out = append(out, id)
	}
	return out
}
