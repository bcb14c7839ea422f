package cart

import (
	"ticketqueen/internal/domain/purchase"

	"github.com/google/uuid"
)

type LineItem struct {
	EventID  uuid.UUID
	Quantity int
}

// Reconcile adjusts a cart after a rejected purchase. Lines for events that were not
// rejected pass through untouched. Lines for a rejected event share the reported
// availability in cart order, so duplicate lines never add up past it, and lines
// left with nothing are dropped. The input slice is not modified.
func Reconcile(items []LineItem, rejected []purchase.Rejection) []LineItem {
	remaining := make(map[uuid.UUID]int, len(rejected))
	for _, r := range rejected {
		avail := max(r.Available, 0)
		if prev, ok := remaining[r.EventID]; ok {
			avail = min(prev, avail)
		}
		remaining[r.EventID] = avail
	}

	out := make([]LineItem, 0, len(items))
	for _, it := range items {
		left, isRejected := remaining[it.EventID]
		if !isRejected {
			out = append(out, it)
			continue
		}
		qty := min(it.Quantity, left)
		if qty <= 0 {
			continue
		}
		remaining[it.EventID] = left - qty
		out = append(out, LineItem{EventID: it.EventID, Quantity: qty})
	}
	return out
}
