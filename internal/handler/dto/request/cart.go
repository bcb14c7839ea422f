package request

import (
	"ticketqueen/internal/domain/cart"
	"ticketqueen/internal/domain/purchase"

	"github.com/google/uuid"
)

type ReconcileCartRequest struct {
	Items    []CartLineItem     `json:"items" binding:"required,dive"`
	Rejected []RejectedLineItem `json:"rejected" binding:"dive"`
}

type CartLineItem struct {
	EventID  uuid.UUID `json:"eventId" binding:"required"`
	Quantity int       `json:"quantity" binding:"min=1"`
}

type RejectedLineItem struct {
	EventID           uuid.UUID `json:"eventId" binding:"required"`
	RequestedQuantity int       `json:"requestedQuantity"`
	Available         int       `json:"available" binding:"min=0"`
}

func (r *ReconcileCartRequest) ToDomain() ([]cart.LineItem, []purchase.Rejection) {
	items := make([]cart.LineItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = cart.LineItem{EventID: it.EventID, Quantity: it.Quantity}
	}
	rejected := make([]purchase.Rejection, len(r.Rejected))
	for i, rj := range r.Rejected {
		rejected[i] = purchase.Rejection{EventID: rj.EventID, Requested: rj.RequestedQuantity, Available: rj.Available}
	}
	return items, rejected
}
