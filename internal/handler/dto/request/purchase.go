package request

import (
	"ticketqueen/internal/domain/purchase"
	"ticketqueen/internal/usecase/commands"

	"github.com/google/uuid"
)

// Quantities are checked by the purchase domain so every malformed line is reported the same way.
type PurchaseRequest struct {
	RequestID uuid.UUID          `json:"requestId" binding:"required"`
	BuyerID   uuid.UUID          `json:"buyerId" binding:"required"`
	Items     []PurchaseLineItem `json:"items" binding:"required"`
}

type PurchaseLineItem struct {
	EventID  uuid.UUID `json:"eventId"`
	Quantity int       `json:"quantity"`
}

func (r *PurchaseRequest) ToInput() commands.SubmitPurchaseInput {
	items := make([]purchase.LineItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = purchase.LineItem{EventID: it.EventID, Quantity: it.Quantity}
	}
	return commands.SubmitPurchaseInput{
		RequestID: r.RequestID,
		BuyerID:   r.BuyerID,
		Items:     items,
	}
}
