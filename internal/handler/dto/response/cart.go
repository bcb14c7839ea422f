package response

import (
	"ticketqueen/internal/domain/cart"

	"github.com/google/uuid"
)

type CartResponse struct {
	Items []CartLineItemResponse `json:"items"`
}

type CartLineItemResponse struct {
	EventID  uuid.UUID `json:"eventId"`
	Quantity int       `json:"quantity"`
}

func FromCart(items []cart.LineItem) *CartResponse {
	res := make([]CartLineItemResponse, len(items))
	for i, it := range items {
		res[i] = CartLineItemResponse{EventID: it.EventID, Quantity: it.Quantity}
	}
	return &CartResponse{Items: res}
}
