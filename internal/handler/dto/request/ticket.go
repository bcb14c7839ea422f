package request

import "github.com/google/uuid"

type UseTicketRequest struct {
	BuyerID uuid.UUID `json:"buyerId" binding:"required"`
}
