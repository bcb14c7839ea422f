package response

import (
	"ticketqueen/internal/domain/purchase"

	"github.com/google/uuid"
)

type PurchaseCommittedResponse struct {
	TicketIDs []uuid.UUID `json:"ticketIds"`
}

type PurchaseRejectedResponse struct {
	Rejected []RejectedLineResponse `json:"rejected"`
}

type RejectedLineResponse struct {
	EventID           uuid.UUID `json:"eventId"`
	RequestedQuantity int       `json:"requestedQuantity"`
	Available         int       `json:"available"`
}

func FromCommittedOutcome(o *purchase.Outcome) *PurchaseCommittedResponse {
	ids := o.TicketIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return &PurchaseCommittedResponse{TicketIDs: ids}
}

func FromRejectedOutcome(o *purchase.Outcome) *PurchaseRejectedResponse {
	return &PurchaseRejectedResponse{Rejected: FromRejections(o.Rejections)}
}

func FromRejections(rs []purchase.Rejection) []RejectedLineResponse {
	res := make([]RejectedLineResponse, len(rs))
	for i, r := range rs {
		res[i] = RejectedLineResponse{EventID: r.EventID, RequestedQuantity: r.Requested, Available: r.Available}
	}
	return res
}
