package response

import (
	"time"

	"ticketqueen/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TicketResponse struct {
	ID          uuid.UUID  `json:"id"`
	RequestID   uuid.UUID  `json:"requestId"`
	EventID     uuid.UUID  `json:"eventId"`
	EventName   string     `json:"eventName"`
	EventDate   time.Time  `json:"eventDate"`
	Venue       string     `json:"venue"`
	Price       string     `json:"price"`
	Used        bool       `json:"used"`
	UsedAt      *time.Time `json:"usedAt,omitempty"`
	PurchasedAt time.Time  `json:"purchasedAt"`
}

type TicketListResponse struct {
	Tickets    []*TicketResponse `json:"tickets"`
	NextCursor string            `json:"nextCursor,omitempty"`
}

func FromTicketList(views []*queries.TicketView, next *queries.Cursor) (*TicketListResponse, error) {
	tickets := make([]*TicketResponse, len(views))
	for i, v := range views {
		var t TicketResponse
		if err := copier.Copy(&t, v); err != nil {
			return nil, err
		}
		t.Price = formatCents(v.PriceCents)
		tickets[i] = &t
	}
	res := &TicketListResponse{Tickets: tickets}
	if next != nil {
		res.NextCursor = next.After
	}
	return res, nil
}
