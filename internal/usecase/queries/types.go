package queries

import (
	"time"

	"github.com/google/uuid"
)

// EventView is a consistent snapshot of one event. Available is always Total-Reserved of the same read.
type EventView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	Venue      string    `json:"venue"`
	PriceCents int64     `json:"price_cents"`
	Total      int       `json:"total"`
	Reserved   int       `json:"reserved"`
	Available  int       `json:"available"`
	CreatedAt  time.Time `json:"created_at"`
}

// TicketView joins a ticket with the event it admits to.
type TicketView struct {
	ID          uuid.UUID  `json:"id"`
	RequestID   uuid.UUID  `json:"request_id"`
	BuyerID     uuid.UUID  `json:"buyer_id"`
	EventID     uuid.UUID  `json:"event_id"`
	EventName   string     `json:"event_name"`
	EventDate   time.Time  `json:"event_date"`
	Venue       string     `json:"venue"`
	PriceCents  int64      `json:"price_cents"`
	Used        bool       `json:"used"`
	UsedAt      *time.Time `json:"used_at,omitempty"`
	PurchasedAt time.Time  `json:"purchased_at"`
}
