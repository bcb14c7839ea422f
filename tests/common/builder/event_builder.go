//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"ticketqueen/internal/domain/event"
	reqdto "ticketqueen/internal/handler/dto/request"
	sqlc "ticketqueen/internal/infra/sqlc/generated"
	"ticketqueen/internal/usecase/queries"
	"ticketqueen/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventBuilder struct {
	ID         uuid.UUID
	Name       string
	Date       time.Time
	Venue      string
	PriceCents int64
	Total      int
	Reserved   int
	CreatedAt  time.Time
}

func NewEventBuilder() *EventBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &EventBuilder{
		ID:         uuid.New(),
		Name:       "Spring Concert",
		Date:       now.Add(30 * 24 * time.Hour),
		Venue:      "Main Hall",
		PriceCents: 5000,
		Total:      100,
		CreatedAt:  now,
	}
}

func (b *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *EventBuilder) BuildDomain() (*event.Event, error) {
	price, err := event.NewMoney(b.PriceCents)
	if err != nil {
		return nil, err
	}
	return event.NewEvent(b.Name, b.Date, b.Venue, price, b.Total, b.CreatedAt)
}

func (b *EventBuilder) BuildInfra() sqlc.Events {
	return sqlc.Events{
		ID:         b.ID,
		Name:       b.Name,
		EventDate:  pgtype.Timestamptz{Time: b.Date, Valid: true},
		Venue:      b.Venue,
		PriceCents: b.PriceCents,
		Total:      int32(b.Total),
		Reserved:   int32(b.Reserved),
		CreatedAt:  pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *EventBuilder) BuildView() *queries.EventView {
	return &queries.EventView{
		ID:         b.ID,
		Name:       b.Name,
		Date:       b.Date,
		Venue:      b.Venue,
		PriceCents: b.PriceCents,
		Total:      b.Total,
		Reserved:   b.Reserved,
		Available:  b.Total - b.Reserved,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *EventBuilder) BuildSnapshot() *shared.EventSnapshot {
	return &shared.EventSnapshot{
		ID:         b.ID,
		Name:       b.Name,
		Date:       b.Date,
		Venue:      b.Venue,
		PriceCents: b.PriceCents,
		Total:      b.Total,
		Reserved:   b.Reserved,
		Available:  b.Total - b.Reserved,
	}
}

func (b *EventBuilder) BuildCreateRequestDTO() reqdto.CreateEventRequest {
	total := b.Total
	return reqdto.CreateEventRequest{
		Name:  b.Name,
		Date:  b.Date,
		Venue: b.Venue,
		Price: fmt.Sprintf("%d.%02d", b.PriceCents/100, b.PriceCents%100),
		Total: &total,
	}
}

// Fluent builder methods
func (b *EventBuilder) WithID(id uuid.UUID) *EventBuilder {
	b.ID = id
	return b
}

func (b *EventBuilder) WithName(name string) *EventBuilder {
	b.Name = name
	return b
}

func (b *EventBuilder) WithVenue(venue string) *EventBuilder {
	b.Venue = venue
	return b
}

func (b *EventBuilder) WithPriceCents(cents int64) *EventBuilder {
	b.PriceCents = cents
	return b
}

func (b *EventBuilder) WithTotal(total int) *EventBuilder {
	b.Total = total
	return b
}

func (b *EventBuilder) WithReserved(reserved int) *EventBuilder {
	b.Reserved = reserved
	return b
}
