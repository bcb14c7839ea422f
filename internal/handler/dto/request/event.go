package request

import (
	"time"

	"ticketqueen/internal/domain/event"
	"ticketqueen/internal/usecase/commands"
)

type CreateEventRequest struct {
	Name  string    `json:"name" binding:"required,max=200"`
	Date  time.Time `json:"date" binding:"required"`
	Venue string    `json:"venue" binding:"required,max=200"`
	Price string    `json:"price" binding:"required"`
	Total *int      `json:"total" binding:"required,min=0,max=2147483647"`
}

func (r *CreateEventRequest) ToInput() (commands.CreateEventInput, error) {
	price, err := event.ParseMoney(r.Price)
	if err != nil {
		return commands.CreateEventInput{}, err
	}
	return commands.CreateEventInput{
		Name:       r.Name,
		Date:       r.Date,
		Venue:      r.Venue,
		PriceCents: price.Cents(),
		Total:      *r.Total,
	}, nil
}
