package response

import (
	"fmt"
	"time"

	"ticketqueen/internal/usecase/queries"
	"ticketqueen/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EventResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	Venue     string    `json:"venue"`
	Price     string    `json:"price"`
	Available int       `json:"available"`
	Total     int       `json:"total"`
}

func FromEventView(v *queries.EventView) (*EventResponse, error) {
	var res EventResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	res.Price = formatCents(v.PriceCents)
	return &res, nil
}

func FromEventList(views []*queries.EventView) ([]*EventResponse, error) {
	res := make([]*EventResponse, len(views))
	for i, v := range views {
		r, err := FromEventView(v)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

func FromEventSnapshot(s *shared.EventSnapshot) (*EventResponse, error) {
	var res EventResponse
	if err := copier.Copy(&res, s); err != nil {
		return nil, err
	}
	res.Price = formatCents(s.PriceCents)
	return &res, nil
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
