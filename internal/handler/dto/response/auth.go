package response

import (
	"time"

	"ticketqueen/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromAccount(a *commands.Account) (*AccountResponse, error) {
	var res AccountResponse
	if err := copier.Copy(&res, a); err != nil {
		return nil, err
	}
	return &res, nil
}
