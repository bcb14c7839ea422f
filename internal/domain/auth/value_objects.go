package auth

import (
	"ticketqueen/internal/domain/user"
	"ticketqueen/internal/pkg/errs"
)

var ErrInvalidCredentials = errs.New("invalid email or password")

// Credentials is a parsed login attempt. The password is kept as typed;
// strength rules only apply at signup.
type Credentials struct {
	email    user.Email
	password string
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, errs.Mark(err, ErrInvalidCredentials)
	}
	if passwordStr == "" {
		return Credentials{}, ErrInvalidCredentials
	}

	return Credentials{
		email:    email,
		password: passwordStr,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}
