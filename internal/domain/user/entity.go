package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront account. Purchases reference buyers by id only.
type User struct {
	id           uuid.UUID
	username     Username
	email        Email
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username Username, email Email, passwordHash string, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}
}

func Reconstruct(id uuid.UUID, username, email, passwordHash string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		username:     Username{value: username},
		email:        Email{value: email},
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
