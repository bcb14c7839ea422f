package shared

import (
	"time"

	"github.com/google/uuid"
)

// EventSnapshot is a point-in-time copy of an event's counters for the write side.
type EventSnapshot struct {
	ID         uuid.UUID
	Name       string
	Date       time.Time
	Venue      string
	PriceCents int64
	Total      int
	Reserved   int
	Available  int
}

type UserCredentials struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
