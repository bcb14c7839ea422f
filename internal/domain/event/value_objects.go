package event

import (
	"fmt"
	"strconv"
	"strings"

	"ticketqueen/internal/pkg/errs"
)

const (
	MaxNameLength  = 200
	MaxVenueLength = 200
)

var (
	ErrEmptyName     = errs.New("event name cannot be empty")
	ErrNameTooLong   = errs.New("event name is too long")
	ErrEmptyVenue    = errs.New("event venue cannot be empty")
	ErrVenueTooLong  = errs.New("event venue is too long")
	ErrNegativePrice = errs.New("event price cannot be negative")
	ErrInvalidPrice  = errs.New("event price must look like 12 or 12.50")
)

// Money is an amount in minor units (cents).
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

// ParseMoney reads a decimal amount with at most two fractional digits.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		return Money{}, ErrNegativePrice
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if !digits(whole) || (hasFrac && (!digits(frac) || len(frac) > 2)) {
		return Money{}, ErrInvalidPrice
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidPrice
	}
	var cents int64
	if hasFrac {
		if len(frac) == 1 {
			frac += "0"
		}
		cents, _ = strconv.ParseInt(frac, 10, 64)
	}
	return NewMoney(units*100 + cents)
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (m Money) Cents() int64 {
	return m.cents
}

// String renders the amount with two decimals, e.g. 1250 -> "12.50".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

func normalizeName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyName
	}
	if len(s) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return s, nil
}

func normalizeVenue(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyVenue
	}
	if len(s) > MaxVenueLength {
		return "", ErrVenueTooLong
	}
	return s, nil
}
