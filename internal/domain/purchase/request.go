package purchase

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"math"
	"slices"
	"strconv"

	"ticketqueen/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingRequestID = errs.New("request id is required")
	ErrMissingBuyerID   = errs.New("buyer id is required")
	ErrMissingEventID   = errs.New("line item event id is required")
	ErrNoLineItems      = errs.New("purchase request has no line items")
	ErrInvalidQuantity  = errs.New("line item quantity must be positive")
	ErrTooManyLineItems = errs.New("purchase request has too many line items")
	ErrQuantityTooLarge = errs.New("line item quantity is too large")
)

// MaxQuantity is the largest merged quantity one event may carry; ledger quantities are int4.
const MaxQuantity = math.MaxInt32

type LineItem struct {
	EventID  uuid.UUID
	Quantity int
}

// Request is a validated purchase: line items keep first-seen order and each event appears once.
type Request struct {
	id      uuid.UUID
	buyerID uuid.UUID
	items   []LineItem
}

// NewRequest validates raw line items and sums duplicates of the same event.
// maxLines <= 0 disables the line limit; it applies to the raw input.
func NewRequest(requestID, buyerID uuid.UUID, items []LineItem, maxLines int) (*Request, error) {
	if requestID == uuid.Nil {
		return nil, ErrMissingRequestID
	}
	if buyerID == uuid.Nil {
		return nil, ErrMissingBuyerID
	}
	if len(items) == 0 {
		return nil, ErrNoLineItems
	}
	if maxLines > 0 && len(items) > maxLines {
		return nil, ErrTooManyLineItems
	}

	merged := make([]LineItem, 0, len(items))
	index := make(map[uuid.UUID]int, len(items))
	for _, it := range items {
		if it.EventID == uuid.Nil {
			return nil, ErrMissingEventID
		}
		if it.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if it.Quantity > MaxQuantity {
			return nil, ErrQuantityTooLarge
		}
		if i, ok := index[it.EventID]; ok {
			if merged[i].Quantity > MaxQuantity-it.Quantity {
				return nil, ErrQuantityTooLarge
			}
			merged[i].Quantity += it.Quantity
			continue
		}
		index[it.EventID] = len(merged)
		merged = append(merged, it)
	}

	return &Request{id: requestID, buyerID: buyerID, items: merged}, nil
}

func (r *Request) ID() uuid.UUID      { return r.id }
func (r *Request) BuyerID() uuid.UUID { return r.buyerID }

func (r *Request) Items() []LineItem {
	return slices.Clone(r.items)
}

func (r *Request) TotalQuantity() int {
	n := 0
	for _, it := range r.items {
		n += it.Quantity
	}
	return n
}

// EventIDs returns the distinct event ids in lock order.
func (r *Request) EventIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.items))
	for _, it := range r.items {
		ids = append(ids, it.EventID)
	}
	SortIDs(ids)
	return ids
}

// Fingerprint identifies the merged content of the request independent of line order.
func (r *Request) Fingerprint() string {
	return Fingerprint(r.buyerID, r.items)
}

func Fingerprint(buyerID uuid.UUID, items []LineItem) string {
	sorted := slices.Clone(items)
	slices.SortFunc(sorted, func(a, b LineItem) int { return CompareIDs(a.EventID, b.EventID) })

	h := sha256.New()
	h.Write(buyerID[:])
	for _, it := range sorted {
		h.Write(it.EventID[:])
		h.Write([]byte(strconv.Itoa(it.Quantity)))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// CompareIDs orders ids by their bytes, which matches Postgres uuid ordering.
func CompareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

func SortIDs(ids []uuid.UUID) {
	slices.SortFunc(ids, CompareIDs)
}
