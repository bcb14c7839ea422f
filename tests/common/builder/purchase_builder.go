//go:build unit || e2e

package builder

import (
	"ticketqueen/internal/domain/purchase"
	reqdto "ticketqueen/internal/handler/dto/request"
	"ticketqueen/internal/usecase/commands"

	"github.com/google/uuid"
)

type PurchaseBuilder struct {
	RequestID uuid.UUID
	BuyerID   uuid.UUID
	Items     []purchase.LineItem
}

func NewPurchaseBuilder() *PurchaseBuilder {
	return &PurchaseBuilder{
		RequestID: uuid.New(),
		BuyerID:   uuid.New(),
		Items:     []purchase.LineItem{{EventID: uuid.New(), Quantity: 2}},
	}
}

func (p *PurchaseBuilder) With(mutate func(*PurchaseBuilder)) *PurchaseBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *PurchaseBuilder) BuildInput() commands.SubmitPurchaseInput {
	items := make([]purchase.LineItem, len(p.Items))
	copy(items, p.Items)
	return commands.SubmitPurchaseInput{
		RequestID: p.RequestID,
		BuyerID:   p.BuyerID,
		Items:     items,
	}
}

func (p *PurchaseBuilder) BuildRequestDTO() reqdto.PurchaseRequest {
	items := make([]reqdto.PurchaseLineItem, len(p.Items))
	for i, it := range p.Items {
		items[i] = reqdto.PurchaseLineItem{EventID: it.EventID, Quantity: it.Quantity}
	}
	return reqdto.PurchaseRequest{
		RequestID: p.RequestID,
		BuyerID:   p.BuyerID,
		Items:     items,
	}
}

func (p *PurchaseBuilder) BuildDomain(maxLines int) (*purchase.Request, error) {
	return purchase.NewRequest(p.RequestID, p.BuyerID, p.Items, maxLines)
}

// Fluent builder methods
func (p *PurchaseBuilder) WithRequestID(id uuid.UUID) *PurchaseBuilder {
	p.RequestID = id
	return p
}

func (p *PurchaseBuilder) WithBuyerID(id uuid.UUID) *PurchaseBuilder {
	p.BuyerID = id
	return p
}

func (p *PurchaseBuilder) WithItems(items ...purchase.LineItem) *PurchaseBuilder {
	p.Items = items
	return p
}
