package commands

import (
	"context"
	"log/slog"
	"time"

	"ticketqueen/internal/domain/purchase"
	"ticketqueen/internal/domain/ticket"
	"ticketqueen/internal/infra"
	"ticketqueen/internal/pkg/clock"
	"ticketqueen/internal/pkg/errs"
	"ticketqueen/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTicketNotFound    = errs.New("ticket not found")
	ErrTicketForbidden   = errs.New("ticket belongs to another buyer")
	ErrTicketAlreadyUsed = errs.New("ticket already used")
	ErrIssuanceFailed    = errs.New("ticket issuance failed")
)

type TicketCommands interface {
	MarkUsed(ctx context.Context, ticketID, buyerID uuid.UUID) error
}

// TicketIssuer mints tickets for committed purchases and records their use.
type TicketIssuer struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewTicketIssuer(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) *TicketIssuer {
	return &TicketIssuer{uow: uow, clock: clk, logger: logger}
}

// Issue mints qty tickets for one line. Calling it again for the same request and
// event completes a partial mint and returns the same tickets.
func (i *TicketIssuer) Issue(ctx context.Context, buyerID, eventID uuid.UUID, qty int, requestID uuid.UUID) ([]*ticket.Ticket, error) {
	var out []*ticket.Ticket
	err := i.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		out, err = i.issueLine(ctx, tx, buyerID, eventID, qty, requestID)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, ErrIssuanceFailed)
	}
	return out, nil
}

// IssueEntry mints every line of a committed ledger entry in one transaction.
// Tickets come back in line order, then by sequence.
func (i *TicketIssuer) IssueEntry(ctx context.Context, entry *purchase.LedgerEntry) ([]*ticket.Ticket, error) {
	if !entry.IsCommitted() {
		return nil, errs.Wrapf(ErrIssuanceFailed, "entry %d is not committed", entry.Seq)
	}
	var out []*ticket.Ticket
	err := i.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out = out[:0]
		for _, line := range entry.Lines {
			minted, err := i.issueLine(ctx, tx, entry.BuyerID, line.EventID, line.Requested, entry.RequestID)
			if err != nil {
				return err
			}
			out = append(out, minted...)
		}
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrIssuanceFailed)
	}
	return out, nil
}

func (i *TicketIssuer) issueLine(ctx context.Context, tx shared.Tx, buyerID, eventID uuid.UUID, qty int, requestID uuid.UUID) ([]*ticket.Ticket, error) {
	existing, err := tx.Tickets().ListByRequestAndEvent(ctx, requestID, eventID)
	if err != nil {
		return nil, err
	}
	if len(existing) >= qty {
		return existing[:qty], nil
	}

	have := make(map[int]bool, len(existing))
	for _, t := range existing {
		have[t.Seq()] = true
	}
	now := i.clock.Now()
	for seq := 0; seq < qty; seq++ {
		if have[seq] {
			continue
		}
		t, err := ticket.New(requestID, eventID, buyerID, seq, now)
		if err != nil {
			return nil, err
		}
		if err := tx.Tickets().InsertIfAbsent(ctx, t); err != nil {
			return nil, err
		}
	}

	minted, err := tx.Tickets().ListByRequestAndEvent(ctx, requestID, eventID)
	if err != nil {
		return nil, err
	}
	if len(minted) < qty {
		return nil, errs.Newf("minted %d of %d tickets for event %s", len(minted), qty, eventID)
	}
	return minted[:qty], nil
}

// MarkUsed flips a ticket to used for its owner. Racing callers see exactly one success.
func (i *TicketIssuer) MarkUsed(ctx context.Context, ticketID, buyerID uuid.UUID) error {
	err := i.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Tickets().GetForUpdate(ctx, ticketID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrTicketNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		now := i.clock.Now()
		if err := t.MarkUsed(buyerID, now); err != nil {
			switch {
			case errs.Is(err, ticket.ErrNotOwner):
				return errs.Mark(err, ErrTicketForbidden)
			case errs.Is(err, ticket.ErrAlreadyUsed):
				return errs.Mark(err, ErrTicketAlreadyUsed)
			default:
				return err
			}
		}

		flipped, err := tx.Tickets().MarkUsed(ctx, ticketID, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !flipped {
			return ErrTicketAlreadyUsed
		}
		return nil
	})
	if err != nil {
		return err
	}

	i.logger.Info("ticket marked used",
		slog.String("ticket_id", ticketID.String()),
		slog.String("buyer_id", buyerID.String()),
	)
	return nil
}

func ticketIDs(ts []*ticket.Ticket) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(ts))
	for _, t := range ts {
		ids = append(ids, t.ID())
	}
	return ids
}

func waitBackoff(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
