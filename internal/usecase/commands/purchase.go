package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ticketqueen/internal/domain/event"
	"ticketqueen/internal/domain/purchase"
	"ticketqueen/internal/domain/ticket"
	"ticketqueen/internal/infra"
	"ticketqueen/internal/pkg/clock"
	"ticketqueen/internal/pkg/config"
	"ticketqueen/internal/pkg/errs"
	"ticketqueen/internal/usecase/lockset"
	"ticketqueen/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMalformedRequest  = errs.New("malformed purchase request")
	ErrRequestIDConflict = errs.New("request id already used for a different purchase")
	ErrLockTimeout       = errs.New("timed out waiting for event locks")
	ErrEventQuarantined  = errs.New("event quarantined pending ticket recovery")
	ErrFatal             = errs.New("purchase committed but tickets could not be issued")

	errAlreadyCommitted = errs.New("request committed concurrently")
)

// QuarantinedError names the events that blocked a purchase.
type QuarantinedError struct {
	EventIDs []uuid.UUID
}

func (e *QuarantinedError) Error() string {
	return fmt.Sprintf("%d event(s) quarantined", len(e.EventIDs))
}

type SubmitPurchaseInput struct {
	RequestID uuid.UUID
	BuyerID   uuid.UUID
	Items     []purchase.LineItem
}

type PurchaseCommands interface {
	// SubmitPurchase returns a committed or rejected outcome. Rejection is not an error.
	SubmitPurchase(ctx context.Context, in SubmitPurchaseInput) (*purchase.Outcome, error)
}

type PurchaseOptions struct {
	LockWaitTimeout  time.Duration
	MintMaxAttempts  int
	MintRetryBackoff time.Duration
	MaxLineItems     int
}

func NewPurchaseOptions(cfg config.Config) PurchaseOptions {
	return PurchaseOptions{
		LockWaitTimeout:  cfg.Purchase.LockWaitTimeout,
		MintMaxAttempts:  max(cfg.Purchase.MintMaxAttempts, 1),
		MintRetryBackoff: cfg.Purchase.MintRetryBackoff,
		MaxLineItems:     cfg.Purchase.MaxLineItems,
	}
}

type reservationCoordinator struct {
	uow        shared.UnitOfWork
	catalog    *EventCatalog
	issuer     *TicketIssuer
	locks      *lockset.Manager
	quarantine *Quarantine
	clock      clock.Clock
	opts       PurchaseOptions
	logger     *slog.Logger
}

func NewReservationCoordinator(
	uow shared.UnitOfWork,
	catalog *EventCatalog,
	issuer *TicketIssuer,
	locks *lockset.Manager,
	quarantine *Quarantine,
	clk clock.Clock,
	opts PurchaseOptions,
	logger *slog.Logger,
) PurchaseCommands {
	return &reservationCoordinator{
		uow:        uow,
		catalog:    catalog,
		issuer:     issuer,
		locks:      locks,
		quarantine: quarantine,
		clock:      clk,
		opts:       opts,
		logger:     logger,
	}
}

func (c *reservationCoordinator) SubmitPurchase(ctx context.Context, in SubmitPurchaseInput) (*purchase.Outcome, error) {
	at := c.begin(in.RequestID)
	at.advance(purchase.StateValidating)

	req, err := purchase.NewRequest(in.RequestID, in.BuyerID, in.Items, c.opts.MaxLineItems)
	if err != nil {
		at.advance(purchase.StateRolledBack)
		return nil, errs.Mark(err, ErrMalformedRequest)
	}

	if out, err := c.replay(ctx, req, at); out != nil || err != nil {
		return out, err
	}

	if blocked := c.quarantine.Blocked(req.EventIDs()); len(blocked) > 0 {
		at.advance(purchase.StateRolledBack)
		return nil, errs.Mark(&QuarantinedError{EventIDs: blocked}, ErrEventQuarantined)
	}

	lockCtx, cancel := context.WithTimeout(ctx, c.opts.LockWaitTimeout)
	release, err := c.locks.Acquire(lockCtx, req.EventIDs())
	cancel()
	if err != nil {
		at.advance(purchase.StateRolledBack)
		return nil, errs.Mark(err, ErrLockTimeout)
	}
	defer release()

	// An identical retry may have committed while this attempt waited for the locks.
	if out, err := c.replay(ctx, req, at); out != nil || err != nil {
		return out, err
	}

	entry, rejections, err := c.reserve(ctx, req)
	if err != nil {
		if errs.Is(err, errAlreadyCommitted) {
			if out, rerr := c.replay(ctx, req, at); out != nil || rerr != nil {
				return out, rerr
			}
		}
		at.advance(purchase.StateRolledBack)
		return nil, err
	}

	if !entry.IsCommitted() {
		at.advance(purchase.StateRolledBack)
		c.logger.Info("purchase rejected",
			slog.String("request_id", req.ID().String()),
			slog.Int64("ledger_seq", entry.Seq),
			slog.Int("rejected_lines", len(rejections)),
		)
		return purchase.Rejected(req.ID(), rejections), nil
	}

	at.advance(purchase.StateCommitting)
	tickets, err := c.mint(context.WithoutCancel(ctx), entry)
	if err != nil {
		return nil, c.fail(entry, err)
	}
	at.advance(purchase.StateCommitted)

	c.logger.Info("purchase committed",
		slog.String("request_id", req.ID().String()),
		slog.String("buyer_id", req.BuyerID().String()),
		slog.Int64("ledger_seq", entry.Seq),
		slog.Int("tickets", len(tickets)),
	)
	return purchase.Committed(req.ID(), ticketIDs(tickets), false), nil
}

// replay answers a request id that already has a committed entry, finishing any
// unfinished minting. It returns (nil, nil) when there is nothing to replay.
func (c *reservationCoordinator) replay(ctx context.Context, req *purchase.Request, at *attempt) (*purchase.Outcome, error) {
	entry, err := c.uow.CommandReads().CommittedEntry(ctx, req.ID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		at.advance(purchase.StateRolledBack)
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if entry.RequestHash != req.Fingerprint() {
		at.advance(purchase.StateRolledBack)
		return nil, ErrRequestIDConflict
	}

	at.advance(purchase.StateCommitting)
	tickets, err := c.mint(context.WithoutCancel(ctx), entry)
	if err != nil {
		return nil, c.fail(entry, err)
	}
	c.quarantine.Lift(entry.RequestID)
	at.advance(purchase.StateCommitted)
	return purchase.Committed(req.ID(), ticketIDs(tickets), true), nil
}

func (c *reservationCoordinator) reserve(ctx context.Context, req *purchase.Request) (*purchase.LedgerEntry, []purchase.Rejection, error) {
	var entry *purchase.LedgerEntry
	var rejections []purchase.Rejection

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sess, err := c.catalog.Lock(ctx, tx, req.EventIDs())
		if err != nil {
			return err
		}
		lines, rej, err := reserveLines(ctx, sess, req)
		if err != nil {
			return err
		}

		outcome := purchase.StatusCommitted
		if len(rej) > 0 {
			outcome = purchase.StatusRejected
		}
		e, err := purchase.NewLedgerEntry(req, outcome, lines, c.clock.Now())
		if err != nil {
			return err
		}
		seq, err := tx.Ledger().Append(ctx, e)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errAlreadyCommitted)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		e.Seq = seq
		entry, rejections = e, rej
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return entry, rejections, nil
}

// reserveLines reserves in request order. On the first shortfall it releases what it
// took and judges the remaining lines without reserving, so every failing line is reported.
func reserveLines(ctx context.Context, sess *CatalogSession, req *purchase.Request) ([]purchase.LineResult, []purchase.Rejection, error) {
	items := req.Items()
	lines := make([]purchase.LineResult, 0, len(items))
	taken := make([]purchase.LineItem, 0, len(items))
	var rejections []purchase.Rejection

	for _, it := range items {
		line := purchase.LineResult{EventID: it.EventID, Requested: it.Quantity, Available: sess.Available(it.EventID)}

		if len(rejections) > 0 {
			if it.Quantity > line.Available {
				rejections = append(rejections, purchase.Rejection{EventID: it.EventID, Requested: it.Quantity, Available: line.Available})
			}
			lines = append(lines, line)
			continue
		}

		if _, err := sess.TryReserve(ctx, it.EventID, it.Quantity); err != nil {
			var insufficient *event.InsufficientAvailabilityError
			if !errs.As(err, &insufficient) {
				return nil, nil, err
			}
			rejections = append(rejections, purchase.Rejection{EventID: it.EventID, Requested: it.Quantity, Available: insufficient.Available})
			for i := len(taken) - 1; i >= 0; i-- {
				if err := sess.Release(ctx, taken[i].EventID, taken[i].Quantity); err != nil {
					return nil, nil, err
				}
			}
			taken = taken[:0]
			lines = append(lines, line)
			continue
		}

		line.Accepted = true
		taken = append(taken, it)
		lines = append(lines, line)
	}

	if len(rejections) > 0 {
		for i := range lines {
			lines[i].Accepted = false
		}
	}
	return lines, rejections, nil
}

func (c *reservationCoordinator) mint(ctx context.Context, entry *purchase.LedgerEntry) ([]*ticket.Ticket, error) {
	var lastErr error
	for n := 1; n <= c.opts.MintMaxAttempts; n++ {
		tickets, err := c.issuer.IssueEntry(ctx, entry)
		if err == nil {
			return tickets, nil
		}
		lastErr = err
		c.logger.Warn("ticket issuance attempt failed",
			slog.String("request_id", entry.RequestID.String()),
			slog.Int("attempt", n),
			slog.String("error", err.Error()),
		)
		if n < c.opts.MintMaxAttempts {
			_ = waitBackoff(ctx, c.opts.MintRetryBackoff*time.Duration(1<<(n-1)))
		}
	}
	return nil, lastErr
}

// fail quarantines the events of a committed entry whose tickets could not be minted.
func (c *reservationCoordinator) fail(entry *purchase.LedgerEntry, cause error) error {
	c.quarantine.Add(entry.RequestID, entry.EventIDs())
	c.logger.Error("tickets missing for committed purchase, events quarantined",
		slog.String("request_id", entry.RequestID.String()),
		slog.Int64("ledger_seq", entry.Seq),
		slog.Any("event_ids", entry.EventIDs()),
		slog.Any("stack", errs.ExtractStackLines(cause, 12)),
	)
	return errs.Mark(cause, ErrFatal)
}

type attempt struct {
	requestID uuid.UUID
	state     purchase.State
	logger    *slog.Logger
}

func (c *reservationCoordinator) begin(requestID uuid.UUID) *attempt {
	at := &attempt{requestID: requestID, state: purchase.StateReceived, logger: c.logger}
	at.logger.Debug("purchase state", slog.String("request_id", requestID.String()), slog.String("state", string(at.state)))
	return at
}

func (a *attempt) advance(next purchase.State) {
	prev := a.state
	s, err := a.state.TransitionTo(next)
	if err != nil {
		a.logger.Error("invalid purchase state transition",
			slog.String("request_id", a.requestID.String()),
			slog.String("from", string(prev)),
			slog.String("to", string(next)),
		)
		return
	}
	a.state = s
	a.logger.Debug("purchase state",
		slog.String("request_id", a.requestID.String()),
		slog.String("from", string(prev)),
		slog.String("state", string(s)),
	)
}
