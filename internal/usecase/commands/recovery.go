package commands

import (
	"context"
	"log/slog"

	"ticketqueen/internal/domain/purchase"
	"ticketqueen/internal/pkg/clock"
	"ticketqueen/internal/pkg/errs"
	"ticketqueen/internal/usecase/lockset"
	"ticketqueen/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRecoveryFailed = errs.New("inventory recovery failed")

// Drift is a counter that disagreed with the ledger and was rewritten.
type Drift struct {
	EventID uuid.UUID
	Stored  int
	Derived int
}

type RecoveryReport struct {
	EventsChecked    int
	Corrected        []Drift
	ReplayedRequests int
	PendingRequests  int
	CheckpointSeq    int64
}

type RecoveryCommands interface {
	// Recover rebuilds reserved counters from the ledger, replays missing tickets and checkpoints.
	Recover(ctx context.Context) (*RecoveryReport, error)
	// ReplayPendingIssuance mints tickets owed by committed entries and lifts their quarantine.
	ReplayPendingIssuance(ctx context.Context) (replayed, pending int, err error)
}

type recoveryCommandsImpl struct {
	uow        shared.UnitOfWork
	issuer     *TicketIssuer
	locks      *lockset.Manager
	quarantine *Quarantine
	clock      clock.Clock
	logger     *slog.Logger
}

func NewRecoveryCommands(uow shared.UnitOfWork, issuer *TicketIssuer, locks *lockset.Manager, quarantine *Quarantine, clk clock.Clock, logger *slog.Logger) RecoveryCommands {
	return &recoveryCommandsImpl{
		uow:        uow,
		issuer:     issuer,
		locks:      locks,
		quarantine: quarantine,
		clock:      clk,
		logger:     logger,
	}
}

func (r *recoveryCommandsImpl) Recover(ctx context.Context) (*RecoveryReport, error) {
	report := &RecoveryReport{}

	ids, err := r.eventIDs(ctx)
	if err != nil {
		return nil, err
	}
	release, err := r.locks.Acquire(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrRecoveryFailed)
	}
	defer release()

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		report.Corrected = report.Corrected[:0]
		events, err := tx.Events().LockForUpdate(ctx, ids)
		if err != nil {
			return err
		}
		checkpoints, err := tx.Ledger().Checkpoints(ctx)
		if err != nil {
			return err
		}
		lines, err := tx.Ledger().CommittedLinesAfter(ctx, purchase.MinSeq(ids, checkpoints))
		if err != nil {
			return err
		}
		latest, err := tx.Ledger().LatestSeq(ctx)
		if err != nil {
			return err
		}

		derived := purchase.ReplayReserved(ids, checkpoints, lines)
		now := r.clock.Now()
		for _, id := range ids {
			ev := events[id]
			want := derived[id]
			if ev.Reserved() != want {
				report.Corrected = append(report.Corrected, Drift{EventID: id, Stored: ev.Reserved(), Derived: want})
				if err := ev.Restate(want, now); err != nil {
					return err
				}
				if err := tx.Events().UpdateReserved(ctx, ev); err != nil {
					return err
				}
			}
			cp := purchase.Checkpoint{EventID: id, Reserved: want, LedgerSeq: latest, CreatedAt: now}
			if err := tx.Ledger().SaveCheckpoint(ctx, cp); err != nil {
				return err
			}
		}
		report.EventsChecked = len(ids)
		report.CheckpointSeq = latest
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrRecoveryFailed)
	}

	for _, d := range report.Corrected {
		r.logger.Warn("reserved counter drifted from ledger, corrected",
			slog.String("event_id", d.EventID.String()),
			slog.Int("stored", d.Stored),
			slog.Int("derived", d.Derived),
		)
	}

	report.ReplayedRequests, report.PendingRequests, err = r.ReplayPendingIssuance(ctx)
	if err != nil {
		return nil, err
	}

	r.logger.Info("inventory recovery finished",
		slog.Int("events", report.EventsChecked),
		slog.Int("corrected", len(report.Corrected)),
		slog.Int("replayed_requests", report.ReplayedRequests),
		slog.Int("pending_requests", report.PendingRequests),
		slog.Int64("checkpoint_seq", report.CheckpointSeq),
	)
	return report, nil
}

func (r *recoveryCommandsImpl) ReplayPendingIssuance(ctx context.Context) (int, int, error) {
	// Taken before reading the ledger so a request quarantined meanwhile is not lifted unseen.
	quarantined := r.quarantine.Requests()

	var pending []*purchase.LedgerEntry
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		pending, err = tx.Ledger().PendingIssuance(ctx)
		return err
	})
	if err != nil {
		return 0, 0, errs.Mark(err, ErrRecoveryFailed)
	}

	owed := make(map[uuid.UUID]bool, len(pending))
	for _, entry := range pending {
		owed[entry.RequestID] = true
	}
	// Requests finished elsewhere, e.g. by a client retry, no longer block their events.
	for _, id := range quarantined {
		if !owed[id] {
			r.quarantine.Lift(id)
		}
	}

	replayed := 0
	for _, entry := range pending {
		if _, err := r.issuer.IssueEntry(ctx, entry); err != nil {
			r.quarantine.Add(entry.RequestID, entry.EventIDs())
			r.logger.Error("ticket replay failed",
				slog.String("request_id", entry.RequestID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		r.quarantine.Lift(entry.RequestID)
		replayed++
	}
	return replayed, len(pending) - replayed, nil
}

func (r *recoveryCommandsImpl) eventIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ids, err = tx.Events().ListIDs(ctx)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, ErrRecoveryFailed)
	}
	return ids, nil
}
