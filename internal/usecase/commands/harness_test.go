//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"ticketqueen/internal/domain/ticket"
	"ticketqueen/internal/infra/memstore"
	"ticketqueen/internal/pkg/clock"
	"ticketqueen/internal/pkg/password"
	"ticketqueen/internal/usecase/commands"
	"ticketqueen/internal/usecase/lockset"
	"ticketqueen/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

type harness struct {
	store      *memstore.Store
	uow        shared.UnitOfWork
	clock      *clock.MockClock
	catalog    *commands.EventCatalog
	issuer     *commands.TicketIssuer
	locks      *lockset.Manager
	quarantine *commands.Quarantine
	purchases  commands.PurchaseCommands
	recovery   commands.RecoveryCommands
	auth       commands.AuthCommands
}

type harnessOption func(*harnessConfig)

type harnessConfig struct {
	opts commands.PurchaseOptions
	wrap func(shared.UnitOfWork) shared.UnitOfWork
}

func withPurchaseOptions(mutate func(*commands.PurchaseOptions)) harnessOption {
	return func(c *harnessConfig) { mutate(&c.opts) }
}

func withUoW(wrap func(shared.UnitOfWork) shared.UnitOfWork) harnessOption {
	return func(c *harnessConfig) { c.wrap = wrap }
}

func newHarness(t *testing.T, options ...harnessOption) *harness {
	t.Helper()

	cfg := harnessConfig{
		opts: commands.PurchaseOptions{
			LockWaitTimeout:  2 * time.Second,
			MintMaxAttempts:  3,
			MintRetryBackoff: time.Millisecond,
			MaxLineItems:     50,
		},
		wrap: func(u shared.UnitOfWork) shared.UnitOfWork { return u },
	}
	for _, o := range options {
		o(&cfg)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memstore.New()
	uow := cfg.wrap(store)
	clk := clock.NewTickingMockClock(baseTime, time.Millisecond)
	locks := lockset.New()
	quarantine := commands.NewQuarantine()
	catalog := commands.NewEventCatalog(uow, clk)
	issuer := commands.NewTicketIssuer(uow, clk, logger)

	return &harness{
		store:      store,
		uow:        uow,
		clock:      clk,
		catalog:    catalog,
		issuer:     issuer,
		locks:      locks,
		quarantine: quarantine,
		purchases:  commands.NewReservationCoordinator(uow, catalog, issuer, locks, quarantine, clk, cfg.opts, logger),
		recovery:   commands.NewRecoveryCommands(uow, issuer, locks, quarantine, clk, logger),
		auth:       commands.NewAuthCommands(uow, password.NewHasher(4), clk),
	}
}

func (h *harness) createEvent(t *testing.T, total int) uuid.UUID {
	t.Helper()
	snap, err := h.catalog.CreateEvent(context.Background(), commands.CreateEventInput{
		Name:       "Spring Concert",
		Date:       baseTime.AddDate(0, 1, 0),
		Venue:      "Main Hall",
		PriceCents: 4500,
		Total:      total,
	})
	require.NoError(t, err)
	return snap.ID
}

func (h *harness) available(t *testing.T, id uuid.UUID) int {
	t.Helper()
	snap, err := h.catalog.Get(context.Background(), id)
	require.NoError(t, err)
	return snap.Available
}

func (h *harness) reserved(t *testing.T, id uuid.UUID) int {
	t.Helper()
	snap, err := h.catalog.Get(context.Background(), id)
	require.NoError(t, err)
	return snap.Reserved
}

// faultyUoW fails ticket inserts while broken is set.
type faultyUoW struct {
	shared.UnitOfWork
	broken atomic.Bool
	calls  atomic.Int32
}

func (f *faultyUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return f.UnitOfWork.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, &faultyTx{Tx: tx, f: f})
	})
}

type faultyTx struct {
	shared.Tx
	f *faultyUoW
}

func (t *faultyTx) Tickets() shared.TicketRepository {
	return &faultyTickets{TicketRepository: t.Tx.Tickets(), f: t.f}
}

type faultyTickets struct {
	shared.TicketRepository
	f *faultyUoW
}

func (r *faultyTickets) InsertIfAbsent(ctx context.Context, tk *ticket.Ticket) error {
	if r.f.broken.Load() {
		r.f.calls.Add(1)
		return errors.New("ticket table unavailable")
	}
	return r.TicketRepository.InsertIfAbsent(ctx, tk)
}
