//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"ticketqueen/internal/domain/purchase"
	"ticketqueen/internal/pkg/errs"
	"ticketqueen/internal/usecase/commands"
	"ticketqueen/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submit(buyerID uuid.UUID, items ...purchase.LineItem) commands.SubmitPurchaseInput {
	return commands.SubmitPurchaseInput{RequestID: uuid.New(), BuyerID: buyerID, Items: items}
}

func line(eventID uuid.UUID, qty int) purchase.LineItem {
	return purchase.LineItem{EventID: eventID, Quantity: qty}
}

func TestSubmitPurchase_Commit(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	a := h.createEvent(t, 10)
	b := h.createEvent(t, 3)

	out, err := h.purchases.SubmitPurchase(ctx, submit(uuid.New(), line(a, 2), line(b, 3)))

	require.NoError(t, err)
	require.True(t, out.IsCommitted())
	assert.Len(t, out.TicketIDs, 5)
	assert.False(t, out.Replayed)
	assert.Equal(t, 8, h.available(t, a))
	assert.Equal(t, 0, h.available(t, b))
}

func TestSubmitPurchase_NoOversell(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	const total = 25
	eventID := h.createEvent(t, total)

	var mu sync.Mutex
	committedUnits, rejectedCount := 0, 0
	var wg sync.WaitGroup
	for i := 0; i < 60; i++ {
		wg.Add(1)
		go func(qty int) {
			defer wg.Done()
			out, err := h.purchases.SubmitPurchase(ctx, submit(uuid.New(), line(eventID, qty)))
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if out.IsCommitted() {
				committedUnits += len(out.TicketIDs)
				assert.Len(t, out.TicketIDs, qty)
				return
			}
			rejectedCount++
			require.Len(t, out.Rejections, 1)
			assert.Less(t, out.Rejections[0].Available, qty)
		}(1 + i%3)
	}
	wg.Wait()

	assert.LessOrEqual(t, committedUnits, total)
	assert.Equal(t, committedUnits, h.reserved(t, eventID))
	assert.Equal(t, total-committedUnits, h.available(t, eventID))
	assert.Positive(t, rejectedCount)
}

func TestSubmitPurchase_OverlappingEventSets(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	a, b, c := h.createEvent(t, 40), h.createEvent(t, 40), h.createEvent(t, 40)
	orders := [][]purchase.LineItem{
		{line(a, 1), line(b, 1)},
		{line(b, 1), line(a, 1)},
		{line(c, 1), line(a, 1), line(b, 1)},
		{line(b, 2), line(c, 1)},
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		var wg sync.WaitGroup
		for i := 0; i < 40; i++ {
			wg.Add(1)
			go func(items []purchase.LineItem) {
				defer wg.Done()
				_, err := h.purchases.SubmitPurchase(ctx, submit(uuid.New(), items...))
				assert.NoError(t, err)
			}(orders[i%len(orders)])
		}
		wg.Wait()
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("purchases with overlapping event sets did not finish")
	}

	for _, id := range []uuid.UUID{a, b, c} {
		assert.GreaterOrEqual(t, h.available(t, id), 0)
	}
	assert.Zero(t, h.locks.Len())
}

func TestSubmitPurchase_Atomicity(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	a := h.createEvent(t, 5)
	b := h.createEvent(t, 1)
	c := h.createEvent(t, 0)

	out, err := h.purchases.SubmitPurchase(ctx, submit(uuid.New(), line(a, 2), line(b, 2), line(c, 1)))

	require.NoError(t, err)
	require.False(t, out.IsCommitted())
	want := []purchase.Rejection{
		{EventID: b, Requested: 2, Available: 1},
		{EventID: c, Requested: 1, Available: 0},
	}
	if diff := cmp.Diff(want, out.Rejections); diff != "" {
		t.Errorf("rejections mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, out.TicketIDs)
	assert.Equal(t, 5, h.available(t, a))
	assert.Equal(t, 1, h.available(t, b))
}

func TestSubmitPurchase_DuplicateLinesMerged(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	a := h.createEvent(t, 2)

	out, err := h.purchases.SubmitPurchase(ctx, submit(uuid.New(), line(a, 1), line(a, 2)))

	require.NoError(t, err)
	require.False(t, out.IsCommitted())
	assert.Equal(t, []purchase.Rejection{{EventID: a, Requested: 3, Available: 2}}, out.Rejections)

	out, err = h.purchases.SubmitPurchase(ctx, submit(uuid.New(), line(a, 1), line(a, 1)))

	require.NoError(t, err)
	require.True(t, out.IsCommitted())
	assert.Len(t, out.TicketIDs, 2)
	assert.Equal(t, 0, h.available(t, a))
}

func TestSubmitPurchase_IdempotentRetry(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	a := h.createEvent(t, 10)
	in := submit(uuid.New(), line(a, 3))

	first, err := h.purchases.SubmitPurchase(ctx, in)
	require.NoError(t, err)
	second, err := h.purchases.SubmitPurchase(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, first.TicketIDs, second.TicketIDs)
	assert.True(t, second.Replayed)
	assert.Equal(t, 7, h.available(t, a))

	t.Run("reordered lines are the same purchase", func(t *testing.T) {
		b := h.createEvent(t, 10)
		in := submit(uuid.New(), line(a, 1), line(b, 2))
		first, err := h.purchases.SubmitPurchase(ctx, in)
		require.NoError(t, err)

		in.Items = []purchase.LineItem{line(b, 1), line(a, 1), line(b, 1)}
		again, err := h.purchases.SubmitPurchase(ctx, in)
		require.NoError(t, err)
		assert.ElementsMatch(t, first.TicketIDs, again.TicketIDs)
	})
}

func TestSubmitPurchase_ConcurrentIdenticalRetries(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	a := h.createEvent(t, 10)
	in := submit(uuid.New(), line(a, 4))

	results := make([][]uuid.UUID, 12)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := h.purchases.SubmitPurchase(ctx, in)
			if assert.NoError(t, err) && assert.True(t, out.IsCommitted()) {
				results[i] = out.TicketIDs
			}
		}(i)
	}
	wg.Wait()

	for _, ids := range results[1:] {
		assert.Equal(t, results[0], ids)
	}
	assert.Equal(t, 6, h.available(t, a))
}

func TestSubmitPurchase_RejectedRequestCanBeRetried(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	a := h.createEvent(t, 1)
	in := submit(uuid.New(), line(a, 2))

	out, err := h.purchases.SubmitPurchase(ctx, in)
	require.NoError(t, err)
	require.False(t, out.IsCommitted())

	in.Items = []purchase.LineItem{line(a, 1)}
	out, err = h.purchases.SubmitPurchase(ctx, in)
	require.NoError(t, err)
	assert.True(t, out.IsCommitted())
	assert.Equal(t, 0, h.available(t, a))
}

func TestSubmitPurchase_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed requests touch nothing", func(t *testing.T) {
		h := newHarness(t)
		a := h.createEvent(t, 5)
		cases := map[string]commands.SubmitPurchaseInput{
			"no items":                 {RequestID: uuid.New(), BuyerID: uuid.New()},
			"zero quantity":            submit(uuid.New(), line(a, 0)),
			"negative quantity":        submit(uuid.New(), line(a, 2), line(a, -1)),
			"missing buyer":            {RequestID: uuid.New(), Items: []purchase.LineItem{line(a, 1)}},
			"missing request":          {BuyerID: uuid.New(), Items: []purchase.LineItem{line(a, 1)}},
			"duplicate lines overflow": submit(uuid.New(), line(a, purchase.MaxQuantity), line(a, 1)),
			"quantity above int4":      submit(uuid.New(), line(a, purchase.MaxQuantity+1)),
		}
		for name, in := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := h.purchases.SubmitPurchase(ctx, in)
				assert.True(t, errs.Is(err, commands.ErrMalformedRequest), "got %v", err)
			})
		}
		assert.Equal(t, 5, h.available(t, a))
	})

	t.Run("unknown event", func(t *testing.T) {
		h := newHarness(t)
		a := h.createEvent(t, 5)

		_, err := h.purchases.SubmitPurchase(ctx, submit(uuid.New(), line(a, 1), line(uuid.New(), 1)))

		assert.True(t, errs.Is(err, commands.ErrEventNotFound), "got %v", err)
		assert.Equal(t, 5, h.available(t, a))
	})

	t.Run("request id reused with different content", func(t *testing.T) {
		h := newHarness(t)
		a := h.createEvent(t, 5)
		in := submit(uuid.New(), line(a, 1))
		_, err := h.purchases.SubmitPurchase(ctx, in)
		require.NoError(t, err)

		in.Items = []purchase.LineItem{line(a, 2)}
		_, err = h.purchases.SubmitPurchase(ctx, in)

		assert.True(t, errs.Is(err, commands.ErrRequestIDConflict), "got %v", err)
		assert.Equal(t, 4, h.available(t, a))
	})

	t.Run("lock wait timeout leaves state untouched", func(t *testing.T) {
		h := newHarness(t, withPurchaseOptions(func(o *commands.PurchaseOptions) {
			o.LockWaitTimeout = 20 * time.Millisecond
		}))
		a := h.createEvent(t, 5)
		release, err := h.locks.Acquire(ctx, []uuid.UUID{a})
		require.NoError(t, err)
		defer release()

		_, err = h.purchases.SubmitPurchase(ctx, submit(uuid.New(), line(a, 1)))

		assert.True(t, errs.Is(err, commands.ErrLockTimeout), "got %v", err)
		assert.Equal(t, 5, h.available(t, a))
	})

	t.Run("caller gone before commit", func(t *testing.T) {
		h := newHarness(t)
		a := h.createEvent(t, 5)
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := h.purchases.SubmitPurchase(canceled, submit(uuid.New(), line(a, 1)))

		assert.Error(t, err)
		assert.Equal(t, 5, h.available(t, a))
	})
}

func TestSubmitPurchase_MintFailureQuarantinesUntilReplay(t *testing.T) {
	faulty := &faultyUoW{}
	h := newHarness(t, withUoW(func(u shared.UnitOfWork) shared.UnitOfWork {
		faulty.UnitOfWork = u
		return faulty
	}))
	ctx := context.Background()
	a := h.createEvent(t, 10)
	b := h.createEvent(t, 10)
	in := submit(uuid.New(), line(a, 2))

	faulty.broken.Store(true)
	_, err := h.purchases.SubmitPurchase(ctx, in)

	require.True(t, errs.Is(err, commands.ErrFatal), "got %v", err)
	assert.Equal(t, int32(3), faulty.calls.Load())
	// The reservation is durable even though tickets are missing.
	assert.Equal(t, 8, h.available(t, a))

	_, err = h.purchases.SubmitPurchase(ctx, submit(uuid.New(), line(a, 1)))
	var quarantined *commands.QuarantinedError
	require.True(t, errs.Is(err, commands.ErrEventQuarantined), "got %v", err)
	require.True(t, errs.As(err, &quarantined))
	assert.Equal(t, []uuid.UUID{a}, quarantined.EventIDs)

	faulty.broken.Store(false)
	_, err = h.purchases.SubmitPurchase(ctx, submit(uuid.New(), line(a, 1)))
	require.True(t, errs.Is(err, commands.ErrEventQuarantined), "quarantine outlives the fault")

	out, err := h.purchases.SubmitPurchase(ctx, submit(uuid.New(), line(b, 1)))
	require.NoError(t, err, "unrelated events keep selling")
	assert.True(t, out.IsCommitted())

	out, err = h.purchases.SubmitPurchase(ctx, in)
	require.NoError(t, err)
	assert.True(t, out.Replayed)
	assert.Len(t, out.TicketIDs, 2)
	assert.Equal(t, 8, h.available(t, a))

	out, err = h.purchases.SubmitPurchase(ctx, submit(uuid.New(), line(a, 1)))
	require.NoError(t, err)
	assert.True(t, out.IsCommitted())
}
