//go:build unit

package purchase_test

import (
	"math"
	"testing"
	"time"

	"ticketqueen/internal/domain/purchase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	reqID, buyerID := uuid.New(), uuid.New()
	a, b := uuid.New(), uuid.New()

	t.Run("duplicate events are merged in first-seen order", func(t *testing.T) {
		req, err := purchase.NewRequest(reqID, buyerID, []purchase.LineItem{
			{EventID: b, Quantity: 1},
			{EventID: a, Quantity: 2},
			{EventID: b, Quantity: 3},
		}, 0)
		require.NoError(t, err)

		want := []purchase.LineItem{{EventID: b, Quantity: 4}, {EventID: a, Quantity: 2}}
		if diff := cmp.Diff(want, req.Items()); diff != "" {
			t.Errorf("items mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 6, req.TotalQuantity())
		assert.Len(t, req.EventIDs(), 2)
	})

	t.Run("event ids come back in lock order", func(t *testing.T) {
		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
		items := make([]purchase.LineItem, 0, len(ids))
		for _, id := range ids {
			items = append(items, purchase.LineItem{EventID: id, Quantity: 1})
		}
		req, err := purchase.NewRequest(reqID, buyerID, items, 0)
		require.NoError(t, err)

		got := req.EventIDs()
		for i := 1; i < len(got); i++ {
			assert.Negative(t, purchase.CompareIDs(got[i-1], got[i]))
		}
	})

	t.Run("fingerprint ignores line order and splitting", func(t *testing.T) {
		r1, err := purchase.NewRequest(reqID, buyerID, []purchase.LineItem{{EventID: a, Quantity: 2}, {EventID: b, Quantity: 1}}, 0)
		require.NoError(t, err)
		r2, err := purchase.NewRequest(reqID, buyerID, []purchase.LineItem{{EventID: b, Quantity: 1}, {EventID: a, Quantity: 1}, {EventID: a, Quantity: 1}}, 0)
		require.NoError(t, err)
		r3, err := purchase.NewRequest(reqID, buyerID, []purchase.LineItem{{EventID: a, Quantity: 3}, {EventID: b, Quantity: 1}}, 0)
		require.NoError(t, err)

		assert.Equal(t, r1.Fingerprint(), r2.Fingerprint())
		assert.NotEqual(t, r1.Fingerprint(), r3.Fingerprint())
	})

	cases := []struct {
		name    string
		reqID   uuid.UUID
		buyerID uuid.UUID
		items   []purchase.LineItem
		max     int
		errIs   error
	}{
		{name: "missing request id", reqID: uuid.Nil, buyerID: buyerID, items: []purchase.LineItem{{EventID: a, Quantity: 1}}, errIs: purchase.ErrMissingRequestID},
		{name: "missing buyer id", reqID: reqID, buyerID: uuid.Nil, items: []purchase.LineItem{{EventID: a, Quantity: 1}}, errIs: purchase.ErrMissingBuyerID},
		{name: "no items", reqID: reqID, buyerID: buyerID, items: nil, errIs: purchase.ErrNoLineItems},
		{name: "zero quantity", reqID: reqID, buyerID: buyerID, items: []purchase.LineItem{{EventID: a, Quantity: 0}}, errIs: purchase.ErrInvalidQuantity},
		{name: "negative quantity", reqID: reqID, buyerID: buyerID, items: []purchase.LineItem{{EventID: a, Quantity: 2}, {EventID: b, Quantity: -1}}, errIs: purchase.ErrInvalidQuantity},
		{name: "missing event id", reqID: reqID, buyerID: buyerID, items: []purchase.LineItem{{EventID: uuid.Nil, Quantity: 1}}, errIs: purchase.ErrMissingEventID},
		{name: "quantity above int4", reqID: reqID, buyerID: buyerID, items: []purchase.LineItem{{EventID: a, Quantity: purchase.MaxQuantity + 1}}, errIs: purchase.ErrQuantityTooLarge},
		{name: "max int quantity", reqID: reqID, buyerID: buyerID, items: []purchase.LineItem{{EventID: a, Quantity: math.MaxInt}, {EventID: a, Quantity: 1}}, errIs: purchase.ErrQuantityTooLarge},
		{name: "duplicate lines sum past int4", reqID: reqID, buyerID: buyerID, items: []purchase.LineItem{{EventID: a, Quantity: purchase.MaxQuantity}, {EventID: b, Quantity: 1}, {EventID: a, Quantity: 1}}, errIs: purchase.ErrQuantityTooLarge},
		{name: "too many lines", reqID: reqID, buyerID: buyerID, items: []purchase.LineItem{{EventID: a, Quantity: 1}, {EventID: b, Quantity: 1}}, max: 1, errIs: purchase.ErrTooManyLineItems},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := purchase.NewRequest(tc.reqID, tc.buyerID, tc.items, tc.max)
			assert.ErrorIs(t, err, tc.errIs)
			assert.Nil(t, req)
		})
	}
}

func TestState(t *testing.T) {
	s := purchase.StateReceived

	s, err := s.TransitionTo(purchase.StateValidating)
	require.NoError(t, err)
	s, err = s.TransitionTo(purchase.StateCommitting)
	require.NoError(t, err)
	s, err = s.TransitionTo(purchase.StateCommitted)
	require.NoError(t, err)
	assert.True(t, s.Terminal())

	_, err = purchase.StateCommitting.TransitionTo(purchase.StateRolledBack)
	assert.ErrorIs(t, err, purchase.ErrInvalidTransition)
	_, err = purchase.StateCommitted.TransitionTo(purchase.StateValidating)
	assert.ErrorIs(t, err, purchase.ErrInvalidTransition)
}

func TestLedgerEntry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a, b := uuid.New(), uuid.New()
	req, err := purchase.NewRequest(uuid.New(), uuid.New(), []purchase.LineItem{{EventID: a, Quantity: 2}, {EventID: b, Quantity: 5}}, 0)
	require.NoError(t, err)

	t.Run("committed entry counts quantities", func(t *testing.T) {
		entry, err := purchase.NewLedgerEntry(req, purchase.StatusCommitted, []purchase.LineResult{
			{EventID: a, Requested: 2, Available: 10, Accepted: true},
			{EventID: b, Requested: 5, Available: 5, Accepted: true},
		}, now)
		require.NoError(t, err)

		assert.Equal(t, 2, entry.QuantityFor(a))
		assert.Equal(t, 5, entry.QuantityFor(b))
		assert.Equal(t, 7, entry.TotalQuantity())
		assert.Equal(t, req.Fingerprint(), entry.RequestHash)
		assert.Empty(t, entry.Rejections())
	})

	t.Run("rejected entry contributes nothing", func(t *testing.T) {
		entry, err := purchase.NewLedgerEntry(req, purchase.StatusRejected, []purchase.LineResult{
			{EventID: a, Requested: 2, Available: 10},
			{EventID: b, Requested: 5, Available: 4},
		}, now)
		require.NoError(t, err)

		assert.Zero(t, entry.QuantityFor(a))
		assert.Equal(t, []purchase.Rejection{{EventID: b, Requested: 5, Available: 4}}, entry.Rejections())
	})

	t.Run("committed entry must accept every line", func(t *testing.T) {
		_, err := purchase.NewLedgerEntry(req, purchase.StatusCommitted, []purchase.LineResult{
			{EventID: a, Requested: 2, Available: 10, Accepted: true},
			{EventID: b, Requested: 5, Available: 4},
		}, now)
		assert.ErrorIs(t, err, purchase.ErrInvalidLedgerEntry)
	})
}

func TestReplayReserved(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	checkpoints := map[uuid.UUID]purchase.Checkpoint{
		a: {EventID: a, Reserved: 10, LedgerSeq: 5},
		b: {EventID: b, Reserved: 3, LedgerSeq: 8},
	}
	lines := []purchase.CommittedLine{
		{Seq: 4, EventID: a, Quantity: 7},
		{Seq: 6, EventID: a, Quantity: 2},
		{Seq: 7, EventID: b, Quantity: 9},
		{Seq: 9, EventID: b, Quantity: 1},
		{Seq: 9, EventID: c, Quantity: 4},
		{Seq: 10, EventID: uuid.New(), Quantity: 100},
	}
	ids := []uuid.UUID{a, b, c}

	got := purchase.ReplayReserved(ids, checkpoints, lines)

	assert.Equal(t, map[uuid.UUID]int{a: 12, b: 4, c: 4}, got)
	assert.Equal(t, int64(0), purchase.MinSeq(ids, checkpoints))
	assert.Equal(t, int64(5), purchase.MinSeq([]uuid.UUID{a, b}, checkpoints))
}
