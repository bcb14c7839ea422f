//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	sqlc "ticketqueen/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTicketViewQueries struct {
	mock.Mock
}

func (m *MockTicketViewQueries) GetTicketsByBuyerFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.GetTicketsByBuyerFirstPageParams) ([]sqlc.GetTicketsByBuyerFirstPageRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.GetTicketsByBuyerFirstPageRow), args.Error(1)
}

func (m *MockTicketViewQueries) GetTicketsByBuyerKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetTicketsByBuyerKeysetParams) ([]sqlc.GetTicketsByBuyerKeysetRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.GetTicketsByBuyerKeysetRow), args.Error(1)
}

func TestTicketReadStore_FindByBuyerFirstPage(t *testing.T) {
	buyerID := uuid.New()
	purchasedAt := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	usedAt := purchasedAt.Add(time.Hour)
	rows := []sqlc.GetTicketsByBuyerFirstPageRow{
		{
			ID:         uuid.New(),
			RequestID:  uuid.New(),
			BuyerID:    buyerID,
			EventID:    uuid.New(),
			EventName:  "Spring Concert",
			EventDate:  pgtype.Timestamptz{Time: purchasedAt.AddDate(0, 1, 0), Valid: true},
			Venue:      "Main Hall",
			PriceCents: 5000,
			Used:       true,
			UsedAt:     pgtype.Timestamptz{Time: usedAt, Valid: true},
			CreatedAt:  pgtype.Timestamptz{Time: purchasedAt, Valid: true},
		},
		{
			ID:        uuid.New(),
			BuyerID:   buyerID,
			CreatedAt: pgtype.Timestamptz{Time: purchasedAt.Add(-time.Minute), Valid: true},
		},
	}

	mockQueries := new(MockTicketViewQueries)
	mockQueries.On("GetTicketsByBuyerFirstPage", mock.Anything, mock.Anything,
		sqlc.GetTicketsByBuyerFirstPageParams{BuyerID: buyerID, Limit: 11}).Return(rows, nil)

	views, err := NewTicketReadStore(mockQueries, nil).FindByBuyerFirstPage(context.Background(), buyerID, 11)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, rows[0].ID, views[0].ID)
	assert.Equal(t, "Spring Concert", views[0].EventName)
	assert.Equal(t, purchasedAt, views[0].PurchasedAt)
	require.NotNil(t, views[0].UsedAt)
	assert.Equal(t, usedAt, *views[0].UsedAt)
	assert.False(t, views[1].Used)
	assert.Nil(t, views[1].UsedAt)
	mockQueries.AssertExpectations(t)
}

func TestTicketReadStore_FindByBuyerKeyset(t *testing.T) {
	buyerID := uuid.New()
	lastID := uuid.New()
	last := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)

	t.Run("passes the keyset position", func(t *testing.T) {
		mockQueries := new(MockTicketViewQueries)
		mockQueries.On("GetTicketsByBuyerKeyset", mock.Anything, mock.Anything, sqlc.GetTicketsByBuyerKeysetParams{
			BuyerID:   buyerID,
			CreatedAt: pgtype.Timestamptz{Time: last, Valid: true},
			ID:        lastID,
			Limit:     3,
		}).Return([]sqlc.GetTicketsByBuyerKeysetRow{}, nil)

		views, err := NewTicketReadStore(mockQueries, nil).FindByBuyerKeyset(context.Background(), buyerID, last, lastID, 3)

		require.NoError(t, err)
		assert.Empty(t, views)
		mockQueries.AssertExpectations(t)
	})

	t.Run("wraps database errors", func(t *testing.T) {
		mockQueries := new(MockTicketViewQueries)
		mockQueries.On("GetTicketsByBuyerKeyset", mock.Anything, mock.Anything, mock.Anything).
			Return([]sqlc.GetTicketsByBuyerKeysetRow(nil), assert.AnError)

		views, err := NewTicketReadStore(mockQueries, nil).FindByBuyerKeyset(context.Background(), buyerID, last, lastID, 3)

		assert.Nil(t, views)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
