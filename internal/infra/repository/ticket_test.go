//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ticketqueen/internal/domain/ticket"
	"ticketqueen/internal/infra"
	"ticketqueen/internal/infra/repository"
	sqlc "ticketqueen/internal/infra/sqlc/generated"
	"ticketqueen/internal/pkg/pgconv"
	repositorymock "ticketqueen/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTicketRepository_InsertIfAbsent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		rows       int64
		mockError  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: inserted", rows: 1},
		{name: "success: already present is not an error", rows: 0},
		{name: "error: database error occurs", mockError: errors.New("broken pipe"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockTicketWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewTicketRepository(mockQueries, mockDB)

			tk, err := ticket.New(uuid.New(), uuid.New(), uuid.New(), 2, now)
			require.NoError(t, err)

			mockQueries.EXPECT().InsertTicketIfAbsent(ctx, mockDB, sqlc.InsertTicketIfAbsentParams{
				ID:        tk.ID(),
				RequestID: tk.RequestID(),
				EventID:   tk.EventID(),
				BuyerID:   tk.BuyerID(),
				Seq:       2,
				UsedAt:    pgconv.TimePtrToPgtype(nil),
				CreatedAt: pgconv.TimeToPgtype(now),
			}).Return(tc.rows, tc.mockError)

			err = repo.InsertIfAbsent(ctx, tk)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTicketRepository_GetForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("error: missing ticket is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockTicketWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewTicketRepository(mockQueries, mockDB)

		id := uuid.New()
		mockQueries.EXPECT().GetTicketForUpdate(ctx, mockDB, id).Return(sqlc.Tickets{}, pgx.ErrNoRows)

		_, err := repo.GetForUpdate(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound), "got %v", err)
	})

	t.Run("success: used ticket keeps its timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockTicketWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewTicketRepository(mockQueries, mockDB)

		usedAt := time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC)
		row := sqlc.Tickets{
			ID:        uuid.New(),
			RequestID: uuid.New(),
			EventID:   uuid.New(),
			BuyerID:   uuid.New(),
			Seq:       0,
			Used:      true,
			UsedAt:    pgconv.TimeToPgtype(usedAt),
			CreatedAt: pgconv.TimeToPgtype(usedAt.Add(-time.Hour)),
		}
		mockQueries.EXPECT().GetTicketForUpdate(ctx, mockDB, row.ID).Return(row, nil)

		got, err := repo.GetForUpdate(ctx, row.ID)

		require.NoError(t, err)
		assert.True(t, got.Used())
		require.NotNil(t, got.UsedAt())
		assert.Equal(t, usedAt, *got.UsedAt())
	})
}

func TestTicketRepository_MarkUsed(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		rows    int64
		flipped bool
	}{
		{name: "first caller flips the flag", rows: 1, flipped: true},
		{name: "later caller sees no change", rows: 0, flipped: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockTicketWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewTicketRepository(mockQueries, mockDB)

			id := uuid.New()
			mockQueries.EXPECT().MarkTicketUsed(ctx, mockDB, sqlc.MarkTicketUsedParams{
				ID:     id,
				UsedAt: pgconv.TimeToPgtype(at),
			}).Return(tc.rows, nil)

			flipped, err := repo.MarkUsed(ctx, id, at)

			require.NoError(t, err)
			assert.Equal(t, tc.flipped, flipped)
		})
	}
}
