//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ticketqueen/internal/domain/purchase"
	"ticketqueen/internal/infra"
	"ticketqueen/internal/infra/repository"
	sqlc "ticketqueen/internal/infra/sqlc/generated"
	"ticketqueen/internal/pkg/pgconv"
	"ticketqueen/tests/common/builder"
	repositorymock "ticketqueen/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func eventRow(id uuid.UUID, total, reserved int32) sqlc.Events {
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	return sqlc.Events{
		ID:         id,
		Name:       "Spring Concert",
		EventDate:  pgconv.TimeToPgtype(now.AddDate(0, 1, 0)),
		Venue:      "Main Hall",
		PriceCents: 4500,
		Total:      total,
		Reserved:   reserved,
		CreatedAt:  pgconv.TimeToPgtype(now),
		UpdatedAt:  pgconv.TimeToPgtype(now),
	}
}

// =============================================================================
// Create Event Tests
// =============================================================================

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		mockError  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: event created"},
		{name: "error: database error occurs", mockError: errors.New("database connection error"), expectKind: infra.KindDBFailure},
		{name: "error: capacity check fails", mockError: &pgconn.PgError{Code: "23514"}, expectKind: infra.KindCheckViolated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockEventWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewEventRepository(mockQueries, mockDB)

			ev, err := builder.NewEventBuilder().WithTotal(40).BuildDomain()
			require.NoError(t, err)
			mockQueries.EXPECT().CreateEvent(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateEventParams) error {
					assert.Equal(t, ev.ID(), arg.ID)
					assert.Equal(t, int32(40), arg.Total)
					assert.Equal(t, int32(0), arg.Reserved)
					return tc.mockError
				})

			err = repo.Create(ctx, ev)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// =============================================================================
// LockForUpdate Tests
// =============================================================================

func TestEventRepository_LockForUpdate(t *testing.T) {
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()
	ordered := []uuid.UUID{a, b}
	purchase.SortIDs(ordered)

	t.Run("success: locks distinct ids in ascending order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockEventWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewEventRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockEventsForUpdate(ctx, mockDB, ordered).
			Return([]sqlc.Events{eventRow(ordered[0], 10, 2), eventRow(ordered[1], 5, 5)}, nil)

		got, err := repo.LockForUpdate(ctx, []uuid.UUID{ordered[1], ordered[0], ordered[1]})

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 8, got[ordered[0]].Available())
		assert.Equal(t, 0, got[ordered[1]].Available())
	})

	t.Run("error: missing event is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockEventWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewEventRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockEventsForUpdate(ctx, mockDB, ordered).
			Return([]sqlc.Events{eventRow(ordered[0], 10, 0)}, nil)

		_, err := repo.LockForUpdate(ctx, ordered)

		assert.True(t, infra.IsKind(err, infra.KindNotFound), "got %v", err)
	})

	t.Run("error: corrupt counters are reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockEventWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewEventRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockEventsForUpdate(ctx, mockDB, []uuid.UUID{a}).
			Return([]sqlc.Events{eventRow(a, 3, 4)}, nil)

		_, err := repo.LockForUpdate(ctx, []uuid.UUID{a})

		assert.True(t, infra.IsKind(err, infra.KindCheckViolated), "got %v", err)
	})
}

// =============================================================================
// UpdateReserved Tests
// =============================================================================

func TestEventRepository_UpdateReserved(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		rows       int64
		mockError  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: counter written", rows: 1},
		{name: "error: event vanished", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", mockError: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockEventWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewEventRepository(mockQueries, mockDB)

			ev, err := builder.NewEventBuilder().WithTotal(10).BuildDomain()
			require.NoError(t, err)
			require.NoError(t, ev.Reserve(3, ev.CreatedAt().Add(time.Minute)))

			mockQueries.EXPECT().UpdateEventReserved(ctx, mockDB, sqlc.UpdateEventReservedParams{
				ID:        ev.ID(),
				Reserved:  3,
				UpdatedAt: pgconv.TimeToPgtype(ev.UpdatedAt()),
			}).Return(tc.rows, tc.mockError)

			err = repo.UpdateReserved(ctx, ev)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
