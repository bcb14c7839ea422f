//go:build unit

package queries_test

import (
	"context"
	"testing"

	"ticketqueen/internal/infra"
	"ticketqueen/internal/usecase/queries"
	queriesmock "ticketqueen/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestEventQueries_Get(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	tests := []struct {
		name      string
		storeView *queries.EventView
		storeErr  error
		wantErr   error
	}{
		{name: "found", storeView: &queries.EventView{ID: id, Total: 10, Reserved: 4, Available: 6}},
		{name: "missing row maps to not found", storeErr: infra.NotFound("event"), wantErr: queries.ErrEventNotFound},
		{name: "db failure passes through", storeErr: assert.AnError, wantErr: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockEventReadStore(ctrl)
			store.EXPECT().FindByID(ctx, id).Return(tt.storeView, tt.storeErr)

			got, err := queries.NewEventQueries(store).Get(ctx, id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.storeView, got)
		})
	}
}

func TestEventQueries_List(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockEventReadStore(ctrl)
	views := []*queries.EventView{{ID: uuid.New()}, {ID: uuid.New()}}
	store.EXPECT().FindAll(ctx).Return(views, nil)

	got, err := queries.NewEventQueries(store).List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, views, got)
}
