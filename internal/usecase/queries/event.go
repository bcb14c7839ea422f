package queries

import (
	"context"

	"ticketqueen/internal/infra"
	"ticketqueen/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEventNotFound = errs.New("event does not exist")

type EventReadStore interface {
	FindAll(ctx context.Context) ([]*EventView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
}

type EventQueries interface {
	List(ctx context.Context) ([]*EventView, error)
	Get(ctx context.Context, id uuid.UUID) (*EventView, error)
}

type eventQueriesImpl struct {
	store EventReadStore
}

func NewEventQueries(store EventReadStore) EventQueries {
	return &eventQueriesImpl{store: store}
}

func (q *eventQueriesImpl) List(ctx context.Context) ([]*EventView, error) {
	return q.store.FindAll(ctx)
}

func (q *eventQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*EventView, error) {
	ev, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return ev, nil
}
