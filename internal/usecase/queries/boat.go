package queries

import (
	"context"

	"fleetbook/internal/infra"

	"github.com/google/uuid"
)

type BoatQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BoatView, error)
	ListAll(ctx context.Context) ([]*BoatView, error)
}

type boatQueriesImpl struct {
	store BoatReadStore
}

func NewBoatQueries(store BoatReadStore) BoatQueries {
	return &boatQueriesImpl{store: store}
}

func (q *boatQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BoatView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBoatNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *boatQueriesImpl) ListAll(ctx context.Context) ([]*BoatView, error) {
	return q.store.FindAll(ctx)
}
