package queries

import (
	"context"

	"fleetbook/internal/infra"
	"fleetbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrMemberNotFound = errs.New("member not found")

type MemberQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedMemberView, error)
}

type memberQueriesImpl struct {
	store MemberReadStore
}

func NewMemberQueries(store MemberReadStore) MemberQueries {
	return &memberQueriesImpl{store: store}
}

func (q *memberQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedMemberView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return view, nil
}
