package queries

import (
	"context"

	"space-booking/internal/infra"
	"space-booking/internal/pkg/errs"
)

var ErrSpaceNotFound = errs.New("space not found")

type SpaceReadStore interface {
	FindByID(ctx context.Context, id int64) (*SpaceView, error)
	// FindActive excludes soft-deleted spaces.
	FindActive(ctx context.Context) ([]*SpaceView, error)
}

type SpaceQueries interface {
	GetByID(ctx context.Context, id int64) (*SpaceView, error)
	ListActive(ctx context.Context) ([]*SpaceView, error)
}

type spaceQueriesImpl struct {
	store SpaceReadStore
}

func NewSpaceQueries(store SpaceReadStore) SpaceQueries {
	return &spaceQueriesImpl{store: store}
}

func (q *spaceQueriesImpl) GetByID(ctx context.Context, id int64) (*SpaceView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *spaceQueriesImpl) ListActive(ctx context.Context) ([]*SpaceView, error) {
	return q.store.FindActive(ctx)
}
