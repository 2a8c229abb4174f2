package queries

import "context"

type CatalogReadStore interface {
	// FindAvailable returns items with remaining stock, optionally
	// filtered by category.
	FindAvailable(ctx context.Context, category string) ([]*ItemView, error)
	FindAll(ctx context.Context) ([]*ItemView, error)
}

type CatalogQueries interface {
	ListAvailable(ctx context.Context, category string) ([]*ItemView, error)
	ListAll(ctx context.Context) ([]*ItemView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListAvailable(ctx context.Context, category string) ([]*ItemView, error) {
	return q.store.FindAvailable(ctx, category)
}

func (q *catalogQueriesImpl) ListAll(ctx context.Context) ([]*ItemView, error) {
	return q.store.FindAll(ctx)
}
