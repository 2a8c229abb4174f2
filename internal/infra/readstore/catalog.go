package readstore

import (
	"context"
	"strings"

	"space-booking/internal/infra"
	"space-booking/internal/infra/db"
	"space-booking/internal/usecase/queries"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(db db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

func (r *CatalogReadStore) FindAvailable(ctx context.Context, category string) ([]*queries.ItemView, error) {
	query := `
		SELECT id, name, category, price_cents, stock
		FROM catalog_items
		WHERE stock > 0`
	args := []any{}

	// Categories are stored lowercased.
	if category != "" {
		query += ` AND category = $1`
		args = append(args, strings.ToLower(strings.TrimSpace(category)))
	}
	query += ` ORDER BY id`

	return r.findMany(ctx, query, args...)
}

func (r *CatalogReadStore) FindAll(ctx context.Context) ([]*queries.ItemView, error) {
	const query = `
		SELECT id, name, category, price_cents, stock
		FROM catalog_items
		ORDER BY id`

	return r.findMany(ctx, query)
}

func (r *CatalogReadStore) findMany(ctx context.Context, query string, args ...any) ([]*queries.ItemView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find catalog items", err)
	}
	defer rows.Close()

	views := make([]*queries.ItemView, 0)
	for rows.Next() {
		var v queries.ItemView
		if err := rows.Scan(&v.ID, &v.Name, &v.Category, &v.PriceCents, &v.Stock); err != nil {
			return nil, infra.WrapRepoErr("failed to scan catalog item", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read catalog items", err)
	}

	return views, nil
}
