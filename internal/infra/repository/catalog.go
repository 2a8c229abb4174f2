package repository

import (
	"context"

	"space-booking/internal/domain/catalog"
	"space-booking/internal/infra"
	"space-booking/internal/infra/db"
)

type CatalogRepository struct {
	db db.DBTX
}

func NewCatalogRepository(db db.DBTX) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) Create(ctx context.Context, item *catalog.Item) (int64, error) {
	const query = `
		INSERT INTO catalog_items (name, category, price_cents, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query, item.Name(), item.Category(), item.PriceCents(), item.Stock()).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create catalog item", err)
	}

	return id, nil
}

// GetManyForUpdate locks the requested rows in ascending id order so
// concurrent bookings acquire item locks in the same sequence.
func (r *CatalogRepository) GetManyForUpdate(ctx context.Context, ids []int64) (map[int64]*catalog.Item, error) {
	items := make(map[int64]*catalog.Item, len(ids))
	if len(ids) == 0 {
		return items, nil
	}

	const query = `
		SELECT id, name, category, price_cents, stock
		FROM catalog_items
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock catalog items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id             int64
			name, category string
			priceCents     int64
			stock          int
		)
		if err := rows.Scan(&id, &name, &category, &priceCents, &stock); err != nil {
			return nil, infra.WrapRepoErr("failed to scan catalog item", err)
		}
		items[id] = catalog.ReconstructItem(id, name, category, priceCents, stock)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read catalog items", err)
	}

	return items, nil
}

// DecrementStock fails with a conflict when the remaining stock cannot
// cover the quantity; the guard keeps the counter from going negative.
func (r *CatalogRepository) DecrementStock(ctx context.Context, id int64, quantity int) error {
	const query = `
		UPDATE catalog_items
		SET stock = stock - $2
		WHERE id = $1 AND stock >= $2`

	tag, err := r.db.Exec(ctx, query, id, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("insufficient stock", nil, infra.KindConflict)
	}

	return nil
}

func (r *CatalogRepository) IncrementStock(ctx context.Context, id int64, quantity int) error {
	const query = `
		UPDATE catalog_items
		SET stock = stock + $2
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to increment stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("catalog item not found", nil, infra.KindNotFound)
	}

	return nil
}
