package commands

import (
	"context"

	"space-booking/internal/domain/catalog"
	"space-booking/internal/domain/reservation"
	"space-booking/internal/infra"
	"space-booking/internal/pkg/errs"
	"space-booking/internal/usecase/shared"
)

type AddItemInput struct {
	Name       string
	Category   string
	PriceCents int64
	Stock      int
}

type CatalogCommands interface {
	Add(ctx context.Context, input AddItemInput) (int64, error)
	Restock(ctx context.Context, id int64, quantity int) error
}

type catalogCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCatalogCommands(uow shared.UnitOfWork) CatalogCommands {
	return &catalogCommandsImpl{uow: uow}
}

func (c *catalogCommandsImpl) Add(ctx context.Context, input AddItemInput) (int64, error) {
	item, err := catalog.NewItem(input.Name, input.Category, input.PriceCents, input.Stock)
	if err != nil {
		return 0, err
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.CatalogItems().Create(ctx, item)
		if err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (c *catalogCommandsImpl) Restock(ctx context.Context, id int64, quantity int) error {
	if quantity <= 0 {
		return errs.Mark(reservation.ErrInvalidQuantity, ErrInvalidQuantity)
	}
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.CatalogItems().IncrementStock(ctx, id, quantity); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrItemNotFound
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
}
