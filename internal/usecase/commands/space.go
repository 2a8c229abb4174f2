package commands

import (
	"context"

	"space-booking/internal/domain/space"
	"space-booking/internal/infra"
	"space-booking/internal/pkg/config"
	"space-booking/internal/pkg/errs"
	"space-booking/internal/usecase/shared"
)

type CreateSpaceInput struct {
	Name       string
	Location   string
	Category   string
	PriceCents int64
	Capacity   int
	Policy     string
}

type SpaceCommands interface {
	Create(ctx context.Context, input CreateSpaceInput) (int64, error)
	// Deactivate soft-deletes: the space disappears from listings and
	// booking but its reservations stay intact.
	Deactivate(ctx context.Context, id int64) error
}

type spaceCommandsImpl struct {
	uow     shared.UnitOfWork
	booking config.BookingConfig
}

func NewSpaceCommands(uow shared.UnitOfWork, cfg config.Config) SpaceCommands {
	return &spaceCommandsImpl{uow: uow, booking: cfg.Booking}
}

func (c *spaceCommandsImpl) Create(ctx context.Context, input CreateSpaceInput) (int64, error) {
	capacity := input.Capacity
	if capacity == 0 {
		capacity = c.booking.DefaultCapacity
	}

	policy := space.PolicyCapacityShared
	if input.Policy != "" {
		var err error
		policy, err = space.NewPolicy(input.Policy)
		if err != nil {
			return 0, err
		}
	}

	sp, err := space.NewSpace(input.Name, input.Location, input.Category, input.PriceCents, capacity, policy)
	if err != nil {
		return 0, err
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Spaces().Create(ctx, sp)
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

func (c *spaceCommandsImpl) Deactivate(ctx context.Context, id int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Spaces().Deactivate(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSpaceNotFound
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
}
