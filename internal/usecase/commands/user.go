package commands

import (
	"context"

	"space-booking/internal/domain/user"
	"space-booking/internal/infra"
	"space-booking/internal/pkg/errs"
	"space-booking/internal/usecase/shared"
)

var ErrDuplicateRegistration = errs.New("contact already registered")

type RegisterUserInput struct {
	Name    string
	Contact string
	Role    string
}

type UserCommands interface {
	Register(ctx context.Context, input RegisterUserInput) (int64, error)
}

type userCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userCommandsImpl{uow: uow}
}

func (c *userCommandsImpl) Register(ctx context.Context, input RegisterUserInput) (int64, error) {
	role := user.RoleUser
	if input.Role != "" {
		var err error
		role, err = user.NewRole(input.Role)
		if err != nil {
			return 0, err
		}
	}

	u, err := user.NewUser(input.Name, input.Contact, role)
	if err != nil {
		return 0, err
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Users().Create(ctx, u)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateRegistration
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
