package repository

import (
	"context"

	"space-booking/internal/domain/user"
	"space-booking/internal/infra"
	"space-booking/internal/infra/db"
	"space-booking/internal/pkg/pgconv"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	const query = `
		INSERT INTO users (name, contact, role)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query, u.Name(), u.Contact(), string(u.Role())).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return 0, infra.WrapRepoErr("contact already registered", err, infra.KindDuplicateKey)
		}
		return 0, infra.WrapRepoErr("failed to create user", err)
	}

	return id, nil
}
