package queries

import (
	"context"

	"space-booking/internal/infra"
	"space-booking/internal/pkg/errs"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrUserNotFound        = errs.New("user not found")
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	// FindAll returns reservations in insertion order, all statuses.
	FindAll(ctx context.Context) ([]*ReservationView, error)
	FindByUserID(ctx context.Context, userID int64) ([]*ReservationView, error)
}

type UserLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
	ListAll(ctx context.Context) ([]*ReservationView, error)
	// TotalsForUser sums the stored totals of every reservation owned by
	// the user, cancelled ones included, matching the original report.
	TotalsForUser(ctx context.Context, userID int64) (*UserTotalsView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	users UserLookup
}

func NewReservationQueries(store ReservationReadStore, users UserLookup) ReservationQueries {
	return &reservationQueriesImpl{store: store, users: users}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context) ([]*ReservationView, error) {
	return q.store.FindAll(ctx)
}

func (q *reservationQueriesImpl) TotalsForUser(ctx context.Context, userID int64) (*UserTotalsView, error) {
	exists, err := q.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	views, err := q.store.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var grandTotal int64
	for _, v := range views {
		grandTotal += v.TotalCents
	}

	return &UserTotalsView{
		UserID:          userID,
		Reservations:    views,
		GrandTotalCents: grandTotal,
	}, nil
}
