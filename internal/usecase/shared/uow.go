package shared

import (
	"context"
	"time"

	"space-booking/internal/domain/catalog"
	"space-booking/internal/domain/reservation"
	"space-booking/internal/domain/space"
	"space-booking/internal/domain/user"

	"github.com/google/uuid"
)

// UnitOfWork scopes every multi-collection mutation to one transaction:
// the reservation row, the occupancy counter and the stock decrements
// either all land or none do.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: read access outside a transaction, for validation
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Spaces() SpaceRepository
	CatalogItems() CatalogRepository
	Reservations() ReservationRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

type CommandReads interface {
	UserByID(ctx context.Context, id int64) (*UserSnapshot, error)
	SpaceByID(ctx context.Context, id int64) (*SpaceSnapshot, error)
	// ActiveSlotTaken reports whether an active reservation holds the
	// (space, date, start time) triple. Callers must hold the space row
	// lock for the answer to stay true until commit.
	ActiveSlotTaken(ctx context.Context, spaceID int64, date, startTime string) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (int64, error)
}

type SpaceRepository interface {
	Create(ctx context.Context, sp *space.Space) (int64, error)
	// GetForUpdate locks the space row for the rest of the transaction,
	// serializing concurrent bookings against the same space.
	GetForUpdate(ctx context.Context, id int64) (*space.Space, error)
	OccupyOne(ctx context.Context, id int64) error
	ReleaseOne(ctx context.Context, id int64) error
	Deactivate(ctx context.Context, id int64) error
}

type CatalogRepository interface {
	Create(ctx context.Context, item *catalog.Item) (int64, error)
	// GetManyForUpdate locks the item rows in ascending id order and
	// returns one consistent stock snapshot for the whole request.
	GetManyForUpdate(ctx context.Context, ids []int64) (map[int64]*catalog.Item, error)
	DecrementStock(ctx context.Context, id int64, quantity int) error
	IncrementStock(ctx context.Context, id int64, quantity int) error
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (int64, error)
	GetForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error)
	MarkCancelled(ctx context.Context, id int64) error
}

type IdempotencyRepository interface {
	// TryInsert claims the key; it reports false when the key was
	// already claimed by an earlier request.
	TryInsert(ctx context.Context, key uuid.UUID, userID int64, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key uuid.UUID, userID int64) (*IdempotencyRecord, error)
	MarkCompleted(ctx context.Context, key uuid.UUID, userID int64, reservationID int64) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
