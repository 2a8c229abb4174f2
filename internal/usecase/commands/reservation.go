package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"space-booking/internal/domain/catalog"
	"space-booking/internal/domain/reservation"
	"space-booking/internal/domain/space"
	"space-booking/internal/infra"
	"space-booking/internal/pkg/clock"
	"space-booking/internal/pkg/errs"
	"space-booking/internal/usecase/queries"
	"space-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound        = errs.New("user not found")
	ErrSpaceNotFound       = errs.New("space not found or inactive")
	ErrItemNotFound        = errs.New("catalog item not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidSlot         = errs.New("invalid reservation slot")
	ErrInvalidQuantity     = errs.New("invalid item quantity")
	ErrCapacityExceeded    = errs.New("space capacity exceeded")
	ErrSlotTaken           = errs.New("slot already reserved")
	ErrInsufficientStock   = errs.New("insufficient item stock")
	ErrDuplicateRequest    = errs.New("duplicate request with different parameters")
	ErrRequestInProgress   = errs.New("request is being processed")
	ErrStorageFailure      = errs.New("storage operation failed")
)

const createReservationEndpoint = "POST /reservations"

type CreateReservationInput struct {
	UserID        int64                     `json:"user_id"`
	SpaceID       int64                     `json:"space_id"`
	Date          string                    `json:"date"`
	StartTime     string                    `json:"start_time"`
	DurationHours int                       `json:"duration_hours"`
	Items         []reservation.ItemRequest `json:"items"`
}

type CreateReservationResult struct {
	Reservation *reservation.Reservation
	IsReplayed  bool
}

type ReservationCommands interface {
	Create(ctx context.Context, input CreateReservationInput, idempotencyKey uuid.UUID) (*CreateReservationResult, error)
	Cancel(ctx context.Context, id int64) error
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	views   queries.ReservationReadStore
	clock   clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	views queries.ReservationReadStore,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:     uow,
		factory: factory,
		views:   views,
		clock:   clk,
	}
}

func (c *reservationCommandsImpl) Create(
	ctx context.Context,
	input CreateReservationInput,
	idempotencyKey uuid.UUID,
) (*CreateReservationResult, error) {
	var (
		requestHash = calculateRequestHash(input)
		created     *reservation.Reservation
		replayedID  *int64
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, err := tx.Idempotency().TryInsert(
			ctx, idempotencyKey, input.UserID, createReservationEndpoint, requestHash,
			c.clock.Now().Add(24*time.Hour),
		)
		if err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		if !claimed {
			id, replayErr := c.resolveReplay(ctx, tx, idempotencyKey, input.UserID, requestHash)
			if replayErr != nil {
				return replayErr
			}
			replayedID = &id
			return nil
		}

		created, err = c.bookReservation(ctx, tx, input)
		if err != nil {
			return err
		}

		if err := tx.Idempotency().MarkCompleted(ctx, idempotencyKey, input.UserID, created.ID()); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		return c.enqueueNotification(ctx, tx, "reservation_created", created.ID())
	})
	if err != nil {
		return nil, err
	}

	if replayedID != nil {
		replayed, err := c.reservationByID(ctx, *replayedID)
		if err != nil {
			return nil, err
		}
		return &CreateReservationResult{Reservation: replayed, IsReplayed: true}, nil
	}

	return &CreateReservationResult{Reservation: created, IsReplayed: false}, nil
}

// bookReservation runs the precondition chain in order (user, space,
// slot, availability, stock) and applies the paired inventory mutations.
// Everything happens under the same transaction with the space row locked,
// so two concurrent bookings cannot both pass their checks.
func (c *reservationCommandsImpl) bookReservation(
	ctx context.Context,
	tx shared.Tx,
	input CreateReservationInput,
) (*reservation.Reservation, error) {
	if _, err := tx.Reads().UserByID(ctx, input.UserID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	sp, err := tx.Spaces().GetForUpdate(ctx, input.SpaceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	if !sp.IsActive() {
		return nil, ErrSpaceNotFound
	}

	slot, err := reservation.NewSlot(input.Date, input.StartTime, input.DurationHours)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlot)
	}

	slotTaken := false
	if sp.Policy() == space.PolicySlotExclusive {
		slotTaken, err = tx.Reads().ActiveSlotTaken(ctx, sp.ID(), slot.Date(), slot.StartTime())
		if err != nil {
			return nil, errs.Mark(err, ErrStorageFailure)
		}
	}

	items, err := c.lockRequestedItems(ctx, tx, input.Items)
	if err != nil {
		return nil, err
	}

	res, err := c.factory.CreateReservation(sp, input.UserID, slot, input.Items, items, slotTaken)
	if err != nil {
		return nil, mapBookingError(err)
	}

	id, err := tx.Reservations().Create(ctx, res)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	if err := c.applyInventory(ctx, tx, sp, res); err != nil {
		return nil, err
	}

	return c.reservationInTx(ctx, tx, id)
}

func (c *reservationCommandsImpl) lockRequestedItems(
	ctx context.Context,
	tx shared.Tx,
	requests []reservation.ItemRequest,
) (map[int64]*catalog.Item, error) {
	consolidated := reservation.ConsolidateRequests(requests)
	ids := make([]int64, 0, len(consolidated))
	for _, req := range consolidated {
		ids = append(ids, req.ItemID)
	}

	items, err := tx.CatalogItems().GetManyForUpdate(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return items, nil
}

func (c *reservationCommandsImpl) applyInventory(
	ctx context.Context,
	tx shared.Tx,
	sp *space.Space,
	res *reservation.Reservation,
) error {
	if sp.Policy() == space.PolicyCapacityShared {
		if err := tx.Spaces().OccupyOne(ctx, sp.ID()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrCapacityExceeded
			}
			return errs.Mark(err, ErrStorageFailure)
		}
	}

	for _, line := range res.Lines() {
		if err := tx.CatalogItems().DecrementStock(ctx, line.ItemID(), line.Quantity()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(errs.Newf("item %q", line.ItemName()), ErrInsufficientStock)
			}
			return errs.Mark(err, ErrStorageFailure)
		}
	}
	return nil
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, id int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().GetForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrStorageFailure)
		}

		// Idempotent: a second cancellation succeeds without touching
		// inventory again.
		if !res.Cancel() {
			return nil
		}

		if err := tx.Reservations().MarkCancelled(ctx, id); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}

		if err := c.restoreInventory(ctx, tx, res); err != nil {
			return err
		}
		return c.enqueueNotification(ctx, tx, "reservation_cancelled", id)
	})
}

// restoreInventory gives back what the booking consumed so that replaying
// the active reservations against a reset inventory reproduces the stored
// counters.
func (c *reservationCommandsImpl) restoreInventory(
	ctx context.Context,
	tx shared.Tx,
	res *reservation.Reservation,
) error {
	for _, line := range res.Lines() {
		if err := tx.CatalogItems().IncrementStock(ctx, line.ItemID(), line.Quantity()); err != nil {
			// A line whose item no longer exists has nothing to restore.
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return errs.Mark(err, ErrStorageFailure)
		}
	}

	spaceSnap, err := tx.Reads().SpaceByID(ctx, res.SpaceID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, ErrStorageFailure)
	}
	if spaceSnap.Policy == space.PolicyCapacityShared.String() {
		if err := tx.Spaces().ReleaseOne(ctx, res.SpaceID()); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
	}
	return nil
}

func (c *reservationCommandsImpl) resolveReplay(
	ctx context.Context,
	tx shared.Tx,
	key uuid.UUID,
	userID int64,
	requestHash string,
) (int64, error) {
	record, err := tx.Idempotency().Get(ctx, key, userID)
	if err != nil {
		return 0, errs.Mark(err, ErrStorageFailure)
	}

	switch record.Status {
	case shared.IdempotencyStatusCompleted:
		if record.ResultReservationID == nil {
			return 0, errs.Mark(errs.New("completed request missing result reservation id"), ErrStorageFailure)
		}
		if record.RequestHash != requestHash {
			return 0, ErrDuplicateRequest
		}
		return *record.ResultReservationID, nil
	case shared.IdempotencyStatusProcessing:
		if record.RequestHash != requestHash {
			return 0, ErrDuplicateRequest
		}
		return 0, ErrRequestInProgress
	default:
		return 0, errs.Mark(errs.Newf("idempotency key in state %q", record.Status), ErrStorageFailure)
	}
}

func (c *reservationCommandsImpl) enqueueNotification(
	ctx context.Context,
	tx shared.Tx,
	topic string,
	reservationID int64,
) error {
	payload, err := json.Marshal(map[string]any{
		"reservation_id": reservationID,
		"type":           topic,
	})
	if err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	if err := tx.Notifications().CreateJob(ctx, "email", topic, payload, c.clock.Now()); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

func (c *reservationCommandsImpl) reservationInTx(ctx context.Context, tx shared.Tx, id int64) (*reservation.Reservation, error) {
	res, err := tx.Reservations().GetForUpdate(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return res, nil
}

func (c *reservationCommandsImpl) reservationByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	view, err := c.views.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return reservationFromView(view), nil
}

func mapBookingError(err error) error {
	switch {
	case errors.Is(err, space.ErrInactive):
		return ErrSpaceNotFound
	case errors.Is(err, space.ErrFull):
		return ErrCapacityExceeded
	case errors.Is(err, reservation.ErrSlotTaken):
		return errs.Mark(err, ErrSlotTaken)
	case errors.Is(err, reservation.ErrUnknownItem):
		return errs.Mark(err, ErrItemNotFound)
	case errors.Is(err, reservation.ErrInvalidQuantity):
		return errs.Mark(err, ErrInvalidQuantity)
	case errors.Is(err, reservation.ErrInsufficientStock):
		return errs.Mark(err, ErrInsufficientStock)
	default:
		return errs.Mark(err, ErrInvalidSlot)
	}
}

func reservationFromView(view *queries.ReservationView) *reservation.Reservation {
	lines := make([]reservation.Line, 0, len(view.Lines))
	for _, l := range view.Lines {
		lines = append(lines, reservation.ReconstructLine(l.ItemID, l.ItemName, l.Quantity, l.UnitPriceCents, l.SubtotalCents))
	}
	slot, _ := reservation.NewSlot(view.Date, view.StartTime, view.DurationHours)
	return reservation.ReconstructReservation(
		view.ID, view.UserID, view.SpaceID, view.SpaceName,
		slot, lines,
		view.SpaceCostCents, view.ItemsCostCents, view.TotalCents,
		reservation.Status(view.Status),
		view.CreatedAt, view.UpdatedAt,
	)
}

func calculateRequestHash(input CreateReservationInput) string {
	data, _ := json.Marshal(input)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
