//go:build unit

package reservation_test

import (
	"testing"

	"space-booking/internal/domain/reservation"
	"space-booking/internal/domain/space"
	"space-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, int64(1), actual.UserID())
		assert.Equal(t, int64(1), actual.SpaceID())
		assert.Equal(t, "Main Hall", actual.SpaceName())
		assert.Equal(t, "2026-10-01", actual.Slot().Date())
		assert.Equal(t, "14:00", actual.Slot().StartTime())
		assert.Equal(t, 2, actual.Slot().DurationHours())
		assert.Equal(t, reservation.StatusActive, actual.Status())
		assert.True(t, actual.IsActive())

		// space 5000 + 3 coffees at 200 each
		assert.Equal(t, int64(5000), actual.SpaceCost().Cents())
		assert.Equal(t, int64(600), actual.ItemsCost().Cents())
		assert.Equal(t, int64(5600), actual.Total().Cents())

		require.Len(t, actual.Lines(), 1)
		assert.Equal(t, "Coffee", actual.Lines()[0].ItemName())
		assert.Equal(t, 3, actual.Lines()[0].Quantity())
	})

	t.Run("no items books the space alone", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().WithItems().BuildDomain()
		require.NoError(t, err)

		assert.Empty(t, actual.Lines())
		assert.Zero(t, actual.ItemsCost().Cents())
		assert.Equal(t, int64(5000), actual.Total().Cents())
	})

	cases := []struct {
		name   string
		mutate func(*builder.ReservationBuilder)
		errIs  error
	}{
		{
			name:   "inactive space",
			mutate: func(b *builder.ReservationBuilder) { b.Space.AsInactive() },
			errIs:  space.ErrInactive,
		},
		{
			name:   "full capacity-shared space",
			mutate: func(b *builder.ReservationBuilder) { b.Space.AsFull() },
			errIs:  space.ErrFull,
		},
		{
			name: "taken slot on slot-exclusive space",
			mutate: func(b *builder.ReservationBuilder) {
				b.Space.WithPolicy(space.PolicySlotExclusive)
				b.WithSlotTaken()
			},
			errIs: reservation.ErrSlotTaken,
		},
		{
			name: "taken slot on capacity-shared space is allowed",
			mutate: func(b *builder.ReservationBuilder) {
				b.WithSlotTaken()
			},
		},
		{
			name: "insufficient stock",
			mutate: func(b *builder.ReservationBuilder) {
				b.WithItems(reservation.ItemRequest{ItemID: 1, Quantity: 21})
			},
			errIs: reservation.ErrInsufficientStock,
		},
		{
			name:   "malformed date",
			mutate: func(b *builder.ReservationBuilder) { b.WithDate("2026/10/01") },
			errIs:  reservation.ErrInvalidDate,
		},
		{
			name:   "malformed start time",
			mutate: func(b *builder.ReservationBuilder) { b.WithStartTime("2pm") },
			errIs:  reservation.ErrInvalidStartTime,
		},
		{
			name:   "zero duration",
			mutate: func(b *builder.ReservationBuilder) { b.WithDurationHours(0) },
			errIs:  reservation.ErrInvalidDuration,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReservationBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestCancel(t *testing.T) {
	actual, err := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, err)

	require.True(t, actual.Cancel())
	assert.True(t, actual.IsCancelled())
	assert.Equal(t, reservation.StatusCancelled, actual.Status())

	// repeat cancellation reports no transition
	require.False(t, actual.Cancel())
	assert.True(t, actual.IsCancelled())
}

func TestCheckAvailability(t *testing.T) {
	t.Run("availability gate runs before line validation", func(t *testing.T) {
		// both the space and the items would fail; the space wins
		_, err := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) {
				b.Space.AsInactive()
				b.WithItems(reservation.ItemRequest{ItemID: 99, Quantity: 1})
			}).
			BuildDomain()

		require.ErrorIs(t, err, space.ErrInactive)
	})
}

func TestMoney(t *testing.T) {
	m := reservation.NewMoney(250)

	assert.Equal(t, int64(250), m.Cents())
	assert.InDelta(t, 2.50, m.Units(), 0.0001)
	assert.Equal(t, int64(1000), m.Mul(4).Cents())
	assert.Equal(t, int64(350), m.Add(reservation.NewMoney(100)).Cents())
}
