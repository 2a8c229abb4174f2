//go:build unit

package space_test

import (
	"testing"

	"space-booking/internal/domain/space"
	"space-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.SpaceBuilder)
	errIs  error
}

func TestSpace(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewSpaceBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "Main Hall", actual.Name())
		assert.Equal(t, int64(5000), actual.PriceCents())
		assert.Equal(t, 10, actual.Capacity())
		assert.Zero(t, actual.Occupied())
		assert.True(t, actual.IsActive())
		assert.Equal(t, space.PolicyCapacityShared, actual.Policy())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.SpaceBuilder) { b.WithName("  ") },
				errIs:  space.ErrEmptyName,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.SpaceBuilder) { b.WithPriceCents(-1) },
				errIs:  space.ErrNegativePrice,
			},
			{
				name:   "zero price is allowed",
				mutate: func(b *builder.SpaceBuilder) { b.WithPriceCents(0) },
			},
			{
				name:   "zero capacity",
				mutate: func(b *builder.SpaceBuilder) { b.WithCapacity(0) },
				errIs:  space.ErrInvalidCapacity,
			},
			{
				name:   "negative capacity",
				mutate: func(b *builder.SpaceBuilder) { b.WithCapacity(-5) },
				errIs:  space.ErrInvalidCapacity,
			},
			{
				name:   "unknown policy",
				mutate: func(b *builder.SpaceBuilder) { b.WithPolicy(space.Policy("first_come")) },
				errIs:  space.ErrInvalidPolicy,
			},
			{
				name:   "slot exclusive policy",
				mutate: func(b *builder.SpaceBuilder) { b.WithPolicy(space.PolicySlotExclusive) },
			},
		})
	})

	t.Run("remaining", func(t *testing.T) {
		sp := builder.NewSpaceBuilder().WithCapacity(10).WithOccupied(3).BuildStored()
		assert.Equal(t, 7, sp.Remaining())
	})
}

func TestEnsureBookable(t *testing.T) {
	t.Run("open space is bookable", func(t *testing.T) {
		sp := builder.NewSpaceBuilder().BuildStored()
		require.NoError(t, sp.EnsureBookable())
	})

	t.Run("inactive space is not bookable", func(t *testing.T) {
		sp := builder.NewSpaceBuilder().AsInactive().BuildStored()
		require.ErrorIs(t, sp.EnsureBookable(), space.ErrInactive)
	})

	t.Run("full capacity-shared space is not bookable", func(t *testing.T) {
		sp := builder.NewSpaceBuilder().AsFull().BuildStored()
		require.ErrorIs(t, sp.EnsureBookable(), space.ErrFull)
	})

	t.Run("last seat is still bookable", func(t *testing.T) {
		sp := builder.NewSpaceBuilder().WithCapacity(10).WithOccupied(9).BuildStored()
		require.NoError(t, sp.EnsureBookable())
	})

	t.Run("full slot-exclusive space ignores the occupancy counter", func(t *testing.T) {
		sp := builder.NewSpaceBuilder().WithPolicy(space.PolicySlotExclusive).AsFull().BuildStored()
		require.NoError(t, sp.EnsureBookable())
	})
}

func TestNewPolicy(t *testing.T) {
	policy, err := space.NewPolicy("slot_exclusive")
	require.NoError(t, err)
	assert.Equal(t, space.PolicySlotExclusive, policy)

	_, err = space.NewPolicy("shared")
	require.ErrorIs(t, err, space.ErrInvalidPolicy)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewSpaceBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
