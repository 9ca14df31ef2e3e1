//go:build unit

package cart_test

import (
	"testing"
	"time"

	"dozzze-checkout/internal/domain/cart"
	"dozzze-checkout/internal/domain/guest"
	"dozzze-checkout/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.LineItemBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewLineItemBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			item, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, item)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, item)
		})
	}
}

func TestLineItem(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewLineItemBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, int64(1), actual.PropertyID())
		assert.Equal(t, "EUR", actual.Currency())
		assert.Equal(t, 2, actual.Nights())
		assert.Empty(t, actual.Terms())
		assert.Nil(t, actual.ReservationID())
	})

	t.Run("stay validation", func(t *testing.T) {
		checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		runCases(t, []testCase{
			{
				name:   "check-out equals check-in",
				mutate: func(b *builder.LineItemBuilder) { b.WithStay(checkIn, checkIn) },
				errIs:  cart.ErrInvalidStay,
			},
			{
				name:   "check-out before check-in",
				mutate: func(b *builder.LineItemBuilder) { b.WithStay(checkIn, checkIn.AddDate(0, 0, -1)) },
				errIs:  cart.ErrInvalidStay,
			},
			{
				name:   "single night stay",
				mutate: func(b *builder.LineItemBuilder) { b.WithStay(checkIn, checkIn.AddDate(0, 0, 1)) },
			},
		})
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "negative price",
				mutate: func(b *builder.LineItemBuilder) { b.WithTotalPrice(-0.01) },
				errIs:  cart.ErrNegativePrice,
			},
			{
				name:   "zero price",
				mutate: func(b *builder.LineItemBuilder) { b.WithTotalPrice(0) },
			},
		})
	})

	t.Run("occupancy validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero pax",
				mutate: func(b *builder.LineItemBuilder) { b.WithPaxCount(0) },
				errIs:  cart.ErrInvalidPax,
			},
			{
				name:   "zero rooms",
				mutate: func(b *builder.LineItemBuilder) { b.WithRooms(0) },
				errIs:  cart.ErrInvalidRooms,
			},
			{
				name:   "single pax single room",
				mutate: func(b *builder.LineItemBuilder) { b.WithPaxCount(1).WithRooms(1) },
			},
		})
	})

	t.Run("currency validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty currency",
				mutate: func(b *builder.LineItemBuilder) { b.WithCurrency("") },
				errIs:  cart.ErrInvalidCurrency,
			},
			{
				name:   "too long currency",
				mutate: func(b *builder.LineItemBuilder) { b.WithCurrency("EURO") },
				errIs:  cart.ErrInvalidCurrency,
			},
			{
				name:   "lowercase currency is normalized",
				mutate: func(b *builder.LineItemBuilder) { b.WithCurrency("eur") },
			},
		})
	})

	t.Run("currency normalization", func(t *testing.T) {
		actual, err := builder.NewLineItemBuilder().WithCurrency(" usd ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "USD", actual.Currency())
	})

	t.Run("id uniqueness", func(t *testing.T) {
		first := builder.NewLineItemBuilder().MustBuildDomain()
		second := builder.NewLineItemBuilder().MustBuildDomain()
		assert.NotEqual(t, first.ID(), second.ID())
	})
}

func TestLineItemPatch(t *testing.T) {
	t.Run("merges only present fields", func(t *testing.T) {
		c := cart.NewCart()
		c.Add(builder.NewLineItemBuilder().MustBuildDomain())

		terms := "Non-refundable rate"
		require.True(t, c.UpdateAt(0, cart.LineItemPatch{Terms: &terms}))

		item := c.Items()[0]
		assert.Equal(t, terms, item.Terms())
		assert.Equal(t, "Seaside Hotel", item.PropertyName())
	})

	t.Run("stamps guest and reservation id", func(t *testing.T) {
		c := cart.NewCart()
		c.Add(builder.NewLineItemBuilder().MustBuildDomain())

		details := guest.NewDetails("Maria Dolores", "maria@example.com", "+34600123456", "", "", "")
		reservationID := int64(4242)
		require.True(t, c.UpdateAt(0, cart.LineItemPatch{Guest: &details, ReservationID: &reservationID}))

		item := c.Items()[0]
		assert.Equal(t, "Maria Dolores", item.Guest().Name())
		require.NotNil(t, item.ReservationID())
		assert.Equal(t, reservationID, *item.ReservationID())
	})
}
