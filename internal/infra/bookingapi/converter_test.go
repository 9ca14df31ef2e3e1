//go:build unit

package bookingapi_test

import (
	"testing"
	"time"

	"dozzze-checkout/internal/domain/cart"
	"dozzze-checkout/internal/infra/bookingapi"
	"dozzze-checkout/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSubmissionRequest(t *testing.T) {
	t.Run("maps stamped items to wire rooms", func(t *testing.T) {
		checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		c := cart.NewCart()
		c.Add(builder.NewLineItemBuilder().
			WithPropertyID(7).
			WithRoomType("Suite").
			WithStay(checkIn, checkIn.AddDate(0, 0, 3)).
			WithTotalPrice(450).
			MustBuildDomain())
		c.StampGuest(builder.NewGuestBuilder().BuildDomain())

		req := bookingapi.BuildSubmissionRequest(c.Items(), nil)

		require.Len(t, req.Rooms, 1)
		room := req.Rooms[0]
		assert.Equal(t, int64(7), room.PropertyID)
		assert.Equal(t, "Suite", room.RoomType)
		assert.Equal(t, int64(11), room.RoomTypeID)
		assert.Equal(t, "2026-09-10", room.CheckIn)
		assert.Equal(t, "2026-09-13", room.CheckOut)
		assert.Equal(t, 450.0, room.TotalPrice)
		assert.Equal(t, "Maria Dolores", room.GuestName)
		assert.Equal(t, "maria@example.com", room.GuestEmail)
		assert.Nil(t, req.DiscountCode)
	})

	t.Run("carries the discount code when present", func(t *testing.T) {
		code := "SUMMER10"
		req := bookingapi.BuildSubmissionRequest(nil, &code)

		require.NotNil(t, req.DiscountCode)
		assert.Equal(t, "SUMMER10", *req.DiscountCode)
		assert.Empty(t, req.Rooms)
	})

	t.Run("preserves item order", func(t *testing.T) {
		c := cart.NewCart()
		c.Add(builder.NewLineItemBuilder().WithPropertyID(1).MustBuildDomain())
		c.Add(builder.NewLineItemBuilder().WithPropertyID(2).MustBuildDomain())

		req := bookingapi.BuildSubmissionRequest(c.Items(), nil)

		require.Len(t, req.Rooms, 2)
		assert.Equal(t, int64(1), req.Rooms[0].PropertyID)
		assert.Equal(t, int64(2), req.Rooms[1].PropertyID)
	})
}

func TestParseWireDate(t *testing.T) {
	got, err := bookingapi.ParseWireDate("2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), got)

	_, err = bookingapi.ParseWireDate("10/09/2026")
	assert.Error(t, err)
}
