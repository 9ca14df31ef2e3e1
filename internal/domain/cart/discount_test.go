//go:build unit

package cart_test

import (
	"testing"

	"dozzze-checkout/internal/domain/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerApply(t *testing.T) {
	t.Run("coupon activates with percent", func(t *testing.T) {
		l := cart.NewLedger()
		superseded, err := l.ApplyCoupon("SUMMER10", "Summer promo", 10)
		require.NoError(t, err)
		assert.Nil(t, superseded)

		active := l.Active()
		require.NotNil(t, active)
		assert.Equal(t, cart.KindCoupon, active.Kind())
		assert.Equal(t, "SUMMER10", active.Code())
		assert.Equal(t, 10.0, active.PercentOff())
	})

	t.Run("voucher activates with amount", func(t *testing.T) {
		l := cart.NewLedger()
		superseded, err := l.ApplyVoucher("GIFT50", 50)
		require.NoError(t, err)
		assert.Nil(t, superseded)

		active := l.Active()
		require.NotNil(t, active)
		assert.Equal(t, cart.KindVoucher, active.Kind())
		assert.Equal(t, 50.0, active.RemainingAmount())
	})

	t.Run("new code silently supersedes the previous one", func(t *testing.T) {
		l := cart.NewLedger()
		_, err := l.ApplyCoupon("FIRST", "", 10)
		require.NoError(t, err)

		superseded, err := l.ApplyVoucher("SECOND", 25)
		require.NoError(t, err)
		require.NotNil(t, superseded)
		assert.Equal(t, "FIRST", *superseded)

		active := l.Active()
		require.NotNil(t, active)
		assert.Equal(t, "SECOND", active.Code())
		assert.Equal(t, cart.KindVoucher, active.Kind())
	})

	t.Run("validation", func(t *testing.T) {
		l := cart.NewLedger()

		_, err := l.ApplyCoupon("", "", 10)
		assert.ErrorIs(t, err, cart.ErrEmptyCode)

		_, err = l.ApplyCoupon("X", "", -1)
		assert.ErrorIs(t, err, cart.ErrInvalidPercent)

		_, err = l.ApplyCoupon("X", "", 101)
		assert.ErrorIs(t, err, cart.ErrInvalidPercent)

		_, err = l.ApplyVoucher("X", -5)
		assert.ErrorIs(t, err, cart.ErrNegativeVoucher)

		// Failed applications never disturb the ledger
		assert.Nil(t, l.Active())
	})

	t.Run("clear deactivates", func(t *testing.T) {
		l := cart.NewLedger()
		_, err := l.ApplyCoupon("SUMMER10", "", 10)
		require.NoError(t, err)

		l.Clear()
		assert.Nil(t, l.Active())
	})

	t.Run("active returns a copy", func(t *testing.T) {
		l := cart.NewLedger()
		_, err := l.ApplyCoupon("SUMMER10", "", 10)
		require.NoError(t, err)

		first := l.Active()
		second := l.Active()
		assert.NotSame(t, first, second)
		assert.Equal(t, *first, *second)
	})
}

func TestDiscountApply(t *testing.T) {
	t.Run("coupon is proportional", func(t *testing.T) {
		d := cart.ReconstructDiscount(cart.KindCoupon, "TEN", "", 10, 0)
		assert.InDelta(t, 180.0, d.Apply(200.0), 1e-9)
		assert.InDelta(t, 0.0, d.Apply(0.0), 1e-9)
	})

	t.Run("full percent zeroes the total", func(t *testing.T) {
		d := cart.ReconstructDiscount(cart.KindCoupon, "FREE", "", 100, 0)
		assert.InDelta(t, 0.0, d.Apply(123.45), 1e-9)
	})

	t.Run("voucher is a fixed deduction", func(t *testing.T) {
		d := cart.ReconstructDiscount(cart.KindVoucher, "GIFT", "", 0, 30)
		assert.InDelta(t, 70.0, d.Apply(100.0), 1e-9)
	})

	t.Run("voucher floors at zero", func(t *testing.T) {
		d := cart.ReconstructDiscount(cart.KindVoucher, "GIFT", "", 0, 80)
		assert.InDelta(t, 0.0, d.Apply(50.0), 1e-9)
	})
}
