//go:build unit

package queries_test

import (
	"context"
	"testing"

	"dozzze-checkout/internal/domain/cart"
	"dozzze-checkout/internal/infra/cartstore"
	"dozzze-checkout/internal/usecase/queries"
	"dozzze-checkout/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartQueriesGet(t *testing.T) {
	ctx := context.Background()

	t.Run("empty session yields an empty view", func(t *testing.T) {
		store := cartstore.NewStore(nil, nil)
		q := queries.NewCartQueries(store)

		view, err := q.Get(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, view.Items)
		assert.Zero(t, view.Quote.GrandTotalRaw)
		assert.Nil(t, view.Discount)
		assert.Equal(t, "idle", view.Gate)
	})

	t.Run("totals are rounded for display only", func(t *testing.T) {
		store := cartstore.NewStore(nil, nil)
		q := queries.NewCartQueries(store)
		sessionID := uuid.New()

		// 33.336 + 33.336 = 66.672 raw; a 10% coupon leaves 60.0048
		require.NoError(t, store.Within(ctx, sessionID, func(s *cart.Session) error {
			s.Cart().Add(builder.NewLineItemBuilder().WithTotalPrice(33.336).MustBuildDomain())
			s.Cart().Add(builder.NewLineItemBuilder().WithTotalPrice(33.336).MustBuildDomain())
			_, err := s.Ledger().ApplyCoupon("TEN", "Ten percent", 10)
			return err
		}))

		view, err := q.Get(ctx, sessionID)
		require.NoError(t, err)
		require.Len(t, view.Items, 2)
		assert.Equal(t, 33.34, view.Items[0].TotalPrice)
		assert.Equal(t, 66.67, view.Quote.GrandTotalRaw)
		assert.Equal(t, 60.0, view.Quote.GrandTotalDiscounted)
		assert.Equal(t, 66.67, view.Quote.PerPropertyTotals[1])
	})

	t.Run("view carries item metadata and active discount", func(t *testing.T) {
		store := cartstore.NewStore(nil, nil)
		q := queries.NewCartQueries(store)
		sessionID := uuid.New()

		require.NoError(t, store.Within(ctx, sessionID, func(s *cart.Session) error {
			s.Cart().Add(builder.NewLineItemBuilder().MustBuildDomain())
			_, err := s.Ledger().ApplyVoucher("GIFT50", 50)
			return err
		}))

		view, err := q.Get(ctx, sessionID)
		require.NoError(t, err)

		require.Len(t, view.Items, 1)
		item := view.Items[0]
		assert.Equal(t, 0, item.Index)
		assert.Equal(t, "2026-09-10", item.CheckIn)
		assert.Equal(t, "2026-09-12", item.CheckOut)
		assert.Equal(t, 2, item.Nights)

		require.NotNil(t, view.Discount)
		assert.Equal(t, "voucher", view.Discount.Kind)
		assert.Equal(t, 50.0, view.Discount.RemainingAmount)
	})
}
