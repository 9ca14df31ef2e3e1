//go:build unit

package cartstore

import (
	"context"
	"testing"

	"dozzze-checkout/internal/domain/cart"
	"dozzze-checkout/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearInvalidatesHeldEntries(t *testing.T) {
	ctx := context.Background()
	store := NewStore(nil, nil)
	sessionID := uuid.New()

	require.NoError(t, store.Within(ctx, sessionID, func(s *cart.Session) error {
		s.Cart().Add(builder.NewLineItemBuilder().MustBuildDomain())
		return nil
	}))

	// Simulate a goroutine that fetched the entry just before the clear.
	stale := store.entryFor(sessionID)
	require.NoError(t, store.Clear(ctx, sessionID))

	stale.mu.Lock()
	assert.True(t, stale.cleared)
	stale.mu.Unlock()

	// The raced mutation lands on a fresh entry, never on the invalidated
	// one, so the cleared state cannot come back.
	require.NoError(t, store.Within(ctx, sessionID, func(s *cart.Session) error {
		assert.True(t, s.Cart().IsEmpty())
		return nil
	}))
	require.NoError(t, store.View(ctx, sessionID, func(s *cart.Session) error {
		assert.True(t, s.Cart().IsEmpty())
		return nil
	}))
}
