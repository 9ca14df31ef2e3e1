//go:build unit

package sweeper_test

import (
	"context"
	"testing"
	"time"

	"dozzze-checkout/internal/pkg/clock"
	"dozzze-checkout/internal/sweeper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	expired []uuid.UUID
	cleared []uuid.UUID
	failFor map[uuid.UUID]error
	gotNow  time.Time
}

func (f *fakeSource) ExpiredSessions(now time.Time) []uuid.UUID {
	f.gotNow = now
	return f.expired
}

func (f *fakeSource) Clear(_ context.Context, sessionID uuid.UUID) error {
	if err, ok := f.failFor[sessionID]; ok {
		return err
	}
	f.cleared = append(f.cleared, sessionID)
	return nil
}

func TestSweep(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	t.Run("clears every expired session", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		source := &fakeSource{expired: []uuid.UUID{a, b}}

		sweeper.New(source, clock.NewFixedClock(now), nil).Sweep()

		assert.Equal(t, []uuid.UUID{a, b}, source.cleared)
		assert.Equal(t, now, source.gotNow)
	})

	t.Run("a failing clear does not stop the pass", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		source := &fakeSource{
			expired: []uuid.UUID{a, b},
			failFor: map[uuid.UUID]error{a: assert.AnError},
		}

		sweeper.New(source, clock.NewFixedClock(now), nil).Sweep()

		assert.Equal(t, []uuid.UUID{b}, source.cleared)
	})

	t.Run("no expired sessions is a no-op", func(t *testing.T) {
		source := &fakeSource{}

		sweeper.New(source, clock.NewFixedClock(now), nil).Sweep()

		assert.Empty(t, source.cleared)
	})
}
