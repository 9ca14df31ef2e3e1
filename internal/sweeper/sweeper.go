package sweeper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dozzze-checkout/internal/pkg/clock"
	"dozzze-checkout/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// SessionSource exposes the store operations the sweep needs.
type SessionSource interface {
	ExpiredSessions(now time.Time) []uuid.UUID
	Clear(ctx context.Context, sessionID uuid.UUID) error
}

// Sweeper periodically clears carts whose session token has lapsed. A cart
// must never outlive the session that owns it.
type Sweeper struct {
	source SessionSource
	clock  clock.Clock
	logger *slog.Logger
	cron   *cron.Cron
}

func New(source SessionSource, clk clock.Clock, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{
		source: source,
		clock:  clk,
		logger: logger,
	}
}

func (s *Sweeper) Start(cfg config.SweepConfig) error {
	c := cron.New()
	spec := fmt.Sprintf("@every %s", cfg.Interval)
	if _, err := c.AddFunc(spec, s.Sweep); err != nil {
		return fmt.Errorf("failed to schedule session sweep: %w", err)
	}
	c.Start()
	s.cron = c
	s.logger.Info("session sweep scheduled", "interval", cfg.Interval.String())
	return nil
}

func (s *Sweeper) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// Sweep runs one pass. Exported so tests and tooling can trigger it
// without waiting on the schedule.
func (s *Sweeper) Sweep() {
	ctx := context.Background()
	expired := s.source.ExpiredSessions(s.clock.Now())
	for _, id := range expired {
		if err := s.source.Clear(ctx, id); err != nil {
			s.logger.Warn("failed to clear expired session", "session_id", id, "error", err)
			continue
		}
		s.logger.Info("cleared expired session cart", "session_id", id)
	}
}
