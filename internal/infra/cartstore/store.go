package cartstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dozzze-checkout/internal/domain/cart"

	"github.com/google/uuid"
)

// Store owns the canonical in-memory session containers. All reads and
// writes go through Within/View, which serialize access per session; two
// mutations of the same cart never interleave mid-update.
//
// Snapshots are written through to the repository after each mutation as a
// caching convenience, not a durability guarantee.
type Store struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]*sessionEntry
	snapshots SnapshotRepository
	logger    *slog.Logger
}

type sessionEntry struct {
	mu          sync.Mutex
	session     *cart.Session
	loaded      bool
	cleared     bool
	tokenExpiry time.Time
}

// SnapshotRepository persists the allow-listed session slices keyed by
// session id. A nil repository disables persistence entirely.
type SnapshotRepository interface {
	Save(ctx context.Context, sessionID uuid.UUID, slices map[string][]byte) error
	Load(ctx context.Context, sessionID uuid.UUID) (map[string][]byte, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

func NewStore(snapshots SnapshotRepository, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		sessions:  make(map[uuid.UUID]*sessionEntry),
		snapshots: snapshots,
		logger:    logger,
	}
}

// Within runs fn with exclusive access to the session state and writes the
// snapshot through afterwards. The error from fn is returned unchanged;
// snapshot failures are logged, never surfaced, and never roll back the
// in-memory mutation.
func (s *Store) Within(ctx context.Context, sessionID uuid.UUID, fn func(*cart.Session) error) error {
	entry := s.lockLive(ctx, sessionID, true)
	defer entry.mu.Unlock()

	if err := fn(entry.session); err != nil {
		return err
	}

	s.persist(ctx, sessionID, entry.session)
	return nil
}

// View runs fn with exclusive read access; no snapshot is written.
func (s *Store) View(ctx context.Context, sessionID uuid.UUID, fn func(*cart.Session) error) error {
	entry := s.lockLive(ctx, sessionID, true)
	defer entry.mu.Unlock()
	return fn(entry.session)
}

// Clear wipes the session state and drops its persisted snapshot. Invoked
// by logout, by detected token loss and after a confirmed payment return.
// The entry is marked cleared before the row is deleted so a mutation that
// raced the clear retries on a fresh entry instead of writing the old
// state back through.
func (s *Store) Clear(ctx context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	entry, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if ok {
		entry.mu.Lock()
		entry.cleared = true
		if entry.session != nil {
			entry.session.Clear()
		}
		entry.mu.Unlock()
	}

	if s.snapshots != nil {
		if err := s.snapshots.Delete(ctx, sessionID); err != nil {
			s.logger.Warn("failed to delete cart snapshot", "session_id", sessionID, "error", err)
		}
	}
	return nil
}

// Touch records the session-token expiry so the liveness sweep can clear
// carts whose tokens have lapsed. The snapshot stays unloaded until the
// first real read or mutation.
func (s *Store) Touch(ctx context.Context, sessionID uuid.UUID, tokenExpiry time.Time) {
	entry := s.lockLive(ctx, sessionID, false)
	entry.tokenExpiry = tokenExpiry
	entry.mu.Unlock()
}

// ExpiredSessions returns ids whose recorded token expiry is before now.
func (s *Store) ExpiredSessions(now time.Time) []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expired []uuid.UUID
	for id, entry := range s.sessions {
		entry.mu.Lock()
		if !entry.tokenExpiry.IsZero() && entry.tokenExpiry.Before(now) {
			expired = append(expired, id)
		}
		entry.mu.Unlock()
	}
	return expired
}

// lockLive returns the current entry for the session with its mutex held.
// An entry invalidated by a concurrent Clear is discarded and re-fetched.
// The snapshot load runs under the entry lock only, so a slow load never
// blocks other sessions behind the store-wide lock.
func (s *Store) lockLive(ctx context.Context, sessionID uuid.UUID, load bool) *sessionEntry {
	for {
		entry := s.entryFor(sessionID)
		entry.mu.Lock()
		if entry.cleared {
			entry.mu.Unlock()
			continue
		}
		if load && !entry.loaded {
			entry.session = s.loadOrNew(ctx, sessionID)
			entry.loaded = true
		}
		return entry
	}
}

func (s *Store) entryFor(sessionID uuid.UUID) *sessionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.sessions[sessionID]; ok {
		return entry
	}

	entry := &sessionEntry{}
	s.sessions[sessionID] = entry
	return entry
}

func (s *Store) loadOrNew(ctx context.Context, sessionID uuid.UUID) *cart.Session {
	if s.snapshots == nil {
		return cart.NewSession()
	}

	slices, err := s.snapshots.Load(ctx, sessionID)
	if err != nil {
		s.logger.Warn("failed to load cart snapshot", "session_id", sessionID, "error", err)
		return cart.NewSession()
	}
	if len(slices) == 0 {
		return cart.NewSession()
	}

	session, err := decodeSession(slices)
	if err != nil {
		s.logger.Warn("discarding unreadable cart snapshot", "session_id", sessionID, "error", err)
		return cart.NewSession()
	}
	return session
}

func (s *Store) persist(ctx context.Context, sessionID uuid.UUID, session *cart.Session) {
	if s.snapshots == nil {
		return
	}

	slices, err := encodeSession(session)
	if err != nil {
		s.logger.Warn("failed to encode cart snapshot", "session_id", sessionID, "error", err)
		return
	}
	if err := s.snapshots.Save(ctx, sessionID, slices); err != nil {
		s.logger.Warn("failed to save cart snapshot", "session_id", sessionID, "error", err)
	}
}
