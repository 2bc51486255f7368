package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionRepository hands out sessions by id and evicts the ones nobody
// has touched within the TTL.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	logger   *zap.Logger
}

func NewSessionRepository(ttl time.Duration, logger *zap.Logger) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		logger:   logger,
	}
}

// GetOrCreate returns the session with the given id, creating it when the
// id is unknown or already evicted. The zero uuid always starts a fresh
// session with a new random id. The returned session is touched.
func (r *SessionRepository) GetOrCreate(id uuid.UUID) *Session {
	if id == uuid.Nil {
		id = uuid.New()
	}

	r.mu.RLock()
	sess, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		sess.Touch()
		return sess
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if sess, ok = r.sessions[id]; ok {
		sess.Touch()
		return sess
	}
	sess = newSession(id)
	r.sessions[id] = sess
	r.logger.Debug("session created", zap.String("session_id", id.String()))
	return sess
}

// Get returns an existing session without creating one.
func (r *SessionRepository) Get(id uuid.UUID) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[id]
	return sess, ok
}

// Len returns the number of live sessions.
func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Cleanup evicts every session idle for longer than the TTL and returns
// how many went. A TTL of zero disables eviction.
func (r *SessionRepository) Cleanup() int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := time.Now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for id, sess := range r.sessions {
		if sess.LastSeen().Before(cutoff) {
			delete(r.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		r.logger.Info("evicted idle sessions",
			zap.Int("count", evicted),
			zap.Int("remaining", len(r.sessions)))
	}
	return evicted
}

// StartJanitor runs Cleanup on the given interval until ctx is canceled.
// Run it in its own goroutine.
func (r *SessionRepository) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Cleanup()
		}
	}
}
