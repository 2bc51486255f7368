package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the unit of state isolation. Every request carrying the same
// session id shares one rating store and one favorites store, and nothing
// leaks between ids. Sessions live in memory only and disappear on restart
// or eviction.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Ratings   *RatingStore
	Favorites *FavoriteStore

	mu       sync.Mutex
	lastSeen time.Time
}

func newSession(id uuid.UUID) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		CreatedAt: now,
		Ratings:   NewRatingStore(),
		Favorites: NewFavoriteStore(),
		lastSeen:  now,
	}
}

// Touch marks the session as just used, pushing eviction out by one TTL.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

// LastSeen returns the time of the most recent Touch.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
