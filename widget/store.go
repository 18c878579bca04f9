package widget

import (
	"sync"
	"time"

	"github.com/rohanthewiz/logger"
)

// Store keeps one widget per browser session.
// Sessions idle longer than the TTL are evicted on the next access sweep.
type Store struct {
	searcher Searcher
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

type entry struct {
	widget   *Widget
	lastSeen time.Time
}

// NewStore creates an empty session store
func NewStore(searcher Searcher, ttl time.Duration) *Store {
	return &Store{
		searcher: searcher,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
}

// Get returns the widget for sessionID, creating it on first use
func (s *Store) Get(sessionID string) *Widget {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Expire idle sessions before looking up this one
	now := s.now()
	s.sweep(now)

	e, ok := s.sessions[sessionID]
	if !ok {
		e = &entry{widget: New(s.searcher)}
		s.sessions[sessionID] = e
		logger.Debug("Search session created", "session_id", sessionID)
	}
	e.lastSeen = now // touch
	return e.widget
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// sweep drops idle sessions. Caller holds s.mu.
func (s *Store) sweep(now time.Time) {
	for id, e := range s.sessions {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.sessions, id)
			logger.Debug("Search session expired", "session_id", id)
		}
	}
}
