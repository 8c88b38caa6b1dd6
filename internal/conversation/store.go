package conversation

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// DefaultMaxTurns bounds the per-session sliding window.
	DefaultMaxTurns = 20

	// DefaultMaxSessions bounds how many concurrent sessions are retained.
	DefaultMaxSessions = 1000

	// DefaultSessionTTL evicts sessions idle for longer than this.
	DefaultSessionTTL = 30 * time.Minute
)

// Store holds per-session conversation histories. Sessions are kept in
// an expirable LRU so idle conversations age out and total memory stays
// bounded. Nothing is persisted beyond process lifetime.
type Store struct {
	sessions *expirable.LRU[string, *History]
	maxTurns int
}

// StoreConfig tunes the session store. Zero values use the defaults.
type StoreConfig struct {
	MaxTurns    int
	MaxSessions int
	SessionTTL  time.Duration
}

// NewStore creates a session store.
func NewStore(cfg StoreConfig) *Store {
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = DefaultMaxTurns
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}

	return &Store{
		sessions: expirable.NewLRU[string, *History](cfg.MaxSessions, nil, cfg.SessionTTL),
		maxTurns: cfg.MaxTurns,
	}
}

// Get returns the history for a session, creating it on first use.
func (s *Store) Get(sessionID string) *History {
	if h, ok := s.sessions.Get(sessionID); ok {
		return h
	}
	h := NewHistory(s.maxTurns)
	s.sessions.Add(sessionID, h)
	return h
}

// Lookup returns the history for a session without creating one.
func (s *Store) Lookup(sessionID string) (*History, bool) {
	return s.sessions.Get(sessionID)
}

// Reset drops a session's history entirely.
func (s *Store) Reset(sessionID string) {
	s.sessions.Remove(sessionID)
}
