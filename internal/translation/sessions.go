package translation

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sessions keeps one Session per browser, keyed by an opaque id
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*Session

	svc             Service
	defaultLanguage Language
	logger          *slog.Logger
}

func NewSessions(svc Service, defaultLanguage Language, logger *slog.Logger) *Sessions {
	return &Sessions{
		sessions:        make(map[string]*Session),
		svc:             svc,
		defaultLanguage: defaultLanguage,
		logger:          logger.With("component", "translation-sessions"),
	}
}

// Get returns the session for id, creating a new one under a fresh id when
// id is unknown. The returned id is the one the caller should keep.
func (s *Sessions) Get(id string) (string, *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		return id, sess
	}

	id = uuid.NewString()
	sess := NewSession(s.svc, s.defaultLanguage, s.logger.With("session_id", id))
	s.sessions[id] = sess
	return id, sess
}

// Len returns the number of live sessions
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Prune drops sessions idle for longer than maxIdle. Sessions with a call in
// flight are kept. It returns the number removed.
func (s *Sessions) Prune(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.idleSince(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Debug("pruned idle sessions", "removed", removed, "remaining", len(s.sessions))
	}
	return removed
}
