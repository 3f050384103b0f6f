package translation

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// State is a snapshot of one assistance page's translation widget
type State struct {
	Text     string   `json:"text"`
	Language Language `json:"language"`
	Result   string   `json:"result"`
	InFlight bool     `json:"inFlight"`
}

// Session owns the translation state of a single page instance.
// At most one call is in flight at a time and calls are never cancelled.
type Session struct {
	mu       sync.Mutex
	state    State
	lastSeen time.Time

	svc    Service
	logger *slog.Logger
}

func NewSession(svc Service, defaultLanguage Language, logger *slog.Logger) *Session {
	return &Session{
		state:    State{Language: defaultLanguage},
		lastSeen: time.Now(),
		svc:      svc,
		logger:   logger,
	}
}

// Start launches a translation in the background and returns immediately.
// It returns ErrInFlight, leaving the state untouched, while a call is pending.
// The returned channel is closed once the result has been recorded.
func (s *Session) Start(ctx context.Context, text string, lang Language) (<-chan struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = time.Now()
	if s.state.InFlight {
		return nil, ErrInFlight
	}

	s.state.Text = text
	s.state.Language = lang
	s.state.InFlight = true

	done := make(chan struct{})
	// outlives the request that started it
	ctx = context.WithoutCancel(ctx)

	go func() {
		defer close(done)

		result, err := s.svc.Translate(ctx, text, lang)
		if err != nil {
			s.logger.Error("translation failed", "language", lang, "error", err)
			result = UserMessage
		}

		s.mu.Lock()
		s.state.Result = result
		s.state.InFlight = false
		s.mu.Unlock()
	}()

	return done, nil
}

// SetLanguage changes the selected target without starting a call
func (s *Session) SetLanguage(lang Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Language = lang
	s.lastSeen = time.Now()
}

// State returns a copy of the current widget state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	return s.state
}

// idleSince reports whether the session is idle and was last used before t
func (s *Session) idleSince(t time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.state.InFlight && s.lastSeen.Before(t)
}
