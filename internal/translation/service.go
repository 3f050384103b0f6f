package translation

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultDelay is the simulated latency of the mock service
const DefaultDelay = time.Second

// Service translates free text into a target language.
// Failures are reported as *Error.
type Service interface {
	Translate(ctx context.Context, text string, lang Language) (string, error)
}

// MockService stands in for a real translation backend. It echoes the input
// after a fixed delay and never fails on its own.
type MockService struct {
	delay  time.Duration
	logger *slog.Logger
}

func NewMockService(delay time.Duration, logger *slog.Logger) *MockService {
	return &MockService{
		delay:  delay,
		logger: logger.With("component", "mock-translation"),
	}
}

func (s *MockService) Translate(ctx context.Context, text string, lang Language) (string, error) {
	if _, ok := languageTags[lang]; !ok {
		return "", &Error{Kind: KindUnsupportedLanguage, Language: lang, Err: ErrUnsupportedLanguage}
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return "", &Error{Kind: KindFailed, Language: lang, Err: ctx.Err()}
	}

	s.logger.Debug("translated text", "language", lang, "length", len(text))
	return Format(text, lang), nil
}

// Format builds the echo string the mock returns
func Format(text string, lang Language) string {
	return fmt.Sprintf(`Translated: "%s" to %s`, text, lang)
}
