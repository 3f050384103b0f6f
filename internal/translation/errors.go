package translation

import (
	"errors"
	"fmt"
)

// UserMessage replaces the result shown to users when a translation fails
const UserMessage = "Error in translation. Please try again."

var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrInFlight            = errors.New("translation already in progress")
)

// Kind classifies translation failures
type Kind int

const (
	KindFailed Kind = iota
	KindUnsupportedLanguage
)

func (k Kind) String() string {
	switch k {
	case KindUnsupportedLanguage:
		return "unsupported language"
	default:
		return "translation failed"
	}
}

// Error is returned by Service implementations
type Error struct {
	Kind     Kind
	Language Language
	Err      error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s (%s)", e.Kind, e.Language)
	}
	return fmt.Sprintf("%s (%s): %v", e.Kind, e.Language, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
