package pastebin

import (
	"fmt"
	"strings"
)

// DefaultMaxTextLength bounds a single share. paste.rs itself truncates
// anything above its own ceiling, so there is no point shipping more.
const DefaultMaxTextLength = 500_000

// Validator checks candidate text before any network call is attempted.
type Validator struct {
	maxLength int
}

// NewValidator returns a Validator with the given size ceiling in characters.
// A non-positive maxLength falls back to DefaultMaxTextLength.
func NewValidator(maxLength int) *Validator {
	if maxLength <= 0 {
		maxLength = DefaultMaxTextLength
	}
	return &Validator{maxLength: maxLength}
}

// Validate returns nil when text is shareable, ErrInvalidText when it is
// empty or whitespace-only, and ErrTextTooLarge when it exceeds the ceiling.
// Pure function, no side effects.
func (v *Validator) Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrInvalidText
	}
	if len(text) > v.maxLength {
		return fmt.Errorf("%w: %d characters, limit is %d", ErrTextTooLarge, len(text), v.maxLength)
	}
	return nil
}
