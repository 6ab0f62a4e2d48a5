// Package history persists the local record of past shares: a bounded,
// newest-first list of entries behind a Store interface with in-memory,
// SQLite, and Redis implementations.
package history

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultCapacity is how many shares the store retains before evicting
	// the oldest.
	DefaultCapacity = 50

	// DefaultPreviewLength bounds the stored text preview. The full content
	// lives on the paste service; the history only needs enough to recognize
	// an entry in a list.
	DefaultPreviewLength = 100
)

// Entry is one successful share. Entries are immutable after creation and
// destroyed only by eviction or an explicit clear-all.
type Entry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"timestamp"`
}

// NewEntry builds an entry with a fresh id and a truncated preview of text.
// The timestamp is assigned by the store at write time.
func NewEntry(text, link string, previewLength int) *Entry {
	if previewLength <= 0 {
		previewLength = DefaultPreviewLength
	}
	return &Entry{
		ID:   uuid.NewString(),
		Text: preview(text, previewLength),
		Link: link,
	}
}

// preview truncates s to at most n runes, appending an ellipsis when
// anything was cut off.
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
