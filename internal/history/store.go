package history

import (
	"context"
	"strings"
	"time"
)

// Filter narrows a history search. Zero values match everything.
type Filter struct {
	// Query is matched case-insensitively against entry text and link.
	Query string
	// From and To bound the entry timestamp (inclusive).
	From time.Time
	To   time.Time
}

// Matches reports whether e satisfies the filter.
func (f Filter) Matches(e *Entry) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(e.Text), q) &&
			!strings.Contains(strings.ToLower(e.Link), q) {
			return false
		}
	}
	if !f.From.IsZero() && e.CreatedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && e.CreatedAt.After(f.To) {
		return false
	}
	return true
}

// Store is the share-history contract. All implementations keep entries
// newest first, bound the list to a fixed capacity by evicting the oldest,
// and serialize concurrent appends so no completed share is lost.
type Store interface {
	// Add appends an entry, stamping its timestamp, and evicts beyond capacity.
	Add(ctx context.Context, entry *Entry) error

	// List returns all retained entries, newest first.
	List(ctx context.Context) ([]Entry, error)

	// Search returns retained entries matching the filter, newest first.
	Search(ctx context.Context, filter Filter) ([]Entry, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error

	Close() error
}
