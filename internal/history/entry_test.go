package history

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEntry_PreviewTruncation(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		length int
		want   string
	}{
		{name: "short text kept whole", text: "hello", length: 10, want: "hello"},
		{name: "exactly at limit", text: "0123456789", length: 10, want: "0123456789"},
		{name: "truncated with ellipsis", text: "0123456789x", length: 10, want: "0123456789..."},
		{name: "multibyte runes not split", text: strings.Repeat("я", 12), length: 10, want: strings.Repeat("я", 10) + "..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEntry(tc.text, "https://paste.rs/a", tc.length)
			assert.Equal(t, tc.want, e.Text)
			assert.NotEmpty(t, e.ID)
			assert.True(t, e.CreatedAt.IsZero(), "timestamp is assigned at storage time")
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	e := &Entry{Text: "Hello World", Link: "https://paste.rs/abc", CreatedAt: now}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{name: "empty filter matches", filter: Filter{}, want: true},
		{name: "case-insensitive text match", filter: Filter{Query: "hello"}, want: true},
		{name: "link match", filter: Filter{Query: "paste.rs/abc"}, want: true},
		{name: "no match", filter: Filter{Query: "goodbye"}, want: false},
		{name: "within date range", filter: Filter{From: now.Add(-time.Hour), To: now.Add(time.Hour)}, want: true},
		{name: "before From", filter: Filter{From: now.Add(time.Minute)}, want: false},
		{name: "after To", filter: Filter{To: now.Add(-time.Minute)}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.Matches(e))
		})
	}
}
