// Package dispatch routes action requests from UI surfaces (CLI, local HTTP
// API, clipboard agent) to their handlers. Each action is its own request
// type with a typed result, so surfaces never branch on action strings.
package dispatch

import "github.com/sharepad/sharepad/internal/history"

// Request is implemented by exactly one type per action.
type Request interface {
	isRequest()
}

// CreateShareLink uploads text and, on success, appends a history entry.
// An empty Text falls back to the most recently reported selection.
type CreateShareLink struct {
	Text string `json:"text"`
}

// Ping reports whether the router is ready to serve.
type Ping struct{}

// TextSelected records the user's current selection for a later share.
type TextSelected struct {
	Text string `json:"text"`
}

// GetShareHistory returns the retained share history, newest first.
type GetShareHistory struct{}

// ClearShareHistory removes every retained entry.
type ClearShareHistory struct{}

// GetLogs returns recently captured log lines.
type GetLogs struct{}

func (CreateShareLink) isRequest()   {}
func (Ping) isRequest()              {}
func (TextSelected) isRequest()      {}
func (GetShareHistory) isRequest()   {}
func (ClearShareHistory) isRequest() {}
func (GetLogs) isRequest()           {}

// ShareLinkResult is the outcome of CreateShareLink. Error carries a short
// user-presentable message, never raw transport internals.
type ShareLinkResult struct {
	Success       bool   `json:"success"`
	Link          string `json:"link,omitempty"`
	ID            string `json:"id,omitempty"`
	Error         string `json:"error,omitempty"`
	StatusCode    int    `json:"status_code,omitempty"`
	PartialUpload bool   `json:"partial_upload,omitempty"`
}

type PingResult struct {
	Success bool `json:"success"`
	Ready   bool `json:"ready"`
}

type TextSelectedResult struct {
	Received bool `json:"received"`
}

type HistoryResult struct {
	Success bool            `json:"success"`
	History []history.Entry `json:"history"`
}

type ClearResult struct {
	Success bool `json:"success"`
}

type LogsResult struct {
	Success bool     `json:"success"`
	Logs    []string `json:"logs"`
}
