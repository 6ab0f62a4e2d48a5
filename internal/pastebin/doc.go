// Package pastebin implements the client for a paste.rs-style text hosting
// service: input validation, an HTTP transport with per-attempt timeouts and
// bounded retry on timeout, upload with status-code interpretation, and
// retrieval of previously uploaded pastes.
//
// Upload never returns a Go error; callers always receive an UploadResult
// tagged with success or a short, human-readable failure. Retrieve returns
// regular errors since it is not consumed by a UI surface.
package pastebin
