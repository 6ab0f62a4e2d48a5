package pastebin

import "errors"

// Sentinel errors for every failure class the client can report. Messages are
// short and user-presentable; surfaces show them as-is and must never see raw
// transport internals. Match with errors.Is.
var (
	// validation errors
	ErrInvalidText  = errors.New("no text to share")
	ErrTextTooLarge = errors.New("selection exceeds the size limit")

	// transport errors
	ErrNetwork = errors.New("could not reach the paste service")
	ErrTimeout = errors.New("the paste service did not respond in time")

	// service status errors
	ErrRateLimited  = errors.New("service is rate limited, try again later")
	ErrUnavailable  = errors.New("service temporarily unavailable")
	ErrUploadFailed = errors.New("upload failed")

	// retrieval errors
	ErrNotFound        = errors.New("paste not found")
	ErrInvalidArgument = errors.New("paste id is required")
)
