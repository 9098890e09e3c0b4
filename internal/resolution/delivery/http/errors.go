package http

import (
	"errors"

	"meeting-conflict-resolver/internal/resolution"
)

var errMeetingWindow = errors.New("meeting end_time must be after start_time")

// badRequest reports whether the error is a caller mistake rather than
// a backend failure.
func badRequest(err error) bool {
	return errors.Is(err, resolution.ErrNoUsers) ||
		errors.Is(err, resolution.ErrInvalidWindow) ||
		errors.Is(err, resolution.ErrNoMeetings)
}
