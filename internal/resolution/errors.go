package resolution

import "errors"

// Domain-specific errors for the resolution package.
var (
	ErrNoUsers       = errors.New("no users to resolve")
	ErrInvalidWindow = errors.New("window end must be after window start")
	ErrNoMeetings    = errors.New("no meetings supplied")
	ErrFreeBusyQuery = errors.New("free/busy query failed")
)
