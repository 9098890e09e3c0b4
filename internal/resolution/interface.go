package resolution

import (
	"context"

	"meeting-conflict-resolver/internal/model"
)

// UseCase is the business logic interface for the resolution domain.
type UseCase interface {
	// Resolve reads calendars for the requested users and window, detects
	// conflicting meetings, and proposes (mode=propose) or books
	// (mode=apply) non-conflicting replacement slots.
	Resolve(ctx context.Context, sc model.Scope, input ResolveInput) (ResolveOutput, error)

	// ResolveDirect runs the same pipeline on a caller-supplied list of
	// meetings already known to conflict, with pre-scored candidate
	// slots. No calendar reads are performed.
	ResolveDirect(ctx context.Context, sc model.Scope, input ResolveDirectInput) (ResolveOutput, error)
}
