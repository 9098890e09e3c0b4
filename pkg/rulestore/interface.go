package rulestore

import "context"

// IRuleStore fetches per-user scheduling priority rules.
type IRuleStore interface {
	// RulesFor returns the priority rules recorded for the given user email.
	// A user with no rules yields an empty slice, not an error.
	RulesFor(ctx context.Context, email string) ([]string, error)
}

// New creates a new rule store client
func New(cfg Config) (IRuleStore, error) {
	return newClient(cfg)
}
