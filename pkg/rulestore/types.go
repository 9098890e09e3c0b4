package rulestore

import (
	"net/http"
	"time"
)

// Config holds rule store client configuration
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	CacheSize  int
	CacheTTL   time.Duration
	HTTPClient *http.Client
}

// rulesResponse is the wire format of the rule store API
type rulesResponse struct {
	Email string   `json:"email"`
	Rules []string `json:"rules"`
}
