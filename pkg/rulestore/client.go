package rulestore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultTimeout   = 5 * time.Second
	defaultCacheSize = 256
	defaultCacheTTL  = 5 * time.Minute
)

// client is the rule store HTTP API client with an in-memory TTL cache.
// Rules change rarely relative to resolution runs, so repeated lookups
// for the same attendee within the TTL are served from the cache.
type client struct {
	baseURL    string
	httpClient *http.Client
	cache      *expirable.LRU[string, []string]
}

func newClient(cfg Config) (*client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("rulestore: BaseURL is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &client{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		cache:      expirable.NewLRU[string, []string](cfg.CacheSize, nil, cfg.CacheTTL),
	}, nil
}

// RulesFor returns the priority rules for a user, consulting the cache first.
func (c *client) RulesFor(ctx context.Context, email string) ([]string, error) {
	if rules, ok := c.cache.Get(email); ok {
		return rules, nil
	}

	endpoint := fmt.Sprintf("%s/api/v1/users/%s/rules", c.baseURL, url.PathEscape(email))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call rule store API: %w", err)
	}
	defer resp.Body.Close()

	// A user without rules is an empty rule set, not an error.
	if resp.StatusCode == http.StatusNotFound {
		c.cache.Add(email, nil)
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rule store API error: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var result rulesResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	c.cache.Add(email, result.Rules)
	return result.Rules, nil
}
