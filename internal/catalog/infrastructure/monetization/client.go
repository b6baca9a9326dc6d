// Package monetization implements the catalog source against the host
// platform's monetization service over HTTP.
package monetization

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/felixgeelhaar/vocalis/internal/catalog/domain"
	"github.com/sony/gobreaker/v2"
)

// ClientConfig configures the monetization service client.
type ClientConfig struct {
	// BaseURL is the monetization service endpoint.
	BaseURL string

	// Timeout bounds a single catalog request.
	Timeout time.Duration

	// MaxRequests is the maximum number of requests allowed in half-open state.
	MaxRequests uint32

	// Interval is the cyclic period of the closed state.
	Interval time.Duration

	// BreakerTimeout is the period of the open state.
	BreakerTimeout time.Duration

	// FailureThreshold trips the breaker after this many consecutive failures.
	FailureThreshold uint32
}

// DefaultClientConfig returns a sensible default configuration.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Timeout:          5 * time.Second,
		MaxRequests:      3,
		Interval:         10 * time.Second,
		BreakerTimeout:   30 * time.Second,
		FailureThreshold: 5,
	}
}

// Client fetches the in-skill product catalog over HTTP, guarded by a
// circuit breaker so a degraded monetization backend fails fast instead of
// stalling the turn.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[domain.List]
	logger  *slog.Logger
}

// NewClient creates a new monetization service client.
func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	settings := gobreaker.Settings{
		Name:        "monetization",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit breaker state changed",
				"service", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker[domain.List](settings),
		logger:  logger,
	}
}

// catalogEnvelope is the wire shape of the catalog listing.
type catalogEnvelope struct {
	InSkillProducts []domain.Product `json:"inSkillProducts"`
}

// FetchCatalog returns the product catalog for the locale.
func (c *Client) FetchCatalog(ctx context.Context, locale string) (domain.List, error) {
	return c.breaker.Execute(func() (domain.List, error) {
		return c.fetch(ctx, locale)
	})
}

func (c *Client) fetch(ctx context.Context, locale string) (domain.List, error) {
	endpoint := fmt.Sprintf("%s/v1/users/~current/skills/~current/inSkillProducts", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", locale)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog request returned status %d", resp.StatusCode)
	}

	var envelope catalogEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	c.logger.Debug("catalog fetched",
		"locale", locale,
		"products", len(envelope.InSkillProducts),
	)

	return domain.List(envelope.InSkillProducts), nil
}

var _ domain.Source = (*Client)(nil)

// StaticSource serves a fixed catalog. It backs development mode and tests
// where no monetization service is reachable.
type StaticSource struct {
	list domain.List
}

// NewStaticSource creates a source that always returns list.
func NewStaticSource(list domain.List) *StaticSource {
	return &StaticSource{list: list}
}

// FetchCatalog returns the fixed catalog regardless of locale.
func (s *StaticSource) FetchCatalog(ctx context.Context, locale string) (domain.List, error) {
	return s.list, nil
}

var _ domain.Source = (*StaticSource)(nil)
