package youtube

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"ytreport/internal/retry"
)

// Client wraps the YouTube Data API v3 service and tracks estimated
// quota usage so a run that burns through search calls (100 units each)
// leaves a diagnostic trail in the logs.
type Client struct {
	service     *youtube.Service
	RetryConfig retry.Config

	mu             sync.Mutex
	estimatedQuota int
}

// defaultDailyQuota is the default daily quota for a YouTube Data API key.
const defaultDailyQuota = 10000

// NewClient creates an API-key-authenticated YouTube Data API client.
func NewClient(ctx context.Context, apiKey string, retryCfg retry.Config) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Client{
		service:        service,
		RetryConfig:    retryCfg,
		estimatedQuota: defaultDailyQuota,
	}, nil
}

// EstimatedQuota returns the estimated remaining quota units.
func (c *Client) EstimatedQuota() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.estimatedQuota
}

// trackQuotaUsage updates the estimated remaining quota.
func (c *Client) trackQuotaUsage(units int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.estimatedQuota -= units
	if c.estimatedQuota < 0 {
		log.Printf("youtube: estimated quota exhausted (%d units over)", -c.estimatedQuota)
		return
	}
	log.Printf("youtube: quota usage - remaining: %d units", c.estimatedQuota)
}

// lookupErrorClassifier determines if an API error is retryable.
func lookupErrorClassifier(err error) bool {
	if err == nil {
		return false
	}

	// Empty result sets are permanent.
	if errors.Is(err, ErrChannelNotFound) || errors.Is(err, ErrVideoNotFound) {
		return false
	}

	// Rate limit errors are retryable.
	if strings.Contains(err.Error(), "quotaExceeded") {
		return true
	}
	if strings.Contains(err.Error(), "rateLimitExceeded") {
		return true
	}

	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	return true
}
