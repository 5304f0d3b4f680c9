// Package clientdir is the outbound adapter for the client-person service.
// The reporting service uses it to resolve client display names; lookup
// failures surface as errors so the caller can apply its fallback policy.
package clientdir

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"

	portssvc "github.com/banking-ms/account-movement-service/internal/core/ports/services"
	"github.com/banking-ms/account-movement-service/internal/middleware"
)

const (
	// nameCacheKeyPrefix namespaces cached display names in Redis.
	nameCacheKeyPrefix = "clientdir:name:"

	// nameCacheTTL bounds staleness of cached display names.
	nameCacheTTL = 5 * time.Minute

	defaultRequestTimeout = 3 * time.Second
)

// clientPayload is the subset of the client service response we consume.
type clientPayload struct {
	Name string `json:"name"`
}

// HTTPClientDirectory resolves display names over HTTP, with an optional
// Redis read-through cache so statement assembly does not hammer the client
// service for the same client.
type HTTPClientDirectory struct {
	baseURL string
	http    *http.Client
	cache   *redis.Client // nil when caching is disabled
}

// Option configures the HTTPClientDirectory.
type Option func(*HTTPClientDirectory)

// WithRedisCache enables the read-through display-name cache.
func WithRedisCache(rdb *redis.Client) Option {
	return func(d *HTTPClientDirectory) {
		d.cache = rdb
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(d *HTTPClientDirectory) {
		d.http = c
	}
}

// NewHTTPClientDirectory creates a directory pointed at the client service
// base URL, e.g. "http://clientsvc:8081".
func NewHTTPClientDirectory(baseURL string, options ...Option) *HTTPClientDirectory {
	d := &HTTPClientDirectory{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultRequestTimeout},
	}
	for _, option := range options {
		option(d)
	}
	return d
}

var _ portssvc.ClientDirectory = (*HTTPClientDirectory)(nil)

// GetClientName fetches the display name for a client.
func (d *HTTPClientDirectory) GetClientName(ctx context.Context, clientID int64) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	cacheKey := fmt.Sprintf("%s%d", nameCacheKeyPrefix, clientID)

	if d.cache != nil {
		name, err := d.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			return name, nil
		}
		if !errors.Is(err, redis.Nil) {
			// Cache trouble must not take the lookup down with it.
			logger.Warn("Client name cache read failed", slog.String("key", cacheKey), slog.String("error", err.Error()))
		}
	}

	url := fmt.Sprintf("%s/clients/%d", d.baseURL, clientID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build client lookup request: %w", err)
	}

	resp, err := d.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("client service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("client service returned status %d for client %d", resp.StatusCode, clientID)
	}

	var payload clientPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode client service response: %w", err)
	}
	if payload.Name == "" {
		return "", fmt.Errorf("client service returned empty name for client %d", clientID)
	}

	if d.cache != nil {
		if err := d.cache.Set(ctx, cacheKey, payload.Name, nameCacheTTL).Err(); err != nil {
			logger.Warn("Client name cache write failed", slog.String("key", cacheKey), slog.String("error", err.Error()))
		}
	}
	return payload.Name, nil
}
