package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/britemovies/movie-catalog-api/internal/domain"
)

const DefaultBaseURL = "https://www.omdbapi.com/"

const cacheTTL = 24 * time.Hour

// Client queries the OMDb API and implements domain.MovieFinder. By-title
// payloads can be served from an optional Redis read-through cache; a nil
// cache client disables caching entirely.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      redis.UniversalClient
	logger     *slog.Logger
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithCache(cache redis.UniversalClient) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

func NewClient(apiKey string, logger *slog.Logger, opts ...Option) *Client {
	client := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func (c *Client) FindByTitle(ctx context.Context, title string) (*domain.MovieData, error) {
	cacheKey := "omdb:title:" + strings.ToLower(title)

	if payload := c.cachedPayload(ctx, cacheKey); payload != nil {
		return Transform(payload), nil
	}

	payload, err := c.fetch(ctx, url.Values{"t": []string{title}})
	if err != nil {
		return nil, err
	}

	// Only found records are cached; a miss may resolve on a later lookup.
	if payload.Response == "True" {
		c.storePayload(ctx, cacheKey, payload)
	}

	return Transform(payload), nil
}

func (c *Client) FindByID(ctx context.Context, imdbID string) (*domain.MovieData, error) {
	payload, err := c.fetch(ctx, url.Values{"i": []string{imdbID}})
	if err != nil {
		return nil, err
	}

	return Transform(payload), nil
}

func (c *Client) fetch(ctx context.Context, params url.Values) (*Payload, error) {
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrUpstream, res.StatusCode)
	}

	var payload Payload

	err = json.NewDecoder(res.Body).Decode(&payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	if payload.Response != "True" {
		c.logger.Debug("lookup miss", "error", payload.Error)
	}

	return &payload, nil
}

func (c *Client) cachedPayload(ctx context.Context, key string) *Payload {
	if c.cache == nil {
		return nil
	}

	cached, err := c.cache.Get(ctx, key).Result()
	if err != nil {
		return nil
	}

	var payload Payload

	err = json.Unmarshal([]byte(cached), &payload)
	if err != nil {
		return nil
	}

	return &payload
}

func (c *Client) storePayload(ctx context.Context, key string, payload *Payload) {
	if c.cache == nil {
		return
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return
	}

	err = c.cache.Set(ctx, key, encoded, cacheTTL).Err()
	if err != nil {
		c.logger.Debug("failed to cache lookup payload", "error", err)
	}
}
