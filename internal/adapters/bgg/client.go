package bgg

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/meeplewise/advisor/pkg/logger"
	"github.com/meeplewise/advisor/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultBaseURL     = "https://boardgamegeek.com/xmlapi2"
	defaultTimeout     = 15 * time.Second
	defaultRatePerSec  = 2
	defaultRetryDelay  = 2 * time.Second
	defaultMaxAttempts = 3

	breakerInterval         = time.Minute
	breakerOpenTimeout      = 30 * time.Second
	breakerFailureThreshold = 5

	maxResponseBytes = 4 << 20
)

// response carries one upstream reply through the circuit breaker.
type response struct {
	status int
	body   []byte
}

// Client talks to the game database XML API. One Client is shared by
// all pipeline invocations: one HTTP client, one rate limiter, one
// circuit breaker.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	limiter     *rate.Limiter
	breaker     *gobreaker.CircuitBreaker[response]
	retryDelay  time.Duration
	maxAttempts int
	log         logger.Logger
}

// NewClient creates a game database client with configuration options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:     defaultBaseURL,
		httpClient:  &http.Client{Timeout: defaultTimeout},
		limiter:     rate.NewLimiter(rate.Limit(defaultRatePerSec), 1),
		retryDelay:  defaultRetryDelay,
		maxAttempts: defaultMaxAttempts,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.log == nil {
		c.log = logger.Get()
	}

	c.breaker = gobreaker.NewCircuitBreaker[response](gobreaker.Settings{
		Name:     "bgg",
		Interval: breakerInterval,
		Timeout:  breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn(context.Background(), "circuit breaker state change",
				logger.String("breaker", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()))
		},
	})

	return c
}

// Search submits a query to the search endpoint and returns the
// candidate items. Transport failures and unexpected statuses surface
// as ErrUnavailable; the caller treats them as "no results".
func (c *Client) Search(ctx context.Context, query string) ([]SearchItem, error) {
	metrics.RecordSearch()

	params := url.Values{}
	params.Set("query", query)
	params.Set("type", "boardgame")
	params.Set("exact", "0")

	resp, err := c.get(ctx, "/search", params)
	if err != nil {
		metrics.RecordSearchError()
		return nil, err
	}
	if resp.status != http.StatusOK {
		metrics.RecordSearchError()
		return nil, fmt.Errorf("%w: search returned status %d", ErrUnavailable, resp.status)
	}

	var doc searchResponse
	if err := xml.Unmarshal(resp.body, &doc); err != nil {
		metrics.RecordSearchError()
		return nil, fmt.Errorf("%w: decode search response: %w", ErrUnavailable, err)
	}
	return doc.Items, nil
}

// GameDetails retrieves full metadata for one candidate id. A 202 from
// upstream means the record is still materializing; the client waits
// retryDelay and re-polls, up to maxAttempts total attempts, then fails
// with ErrStillProcessing.
func (c *Client) GameDetails(ctx context.Context, id string) (*ThingItem, error) {
	metrics.RecordDetailFetch()

	params := url.Values{}
	params.Set("id", id)
	params.Set("stats", "1")

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		resp, err := c.get(ctx, "/thing", params)
		if err != nil {
			metrics.RecordDetailFetchError()
			return nil, err
		}

		switch resp.status {
		case http.StatusOK:
			var doc thingResponse
			if err := xml.Unmarshal(resp.body, &doc); err != nil {
				metrics.RecordDetailFetchError()
				return nil, fmt.Errorf("%w: decode detail response: %w", ErrMalformedDetail, err)
			}
			item, ok := firstItem(doc.Items)
			if !ok {
				metrics.RecordDetailFetchError()
				return nil, fmt.Errorf("%w: empty detail document for id %s", ErrMalformedDetail, id)
			}
			return item, nil

		case http.StatusAccepted:
			if attempt == c.maxAttempts {
				metrics.RecordDetailFetchError()
				return nil, fmt.Errorf("%w: id %s after %d attempts", ErrStillProcessing, id, attempt)
			}
			metrics.RecordDetailRepoll()
			c.log.Debug(ctx, "detail still processing; re-polling",
				logger.String("id", id), logger.Int("attempt", attempt))
			if err := sleepCtx(ctx, c.retryDelay); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
			}

		default:
			metrics.RecordDetailFetchError()
			return nil, fmt.Errorf("%w: detail returned status %d for id %s", ErrUnavailable, resp.status, id)
		}
	}

	metrics.RecordDetailFetchError()
	return nil, fmt.Errorf("%w: id %s", ErrStillProcessing, id)
}

// get performs one rate-limited GET through the circuit breaker.
// Only transport-level failures count against the breaker.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return response{}, fmt.Errorf("%w: rate limiter: %w", ErrUnavailable, err)
	}

	start := time.Now()
	resp, err := c.breaker.Execute(func() (response, error) {
		return c.do(ctx, endpoint, params)
	})
	metrics.RecordUpstreamLatency(endpoint, float64(time.Since(start).Milliseconds()))

	if err != nil {
		return response{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, endpoint string, params url.Values) (response, error) {
	u := c.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return response{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return response{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return response{}, fmt.Errorf("read response body: %w", err)
	}

	return response{status: res.StatusCode, body: body}, nil
}

// sleepCtx waits for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
