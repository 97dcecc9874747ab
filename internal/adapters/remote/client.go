// internal/adapters/remote/client.go
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"hotel_dashboard/internal/adapters/observability"
	"hotel_dashboard/internal/domain"
)

// Client loads the hotel record set from a remote listings service.
type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if strings.TrimSpace(base) == "" {
		return nil, fmt.Errorf("remote base URL is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// LoadHotels implements domain.HotelSource. The service may answer with a
// bare JSON array or with {"hotels": [...]}.
func (c *Client) LoadHotels(ctx context.Context) ([]domain.Hotel, error) {
	candidates := []string{
		c.base + "/v1/hotels/export", // preferred
		c.base + "/hotels.json",      // static dump
	}
	var raw json.RawMessage
	if err := c.getFirst(ctx, candidates, &raw); err != nil {
		return nil, err
	}
	return decodeHotels(raw)
}

func decodeHotels(raw json.RawMessage) ([]domain.Hotel, error) {
	var hs []domain.Hotel
	if err := json.Unmarshal(raw, &hs); err == nil {
		return hs, nil
	}
	var env struct {
		Hotels []domain.Hotel `json:"hotels"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode hotels: %w", err)
	}
	if env.Hotels == nil {
		return nil, errors.New("decode hotels: payload has no hotels")
	}
	return env.Hotels, nil
}

// ---- Internals ----

var (
	ErrNotFound = fmt.Errorf("remote: %w", domain.ErrNotFound)
	// ErrRejected covers both 401 and 403.
	ErrRejected = errors.New("remote: credentials rejected")
)

const maxAttempts = 4

func (c *Client) getFirst(ctx context.Context, urls []string, out *json.RawMessage) error {
	err := errors.New("no candidate URL")
	for _, u := range urls {
		if err = c.get(ctx, u, out); !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	return err
}

// get is a rate-limited GET of one URL. Network errors, 429 and 5xx are
// retried up to maxAttempts, waiting Retry-After or an exponential backoff.
func (c *Client) get(ctx context.Context, url string, out *json.RawMessage) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		var wait time.Duration
		wait, err = c.attempt(ctx, url, out)
		if wait < 0 {
			return err
		}
		if attempt == maxAttempts-1 {
			break
		}
		if wait == 0 {
			wait = backoff(attempt)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return err
}

// attempt issues one request. A negative wait means the result is final;
// otherwise err is retryable and wait is the server's hint (0 if none).
func (c *Client) attempt(ctx context.Context, url string, out *json.RawMessage) (time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return -1, err
	}
	if c.key != "" {
		req.Header.Set("X-API-Key", c.key)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("remote", "hotels", 0, time.Since(start))
		if ctx.Err() != nil {
			return -1, ctx.Err()
		}
		return 0, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("remote", "hotels", resp.StatusCode, time.Since(start))

	switch code := resp.StatusCode; {
	case code == http.StatusOK:
		return -1, json.NewDecoder(resp.Body).Decode(out)
	case code == http.StatusNotFound:
		return -1, ErrNotFound
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return -1, ErrRejected
	case code == http.StatusTooManyRequests || code >= 500:
		return retryAfter(resp.Header.Get("Retry-After")), fmt.Errorf("remote status %d", code)
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return -1, fmt.Errorf("remote status %d: %s", code, strings.TrimSpace(string(b)))
	}
}

// retryAfter reads delta-seconds only; HTTP-dates fall back to backoff.
func retryAfter(h string) time.Duration {
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}

// backoff is 200ms doubled per attempt plus up to 50% jitter.
func backoff(attempt int) time.Duration {
	base := (200 * time.Millisecond) << attempt
	return base + time.Duration(rand.Int63n(int64(base/2)+1))
}
