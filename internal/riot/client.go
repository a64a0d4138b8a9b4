// Package riot provides a minimal client for the Riot account-v1 and
// match-v5 APIs.
package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrNotFound is returned for 404 responses (unknown Riot ID or match).
var ErrNotFound = errors.New("not found")

const maxRetries = 3

// Client is a minimal Riot API client for one regional routing value.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the regional endpoint (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithLogger sets the client logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient returns a client for region (americas, europe, asia, sea)
// authenticated with apiKey.
func NewClient(apiKey, region string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: fmt.Sprintf("https://%s.api.riotgames.com", region),
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Account holds the fields we need from account-v1.
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// RiotID returns gameName#tagLine.
func (a *Account) RiotID() string {
	return a.GameName + "#" + a.TagLine
}

// getRaw performs an authenticated GET and returns the response body.
// 429 responses are retried after Retry-After seconds.
func (c *Client) getRaw(ctx context.Context, path string) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("X-Riot-Token", c.apiKey)

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("GET %s: %w", path, err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("GET %s: read body: %w", path, err)
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return body, nil
		case resp.StatusCode == http.StatusNotFound:
			return nil, fmt.Errorf("GET %s: %w", path, ErrNotFound)
		case resp.StatusCode == http.StatusTooManyRequests && attempt < maxRetries:
			wait := retryAfter(resp.Header.Get("Retry-After"))
			c.logger.Warn("rate limited", "path", path, "wait", wait)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		default:
			return nil, fmt.Errorf("GET %s: HTTP %d", path, resp.StatusCode)
		}
	}
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	body, err := c.getRaw(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("GET %s: decode: %w", path, err)
	}
	return nil
}

func retryAfter(v string) time.Duration {
	if s, err := strconv.Atoi(v); err == nil && s > 0 {
		return time.Duration(s) * time.Second
	}
	return 10 * time.Second
}

// GetAccountByRiotID looks up an account by gameName and tagLine.
func (c *Client) GetAccountByRiotID(ctx context.Context, gameName, tagLine string) (*Account, error) {
	var a Account
	path := fmt.Sprintf("/riot/account/v1/accounts/by-riot-id/%s/%s", url.PathEscape(gameName), url.PathEscape(tagLine))
	if err := c.get(ctx, path, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetMatchIDs returns up to count of the player's most recent match ids,
// optionally restricted to one queue (0 for any).
func (c *Client) GetMatchIDs(ctx context.Context, puuid string, queue, count int) ([]string, error) {
	q := url.Values{}
	q.Set("count", strconv.Itoa(count))
	if queue > 0 {
		q.Set("queue", strconv.Itoa(queue))
	}
	var ids []string
	path := fmt.Sprintf("/lol/match/v5/matches/by-puuid/%s/ids?%s", url.PathEscape(puuid), q.Encode())
	if err := c.get(ctx, path, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// GetMatchRaw returns the raw match-v5 payload.
func (c *Client) GetMatchRaw(ctx context.Context, matchID string) ([]byte, error) {
	return c.getRaw(ctx, "/lol/match/v5/matches/"+url.PathEscape(matchID))
}

// GetTimelineRaw returns the raw match-v5 timeline payload.
func (c *Client) GetTimelineRaw(ctx context.Context, matchID string) ([]byte, error) {
	return c.getRaw(ctx, "/lol/match/v5/matches/"+url.PathEscape(matchID)+"/timeline")
}
