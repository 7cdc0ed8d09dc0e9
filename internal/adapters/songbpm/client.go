// Package songbpm provides the HTTP adapter for the GetSongBPM API.
package songbpm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tempolab/pacer/internal/core/domain"
	"github.com/tempolab/pacer/internal/core/ports"
)

const defaultBaseURL = "https://api.getsongbpm.com"

// Client is an HTTP client for the GetSongBPM adapter. Every request carries
// the API key in the X-API-KEY header.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// compile-time interface assertion
var _ ports.SongProvider = (*Client)(nil)

// NewClient constructs a GetSongBPM client. A nil httpClient falls back to a
// client with a fixed timeout; an empty baseURL falls back to the public API.
func NewClient(httpClient *http.Client, baseURL string, apiKey string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// SongsByTempo performs the tempo search described by spec and returns the
// raw, unfiltered page of songs.
func (c *Client) SongsByTempo(ctx context.Context, spec domain.QuerySpec) ([]domain.Song, error) {
	env, err := c.get(ctx, BuildRequest(spec))
	if err != nil {
		return nil, err
	}
	return mapPageToDomain(env.page()), nil
}

// SearchTempoWindow queries the generic search endpoint for songs whose
// tempo falls in [bpmMin, bpmMax].
func (c *Client) SearchTempoWindow(ctx context.Context, bpmMin, bpmMax, limit int) ([]domain.Song, error) {
	params := url.Values{}
	params.Set("bpm_min", strconv.Itoa(bpmMin))
	params.Set("bpm_max", strconv.Itoa(bpmMax))
	params.Set("limit", strconv.Itoa(limit))

	env, err := c.get(ctx, Request{Path: "/search/", Params: params})
	if err != nil {
		return nil, err
	}
	return mapPageToDomain(env.page()), nil
}

// SongByID fetches the detail record for one song.
func (c *Client) SongByID(ctx context.Context, id string) (domain.Song, error) {
	env, err := c.get(ctx, Request{Path: fmt.Sprintf("/song/%s/", url.PathEscape(id))})
	if err != nil {
		return domain.Song{}, err
	}
	if env.Song == nil {
		return domain.Song{}, nil
	}
	return mapSongToDomain(*env.Song), nil
}

func (c *Client) get(ctx context.Context, r Request) (envelope, error) {
	u, err := url.Parse(c.baseURL + r.Path)
	if err != nil {
		return envelope{}, fmt.Errorf("songbpm adapter: invalid url: %w", err)
	}
	if r.Params != nil {
		u.RawQuery = r.Params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return envelope{}, fmt.Errorf("songbpm adapter: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("songbpm adapter: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return envelope{}, fmt.Errorf("songbpm adapter: %w", ports.UpstreamStatusError{Status: resp.StatusCode})
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return envelope{}, fmt.Errorf("songbpm adapter: decode error: %w", err)
	}

	return env, nil
}
