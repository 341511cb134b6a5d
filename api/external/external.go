/* external.go
 * Contains the client used to fetch match history from the HenrikDev Valorant statistics API
 */

package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"valorant-bot/api/shared"
	"valorant-bot/config"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

type Client struct {
	apiKey    string
	baseURL   string
	userAgent string
	client    *fasthttp.Client
	logger    zerolog.Logger
}

// NewClient creates a statistics API client from the process configuration
func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	baseURL := cfg.HenrikBaseURL
	if baseURL == "" {
		baseURL = config.DefaultHenrikBaseURL
	}
	return &Client{
		apiKey:    cfg.HenrikAPIKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: config.UserAgent,
		client:    &fasthttp.Client{},
		logger:    logger.With().Str("component", "henrik").Logger(),
	}
}

// MatchesURL builds the v3 match history URL for a player
func (c *Client) MatchesURL(region string, name string, tag string) string {
	return fmt.Sprintf("%s/valorant/v3/matches/%s/%s/%s", c.baseURL, region, url.PathEscape(name), url.PathEscape(tag))
}

// FetchMatches gets the most recent matches for a player.
// Preconditions: Receives the region and the trimmed name and tag of the player
// Postconditions: Returns the unfiltered match batch in API order. A non-200 answer is wrapped in
// shared.ErrPlayerNotFound, a transport or decoding failure in shared.ErrTransient
func (c *Client) FetchMatches(ctx context.Context, region string, name string, tag string) ([]MatchRecord, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.MatchesURL(region, name, tag))
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.client.DoDeadline(req, resp, deadline)
	} else {
		err = c.client.Do(req, resp)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", shared.ErrTransient, err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Debug().
			Int("status", resp.StatusCode()).
			Str("name", name).
			Str("tag", tag).
			Msg("non-200 response from statistics api")
		return nil, fmt.Errorf("%w: status %d", shared.ErrPlayerNotFound, resp.StatusCode())
	}

	var result MatchesResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode match history: %v", shared.ErrTransient, err)
	}

	return result.Data, nil
}
