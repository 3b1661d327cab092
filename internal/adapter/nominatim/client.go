// Package nominatim resolves place names with the OpenStreetMap Nominatim
// search API.
package nominatim

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

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"github.com/couchcryptid/ascendant-service/internal/domain"
	"github.com/couchcryptid/ascendant-service/internal/observability"
)

const provider = "nominatim"

// Client implements domain.PlaceResolver using the Nominatim search API.
type Client struct {
	userAgent  string
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	clock      clockwork.Clock
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a Nominatim client. The public instance allows at most
// one request per second, and every request must carry an identifying
// User-Agent.
func NewClient(baseURL, userAgent string, timeout time.Duration, rps float64, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		clock:   clockwork.NewRealClock(),
		metrics: metrics,
		logger:  logger,
	}
}

// Resolve returns the coordinates of the best match for placeText.
func (c *Client) Resolve(ctx context.Context, placeText string) (domain.Coordinates, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: rate limit wait: %w", domain.ErrGeocodingUnavailable, err)
	}

	params := url.Values{
		"format": {"jsonv2"},
		"limit":  {"1"},
		"q":      {placeText},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := c.clock.Now()
	coords, err := c.do(req)
	c.metrics.GeocodeAPIDuration.WithLabelValues(provider).Observe(c.clock.Since(start).Seconds())

	switch {
	case err == nil:
		c.metrics.GeocodeRequests.WithLabelValues(provider, "success").Inc()
	case errors.Is(err, domain.ErrPlaceNotFound):
		c.metrics.GeocodeRequests.WithLabelValues(provider, "empty").Inc()
	default:
		c.metrics.GeocodeRequests.WithLabelValues(provider, "error").Inc()
		c.logger.Warn("nominatim lookup failed", "place", placeText, "error", err)
	}
	return coords, err
}

func (c *Client) do(req *http.Request) (domain.Coordinates, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: nominatim request: %w", domain.ErrGeocodingUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Coordinates{}, fmt.Errorf("%w: nominatim status %d: %s", domain.ErrGeocodingUnavailable, resp.StatusCode, body)
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: decode response: %w", domain.ErrGeocodingUnavailable, err)
	}
	if len(places) == 0 {
		return domain.Coordinates{}, domain.ErrPlaceNotFound
	}

	return places[0].coordinates()
}

// Nominatim API response types. Coordinates arrive as decimal strings.

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (p place) coordinates() (domain.Coordinates, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: bad lat %q", domain.ErrGeocodingUnavailable, p.Lat)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: bad lon %q", domain.ErrGeocodingUnavailable, p.Lon)
	}
	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}
