// Package geocode implements address resolution against a Nominatim-compatible
// HTTP endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"sandy/config"
	"sandy/internal/domain/service"
	"sandy/internal/errors"
	"sandy/internal/infra/metrics"

	"github.com/paulmach/orb"
)

// searchResult is the subset of a Nominatim search candidate we consume.
// Nominatim encodes coordinates as strings.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

type nominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
	metrics   *metrics.Metrics
}

// New creates a GeocoderService backed by the configured Nominatim endpoint.
// The HTTP client carries the configured timeout; expiry surfaces as
// service.ErrGeocoderUnavailable. No retries, no caching.
func New(cfg *config.Config, m *metrics.Metrics) service.GeocoderService {
	return &nominatimGeocoder{
		baseURL:   strings.TrimRight(cfg.Geocoder.BaseURL, "/"),
		userAgent: cfg.Geocoder.UserAgent,
		client:    &http.Client{Timeout: cfg.Geocoder.Timeout},
		metrics:   m,
	}
}

// Resolve converts a free-form address into a coordinate point.
func (g *nominatimGeocoder) Resolve(ctx context.Context, address string) (orb.Point, error) {
	point, err := g.lookup(ctx, address)
	g.metrics.RecordGeocoderLookup(err != nil)

	return point, err
}

func (g *nominatimGeocoder) lookup(ctx context.Context, address string) (orb.Point, error) {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("q", address)
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "failed to build geocoding request")
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return orb.Point{}, errors.Wrap(service.ErrGeocoderUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return orb.Point{}, errors.Wrapf(service.ErrGeocoderUnavailable, "unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return orb.Point{}, errors.Wrap(service.ErrGeocoderUnavailable, err.Error())
	}

	var candidates []searchResult
	if err := json.Unmarshal(body, &candidates); err != nil {
		return orb.Point{}, errors.Wrap(service.ErrGeocoderUnavailable, "malformed geocoding response")
	}

	if len(candidates) == 0 {
		return orb.Point{}, service.ErrAddressNotFound
	}

	lat, err := strconv.ParseFloat(candidates[0].Lat, 64)
	if err != nil {
		return orb.Point{}, errors.Wrap(service.ErrGeocoderUnavailable, "malformed latitude in geocoding response")
	}

	lon, err := strconv.ParseFloat(candidates[0].Lon, 64)
	if err != nil {
		return orb.Point{}, errors.Wrap(service.ErrGeocoderUnavailable, "malformed longitude in geocoding response")
	}

	// Out-of-range coordinates are an upstream fault; never clamp them.
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return orb.Point{}, errors.Wrapf(service.ErrGeocoderUnavailable, "coordinates out of range: %f, %f", lat, lon)
	}

	return orb.Point{lon, lat}, nil
}
