package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverymiddleware "sandy/internal/delivery/http/middleware"
	"sandy/internal/delivery/http/validator"
	domainerrors "sandy/internal/domain/errors"
	"sandy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDiscoveryUsecase returns a canned profile or error and records the input.
type stubDiscoveryUsecase struct {
	profile   *usecase.AggregatedProfile
	err       error
	lastInput *usecase.DiscoverInput
}

func (s *stubDiscoveryUsecase) Discover(_ context.Context, input *usecase.DiscoverInput) (*usecase.AggregatedProfile, error) {
	s.lastInput = input
	if s.err != nil {
		return nil, s.err
	}

	return s.profile, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newSitterTestServer wires a handler into Echo with the same validator and
// error handler the real server uses, so status mapping is covered too.
func newSitterTestServer(uc usecase.DiscoveryUsecase) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = deliverymiddleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	h := &SitterHandler{discoveryUC: uc, logger: discardLogger()}
	e.GET("/sitter", h.DiscoverSitter)

	return e
}

func sampleProfile() *usecase.AggregatedProfile {
	img := "https://img/1.jpg"

	return &usecase.AggregatedProfile{
		SitterID:             5,
		SitterName:           "Alex",
		MainImg:              &img,
		AverageRating:        4,
		SelectedPets:         []string{"Rex"},
		Distance:             2.31,
		ServiceTier:          "Basic",
		RelevancyScore:       73.42,
		SitterSubscription:   "Basic",
		SitterExperience:     3,
		SitterImages:         []string{img},
		SitterPersonality:    "Calm",
		SitterCertifications: []string{},
		SitterReviews:        []usecase.ReviewSummary{},
		SupportedPets:        []string{"dog", "cat"},
		RateNegotiable:       false,
	}
}

func TestDiscoverSitter_ReturnsRawProfile(t *testing.T) {
	stub := &stubDiscoveryUsecase{profile: sampleProfile()}
	e := newSitterTestServer(stub)

	req := httptest.NewRequest(http.MethodGet,
		"/sitter?sitter_id=5&street_address=1+Main+St&city=Springfield&postcode=00001", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// The body is the profile document itself, not the envelope.
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "success")
	assert.Equal(t, float64(5), body["sitter_id"])
	assert.Equal(t, "Alex", body["sitter_name"])
	assert.Equal(t, false, body["rate_negotiable"])
	assert.Nil(t, body["start_date"])

	require.NotNil(t, stub.lastInput)
	assert.Equal(t, int64(5), stub.lastInput.SitterID)
	assert.Equal(t, "1 Main St", stub.lastInput.StreetAddress)
	assert.Equal(t, "Springfield", stub.lastInput.City)
	assert.Equal(t, "00001", stub.lastInput.Postcode)
}

func TestDiscoverSitter_MissingParamsRejectedBeforeUsecase(t *testing.T) {
	cases := []struct {
		name   string
		target string
	}{
		{"missing sitter_id", "/sitter?street_address=1+Main+St&city=Springfield&postcode=00001"},
		{"missing street_address", "/sitter?sitter_id=5&city=Springfield&postcode=00001"},
		{"missing city", "/sitter?sitter_id=5&street_address=1+Main+St&postcode=00001"},
		{"missing postcode", "/sitter?sitter_id=5&street_address=1+Main+St&city=Springfield"},
		{"non-numeric sitter_id", "/sitter?sitter_id=abc&street_address=1+Main+St&city=Springfield&postcode=00001"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubDiscoveryUsecase{profile: sampleProfile()}
			e := newSitterTestServer(stub)

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
			assert.Nil(t, stub.lastInput)
		})
	}
}

func TestDiscoverSitter_SitterNotFound(t *testing.T) {
	stub := &stubDiscoveryUsecase{err: domainerrors.ErrSitterNotFound}
	e := newSitterTestServer(stub)

	req := httptest.NewRequest(http.MethodGet,
		"/sitter?sitter_id=99&street_address=1+Main+St&city=Springfield&postcode=00001", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "SITTER_NOT_FOUND")
}

func TestDiscoverSitter_GeocoderFailureIsServerError(t *testing.T) {
	stub := &stubDiscoveryUsecase{
		err: domainerrors.ErrGeocoderUnavailable.WithDetails("lookup timed out"),
	}
	e := newSitterTestServer(stub)

	req := httptest.NewRequest(http.MethodGet,
		"/sitter?sitter_id=5&street_address=1+Main+St&city=Springfield&postcode=00001", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "GEOCODER_UNAVAILABLE")
}

func TestDiscoverSitter_UnclassifiedErrorIsOpaque(t *testing.T) {
	stub := &stubDiscoveryUsecase{err: assert.AnError}
	e := newSitterTestServer(stub)

	req := httptest.NewRequest(http.MethodGet,
		"/sitter?sitter_id=5&street_address=1+Main+St&city=Springfield&postcode=00001", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
