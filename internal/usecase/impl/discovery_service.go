// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"
	"sync"

	"sandy/config"
	"sandy/internal/domain/entity"
	domainerrors "sandy/internal/domain/errors"
	"sandy/internal/domain/geo"
	"sandy/internal/domain/repository"
	"sandy/internal/domain/service"
	"sandy/internal/errors"
	"sandy/internal/infra/metrics"
	"sandy/internal/usecase"

	"github.com/paulmach/orb"
)

const dateLayout = "2006-01-02"

// Non-employee sitters always advertise this fixed species list.
var defaultSupportedPets = []string{"dog", "cat"}

// Relevancy band. The score is a randomized placeholder ranking signal, not a
// stored or comparable metric; callers must not treat it as stable.
const (
	relevancyMin = 50.0
	relevancyMax = 100.0
)

// discoveryService implements the DiscoveryUsecase interface.
type discoveryService struct {
	sitterRepo  repository.SitterRepository
	bookingRepo repository.BookingRepository
	reviewRepo  repository.ReviewRepository
	geocoder    service.GeocoderService
	cfg         *config.DiscoveryConfig
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

// NewDiscoveryService is the constructor for discoveryService.
func NewDiscoveryService(
	sitterRepo repository.SitterRepository,
	bookingRepo repository.BookingRepository,
	reviewRepo repository.ReviewRepository,
	geocoder service.GeocoderService,
	cfg *config.Config,
	logger *slog.Logger,
	m *metrics.Metrics,
) usecase.DiscoveryUsecase {
	return &discoveryService{
		sitterRepo:  sitterRepo,
		bookingRepo: bookingRepo,
		reviewRepo:  reviewRepo,
		geocoder:    geocoder,
		cfg:         cfg.Discovery,
		logger:      logger,
		metrics:     m,
	}
}

// Discover aggregates a sitter's relational data into one profile document.
// The sitter fetch, photos, rating, bookings and geocoding are hard
// dependencies: any failure aborts the whole aggregation. Species,
// certifications and reviews degrade to empty collections instead.
func (srv *discoveryService) Discover(ctx context.Context, input *usecase.DiscoverInput) (*usecase.AggregatedProfile, error) {
	profile, err := srv.aggregate(ctx, input)
	srv.metrics.RecordDiscovery(err != nil)

	return profile, err
}

func (srv *discoveryService) aggregate(ctx context.Context, input *usecase.DiscoverInput) (*usecase.AggregatedProfile, error) {
	sitter, err := srv.sitterRepo.FindByID(ctx, input.SitterID)
	if err != nil {
		if errors.Is(err, repository.ErrSitterNotFound) {
			return nil, domainerrors.ErrSitterNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch sitter")
	}

	// The remaining lookups are independent of each other; issue them
	// concurrently. The employee-only species lookup is already conditioned
	// on the sitter fetch above.
	var (
		photos      []string
		rating      int
		bookings    []*entity.Booking
		requesterPt orb.Point
		species     []string
		reviews     []*entity.Review

		photosErr, ratingErr, bookingsErr, geocodeErr error
		speciesErr, reviewsErr                        error
	)

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		photos, photosErr = srv.sitterRepo.FindPhotoURLs(ctx, sitter.ID, srv.cfg.MaxPhotos)
	}()
	go func() {
		defer wg.Done()
		rating, ratingErr = srv.sitterRepo.AverageRatingByUser(ctx, sitter.UserID)
	}()
	go func() {
		defer wg.Done()
		bookings, bookingsErr = srv.bookingRepo.FindRecentBySitter(ctx, sitter.ID, srv.cfg.MaxRecentBookings)
	}()
	go func() {
		defer wg.Done()
		requesterPt, geocodeErr = srv.geocoder.Resolve(ctx, input.Address())
	}()

	if sitter.Employee {
		wg.Add(1)
		go func() {
			defer wg.Done()
			species, speciesErr = srv.sitterRepo.FindSupportedSpecies(ctx, sitter.ID)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		reviews, reviewsErr = srv.reviewRepo.FindRecentBySitter(ctx, sitter.ID, srv.cfg.MaxReviews)
	}()

	wg.Wait()

	// Hard failures abort the whole aggregation; no partial results.
	if photosErr != nil {
		return nil, errors.Wrap(photosErr, "failed to fetch sitter photos")
	}
	if ratingErr != nil {
		return nil, errors.Wrap(ratingErr, "failed to fetch average rating")
	}
	if bookingsErr != nil {
		return nil, errors.Wrap(bookingsErr, "failed to fetch recent bookings")
	}
	if geocodeErr != nil {
		return nil, srv.translateGeocodeError(geocodeErr)
	}

	// Degradable lookups fall back to empty collections.
	if speciesErr != nil {
		srv.logger.Warn("Species lookup failed, defaulting to empty list",
			slog.Int64("sitterID", sitter.ID), slog.Any("error", speciesErr))
		species = []string{}
	}
	if reviewsErr != nil {
		srv.logger.Warn("Review lookup failed, defaulting to empty list",
			slog.Int64("sitterID", sitter.ID), slog.Any("error", reviewsErr))
		reviews = nil
	}

	if photos == nil {
		photos = []string{}
	}

	distance := geo.RoundKm(geo.DistanceKm(sitter.Coordinates.Point(), requesterPt))

	profile := &usecase.AggregatedProfile{
		SitterID:             sitter.ID,
		SitterName:           sitter.Name,
		MainImg:              mainImage(photos),
		AverageRating:        rating,
		SelectedPets:         selectedPets(bookings),
		Distance:             distance,
		ServiceTier:          serviceTier(sitter),
		RelevancyScore:       relevancyScore(),
		SitterSubscription:   sitter.Subscription,
		SitterExperience:     sitter.ExperienceYears,
		SitterImages:         photos,
		SitterPersonality:    sitter.Personality,
		SitterCertifications: certifications(sitter),
		SitterReviews:        reviewSummaries(reviews),
		SupportedPets:        supportedPets(sitter, species),
		RateNegotiable:       false,
	}

	if len(bookings) > 0 {
		start := bookings[0].StartDate.Format(dateLayout)
		end := bookings[0].EndDate.Format(dateLayout)
		profile.StartDate = &start
		profile.EndDate = &end
	}

	return profile, nil
}

// translateGeocodeError maps geocoder sentinels onto the application error
// taxonomy, preserving the distinction for logs even though the current
// contract surfaces both as an opaque server error.
func (srv *discoveryService) translateGeocodeError(err error) error {
	switch {
	case errors.Is(err, service.ErrAddressNotFound):
		return domainerrors.ErrAddressNotFound.WithDetails(err.Error())
	case errors.Is(err, service.ErrGeocoderUnavailable):
		return domainerrors.ErrGeocoderUnavailable.WithDetails(err.Error())
	default:
		return errors.Wrap(err, "failed to geocode requester address")
	}
}

// mainImage picks the first returned photo; the read order is store-defined.
func mainImage(photos []string) *string {
	if len(photos) == 0 {
		return nil
	}

	return &photos[0]
}

// selectedPets collects the distinct pet names across the recent bookings,
// newest bookings first, preserving first appearance order.
func selectedPets(bookings []*entity.Booking) []string {
	pets := make([]string, 0)
	seen := make(map[string]struct{})

	for _, booking := range bookings {
		for _, name := range booking.PetNames {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			pets = append(pets, name)
		}
	}

	return pets
}

// serviceTier is "Premium" for staff-tier employees, otherwise the raw
// subscription tier name.
func serviceTier(sitter *entity.Sitter) string {
	if sitter.Employee {
		return "Premium"
	}

	return sitter.Subscription
}

// supportedPets returns the employee's species list (an empty list is valid
// and distinct from the default) or the fixed default for everyone else.
func supportedPets(sitter *entity.Sitter, species []string) []string {
	if sitter.Employee {
		if species == nil {
			return []string{}
		}

		return species
	}

	pets := make([]string, len(defaultSupportedPets))
	copy(pets, defaultSupportedPets)

	return pets
}

// certifications splits the comma-delimited certification field. Non-employees
// never expose certifications regardless of stored data.
func certifications(sitter *entity.Sitter) []string {
	if !sitter.Employee || strings.TrimSpace(sitter.Certifications) == "" {
		return []string{}
	}

	parts := strings.Split(sitter.Certifications, ",")
	certs := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			certs = append(certs, trimmed)
		}
	}

	return certs
}

func reviewSummaries(reviews []*entity.Review) []usecase.ReviewSummary {
	summaries := make([]usecase.ReviewSummary, 0, len(reviews))
	for _, review := range reviews {
		summaries = append(summaries, usecase.ReviewSummary{
			ReviewerName: review.ReviewerName,
			ReviewerImg:  nil, // no reviewer photo is available upstream
			Rating:       review.Rating,
			Comment:      review.Comment,
		})
	}

	return summaries
}

// relevancyScore generates a fresh placeholder score within a fixed band.
// It is intentionally non-deterministic; callers must not treat it as a
// stable or reproducible ranking signal. Truncating keeps a raw draw just
// under the upper bound from rounding onto it.
func relevancyScore() float64 {
	score := relevancyMin + rand.Float64()*(relevancyMax-relevancyMin)

	return math.Floor(score*100) / 100
}
