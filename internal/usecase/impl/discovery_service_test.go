package impl

import (
	"context"
	"testing"
	"time"

	"sandy/internal/domain/entity"
	domainerrors "sandy/internal/domain/errors"
	"sandy/internal/domain/repository"
	"sandy/internal/domain/service"
	"sandy/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type discoveryMocks struct {
	sitterRepo  *mockSitterRepository
	bookingRepo *mockBookingRepository
	reviewRepo  *mockReviewRepository
	geocoder    *mockGeocoder
}

func newDiscoveryService(t *testing.T) (usecase.DiscoveryUsecase, *discoveryMocks) {
	t.Helper()

	mocks := &discoveryMocks{
		sitterRepo:  &mockSitterRepository{},
		bookingRepo: &mockBookingRepository{},
		reviewRepo:  &mockReviewRepository{},
		geocoder:    &mockGeocoder{},
	}
	svc := NewDiscoveryService(
		mocks.sitterRepo, mocks.bookingRepo, mocks.reviewRepo, mocks.geocoder,
		newTestConfig(), newDiscardLogger(), newTestMetrics(),
	)

	return svc, mocks
}

func testInput() *usecase.DiscoverInput {
	return &usecase.DiscoverInput{
		SitterID:      5,
		StreetAddress: "1 Main St",
		City:          "Springfield",
		Postcode:      "00001",
	}
}

func testSitter() *entity.Sitter {
	return &entity.Sitter{
		ID:              5,
		UserID:          42,
		Name:            "Alex",
		ExperienceYears: 3,
		Personality:     "Loves long walks with dogs.",
		Subscription:    "Basic",
		Coordinates:     entity.Coordinates{Latitude: 0, Longitude: 0},
		Employee:        false,
	}
}

// stubHappyPath wires the non-sitter lookups with empty-but-successful results.
func stubHappyPath(mocks *discoveryMocks) {
	mocks.sitterRepo.On("FindPhotoURLs", mock.Anything, int64(5), 3).Return([]string{}, nil)
	mocks.sitterRepo.On("AverageRatingByUser", mock.Anything, int64(42)).Return(0, nil)
	mocks.bookingRepo.On("FindRecentBySitter", mock.Anything, int64(5), 5).Return([]*entity.Booking{}, nil)
	mocks.reviewRepo.On("FindRecentBySitter", mock.Anything, int64(5), 5).Return([]*entity.Review{}, nil)
	mocks.geocoder.On("Resolve", mock.Anything, "1 Main St, Springfield, 00001").Return(orb.Point{0, 0}, nil)
}

func TestDiscover_NonEmployeeDefaults(t *testing.T) {
	svc, mocks := newDiscoveryService(t)

	sitter := testSitter()
	// Employee-only data present in the record must be ignored for
	// non-employees.
	sitter.Certifications = "Pet First Aid,Grooming"
	mocks.sitterRepo.On("FindByID", mock.Anything, int64(5)).Return(sitter, nil)
	stubHappyPath(mocks)

	profile, err := svc.Discover(context.Background(), testInput())
	require.NoError(t, err)

	assert.Equal(t, []string{"dog", "cat"}, profile.SupportedPets)
	assert.Empty(t, profile.SitterCertifications)
	assert.Equal(t, "Basic", profile.ServiceTier)
	assert.Equal(t, "Basic", profile.SitterSubscription)
	assert.False(t, profile.RateNegotiable)
	mocks.sitterRepo.AssertNotCalled(t, "FindSupportedSpecies", mock.Anything, mock.Anything)
}

func TestDiscover_ZeroReviewsAndBookings(t *testing.T) {
	svc, mocks := newDiscoveryService(t)

	mocks.sitterRepo.On("FindByID", mock.Anything, int64(5)).Return(testSitter(), nil)
	stubHappyPath(mocks)

	profile, err := svc.Discover(context.Background(), testInput())
	require.NoError(t, err)

	assert.Equal(t, 0, profile.AverageRating)
	assert.Nil(t, profile.StartDate)
	assert.Nil(t, profile.EndDate)
	assert.Empty(t, profile.SelectedPets)
	assert.Nil(t, profile.MainImg)
	assert.Empty(t, profile.SitterImages)
	assert.Empty(t, profile.SitterReviews)
}

func TestDiscover_AggregatesBookingsPhotosAndReviews(t *testing.T) {
	svc, mocks := newDiscoveryService(t)

	mocks.sitterRepo.On("FindByID", mock.Anything, int64(5)).Return(testSitter(), nil)
	mocks.sitterRepo.On("FindPhotoURLs", mock.Anything, int64(5), 3).
		Return([]string{"https://img/1.jpg", "https://img/2.jpg"}, nil)
	mocks.sitterRepo.On("AverageRatingByUser", mock.Anything, int64(42)).Return(4, nil)
	mocks.bookingRepo.On("FindRecentBySitter", mock.Anything, int64(5), 5).
		Return([]*entity.Booking{
			{
				ID:        11,
				SitterID:  5,
				StartDate: time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC),
				PetNames:  []string{"Rex", "Milo"},
			},
			{
				ID:        10,
				SitterID:  5,
				StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC),
				PetNames:  []string{"Milo", "Luna"},
			},
		}, nil)
	mocks.reviewRepo.On("FindRecentBySitter", mock.Anything, int64(5), 5).
		Return([]*entity.Review{
			{ID: 1, BookingID: 11, ReviewerName: "Dana", Rating: 5, Comment: "Great sitter"},
		}, nil)
	mocks.geocoder.On("Resolve", mock.Anything, mock.Anything).Return(orb.Point{0, 0}, nil)

	profile, err := svc.Discover(context.Background(), testInput())
	require.NoError(t, err)

	require.NotNil(t, profile.MainImg)
	assert.Equal(t, "https://img/1.jpg", *profile.MainImg)
	assert.Equal(t, []string{"https://img/1.jpg", "https://img/2.jpg"}, profile.SitterImages)
	assert.Equal(t, 4, profile.AverageRating)

	require.NotNil(t, profile.StartDate)
	require.NotNil(t, profile.EndDate)
	assert.Equal(t, "2026-07-10", *profile.StartDate)
	assert.Equal(t, "2026-07-14", *profile.EndDate)
	assert.Equal(t, []string{"Rex", "Milo", "Luna"}, profile.SelectedPets)

	require.Len(t, profile.SitterReviews, 1)
	assert.Equal(t, "Dana", profile.SitterReviews[0].ReviewerName)
	assert.Nil(t, profile.SitterReviews[0].ReviewerImg)
}

func TestDiscover_EmployeeBranch(t *testing.T) {
	svc, mocks := newDiscoveryService(t)

	sitter := testSitter()
	sitter.Employee = true
	sitter.Subscription = "Basic"
	sitter.Certifications = "Vet Assistant, Pet First Aid"
	mocks.sitterRepo.On("FindByID", mock.Anything, int64(5)).Return(sitter, nil)
	mocks.sitterRepo.On("FindSupportedSpecies", mock.Anything, int64(5)).
		Return([]string{"cat", "dog", "reptile"}, nil)
	stubHappyPath(mocks)

	profile, err := svc.Discover(context.Background(), testInput())
	require.NoError(t, err)

	assert.Equal(t, "Premium", profile.ServiceTier)
	assert.Equal(t, []string{"cat", "dog", "reptile"}, profile.SupportedPets)
	assert.Equal(t, []string{"Vet Assistant", "Pet First Aid"}, profile.SitterCertifications)
}

func TestDiscover_EmployeeEmptySpeciesListIsValid(t *testing.T) {
	svc, mocks := newDiscoveryService(t)

	sitter := testSitter()
	sitter.Employee = true
	mocks.sitterRepo.On("FindByID", mock.Anything, int64(5)).Return(sitter, nil)
	mocks.sitterRepo.On("FindSupportedSpecies", mock.Anything, int64(5)).Return([]string{}, nil)
	stubHappyPath(mocks)

	profile, err := svc.Discover(context.Background(), testInput())
	require.NoError(t, err)

	// An employee with an empty species list keeps it empty; the non-employee
	// default must not leak in.
	assert.NotNil(t, profile.SupportedPets)
	assert.Empty(t, profile.SupportedPets)
}

func TestDiscover_DistanceRoundedToTwoDecimals(t *testing.T) {
	svc, mocks := newDiscoveryService(t)

	mocks.sitterRepo.On("FindByID", mock.Anything, int64(5)).Return(testSitter(), nil)
	mocks.sitterRepo.On("FindPhotoURLs", mock.Anything, int64(5), 3).Return([]string{}, nil)
	mocks.sitterRepo.On("AverageRatingByUser", mock.Anything, int64(42)).Return(0, nil)
	mocks.bookingRepo.On("FindRecentBySitter", mock.Anything, int64(5), 5).Return([]*entity.Booking{}, nil)
	mocks.reviewRepo.On("FindRecentBySitter", mock.Anything, int64(5), 5).Return([]*entity.Review{}, nil)
	// ~5 km east of the sitter along the equator.
	mocks.geocoder.On("Resolve", mock.Anything, mock.Anything).Return(orb.Point{0.04496608, 0}, nil)

	profile, err := svc.Discover(context.Background(), testInput())
	require.NoError(t, err)

	assert.Equal(t, 5.0, profile.Distance)
}

func TestDiscover_RelevancyScoreWithinBand(t *testing.T) {
	svc, mocks := newDiscoveryService(t)

	mocks.sitterRepo.On("FindByID", mock.Anything, int64(5)).Return(testSitter(), nil)
	stubHappyPath(mocks)

	profile, err := svc.Discover(context.Background(), testInput())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, profile.RelevancyScore, relevancyMin)
	assert.Less(t, profile.RelevancyScore, relevancyMax)
}

func TestRelevancyScoreNeverReachesUpperBound(t *testing.T) {
	// Truncation must keep every draw strictly below the band's upper bound,
	// including raw values within rounding distance of it.
	for range 10000 {
		score := relevancyScore()
		assert.GreaterOrEqual(t, score, relevancyMin)
		assert.Less(t, score, relevancyMax)
	}
}

func TestDiscover_SitterNotFound(t *testing.T) {
	svc, mocks := newDiscoveryService(t)

	mocks.sitterRepo.On("FindByID", mock.Anything, int64(5)).
		Return(nil, repository.ErrSitterNotFound)

	profile, err := svc.Discover(context.Background(), testInput())
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrSitterNotFound)
	mocks.geocoder.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestDiscover_GeocodeFailureAborts(t *testing.T) {
	svc, mocks := newDiscoveryService(t)

	mocks.sitterRepo.On("FindByID", mock.Anything, int64(5)).Return(testSitter(), nil)
	mocks.sitterRepo.On("FindPhotoURLs", mock.Anything, int64(5), 3).Return([]string{}, nil)
	mocks.sitterRepo.On("AverageRatingByUser", mock.Anything, int64(42)).Return(0, nil)
	mocks.bookingRepo.On("FindRecentBySitter", mock.Anything, int64(5), 5).Return([]*entity.Booking{}, nil)
	mocks.reviewRepo.On("FindRecentBySitter", mock.Anything, int64(5), 5).Return([]*entity.Review{}, nil)
	mocks.geocoder.On("Resolve", mock.Anything, mock.Anything).
		Return(orb.Point{}, service.ErrGeocoderUnavailable)

	profile, err := svc.Discover(context.Background(), testInput())
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrGeocoderUnavailable)
}

func TestDiscover_ReviewFailureDegrades(t *testing.T) {
	svc, mocks := newDiscoveryService(t)

	mocks.sitterRepo.On("FindByID", mock.Anything, int64(5)).Return(testSitter(), nil)
	mocks.sitterRepo.On("FindPhotoURLs", mock.Anything, int64(5), 3).Return([]string{}, nil)
	mocks.sitterRepo.On("AverageRatingByUser", mock.Anything, int64(42)).Return(3, nil)
	mocks.bookingRepo.On("FindRecentBySitter", mock.Anything, int64(5), 5).Return([]*entity.Booking{}, nil)
	mocks.reviewRepo.On("FindRecentBySitter", mock.Anything, int64(5), 5).
		Return(nil, assert.AnError)
	mocks.geocoder.On("Resolve", mock.Anything, mock.Anything).Return(orb.Point{0, 0}, nil)

	profile, err := svc.Discover(context.Background(), testInput())
	require.NoError(t, err)

	assert.Empty(t, profile.SitterReviews)
	assert.Equal(t, 3, profile.AverageRating)
}
