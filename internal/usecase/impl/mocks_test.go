package impl

import (
	"context"

	"sandy/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/mock"
)

// Hand-written testify mocks for the repository and geocoder interfaces.

type mockSitterRepository struct {
	mock.Mock
}

func (m *mockSitterRepository) FindByID(ctx context.Context, id int64) (*entity.Sitter, error) {
	args := m.Called(ctx, id)
	if sitter, ok := args.Get(0).(*entity.Sitter); ok {
		return sitter, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockSitterRepository) FindPhotoURLs(ctx context.Context, sitterID int64, limit int) ([]string, error) {
	args := m.Called(ctx, sitterID, limit)
	if urls, ok := args.Get(0).([]string); ok {
		return urls, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockSitterRepository) AverageRatingByUser(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)

	return args.Int(0), args.Error(1)
}

func (m *mockSitterRepository) FindSupportedSpecies(ctx context.Context, sitterID int64) ([]string, error) {
	args := m.Called(ctx, sitterID)
	if species, ok := args.Get(0).([]string); ok {
		return species, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) FindRecentBySitter(ctx context.Context, sitterID int64, limit int) ([]*entity.Booking, error) {
	args := m.Called(ctx, sitterID, limit)
	if bookings, ok := args.Get(0).([]*entity.Booking); ok {
		return bookings, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) FindRecentBySitter(ctx context.Context, sitterID int64, limit int) ([]*entity.Review, error) {
	args := m.Called(ctx, sitterID, limit)
	if reviews, ok := args.Get(0).([]*entity.Review); ok {
		return reviews, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockGeocoder struct {
	mock.Mock
}

func (m *mockGeocoder) Resolve(ctx context.Context, address string) (orb.Point, error) {
	args := m.Called(ctx, address)

	return args.Get(0).(orb.Point), args.Error(1)
}
