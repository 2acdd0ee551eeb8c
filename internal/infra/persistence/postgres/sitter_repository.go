package postgres

import (
	"context"
	"math"

	"sandy/internal/domain/entity"
	"sandy/internal/domain/repository"
	"sandy/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sitterRepository implements the repository.SitterRepository interface.
type sitterRepository struct {
	db *gorm.DB
}

// NewSitterRepository is the constructor for sitterRepository.
func NewSitterRepository(db *gorm.DB) repository.SitterRepository {
	return &sitterRepository{
		db: db,
	}
}

// FindByID retrieves the core sitter record by its unique ID.
func (repo *sitterRepository) FindByID(ctx context.Context, id int64) (*entity.Sitter, error) {
	var sitterM model.SitterModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sitterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSitterNotFound
		}

		return nil, errors.Wrap(err, "failed to find sitter by ID")
	}

	return toSitterDomain(&sitterM), nil
}

// FindPhotoURLs retrieves up to limit photo URLs for a sitter. Ordering by
// primary key keeps reads stable in practice, but the contract makes no
// ordering promise.
func (repo *sitterRepository) FindPhotoURLs(ctx context.Context, sitterID int64, limit int) ([]string, error) {
	urls := make([]string, 0, limit)

	if err := repo.db.WithContext(ctx).
		Model(&model.SitterPhotoModel{}).
		Where("sitter_id = ?", sitterID).
		Order("id ASC").
		Limit(limit).
		Pluck("url", &urls).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sitter photos")
	}

	return urls, nil
}

// AverageRatingByUser returns the rounded average rating across all reviews
// for the sitter's underlying user, or 0 when no reviews exist.
func (repo *sitterRepository) AverageRatingByUser(ctx context.Context, userID int64) (int, error) {
	var avg float64

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Joins("JOIN bookings ON bookings.id = reviews.booking_id").
		Joins("JOIN sitters ON sitters.id = bookings.sitter_id").
		Where("sitters.user_id = ?", userID).
		Select("COALESCE(AVG(reviews.rating), 0)").
		Scan(&avg).Error; err != nil {
		return 0, errors.Wrap(err, "failed to compute average rating")
	}

	return int(math.Round(avg)), nil
}

// FindSupportedSpecies retrieves the species an employee sitter supports.
func (repo *sitterRepository) FindSupportedSpecies(ctx context.Context, sitterID int64) ([]string, error) {
	species := make([]string, 0)

	if err := repo.db.WithContext(ctx).
		Model(&model.SitterSpeciesModel{}).
		Where("sitter_id = ?", sitterID).
		Order("species ASC").
		Pluck("species", &species).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find supported species")
	}

	return species, nil
}

// toSitterDomain maps the persistence model back to a pure domain entity.
func toSitterDomain(m *model.SitterModel) *entity.Sitter {
	return &entity.Sitter{
		ID:              m.ID,
		UserID:          m.UserID,
		Name:            m.Name,
		ExperienceYears: m.ExperienceYears,
		Personality:     m.Personality,
		Subscription:    m.Subscription,
		Coordinates: entity.Coordinates{
			Latitude:  m.Latitude,
			Longitude: m.Longitude,
		},
		Employee:       m.Employee,
		Certifications: m.Certifications,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
