package postgres

import (
	"context"

	"sandy/internal/domain/entity"
	"sandy/internal/domain/repository"
	"sandy/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// FindRecentBySitter retrieves up to limit reviews tied to bookings served by
// the sitter, newest-first.
func (repo *reviewRepository) FindRecentBySitter(ctx context.Context, sitterID int64, limit int) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN bookings ON bookings.id = reviews.booking_id").
		Where("bookings.sitter_id = ?", sitterID).
		Order("reviews.created_at DESC").
		Limit(limit).
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent reviews by sitter")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// toReviewDomain maps the persistence model back to a pure domain entity.
func toReviewDomain(m *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:           m.ID,
		BookingID:    m.BookingID,
		ReviewerName: m.ReviewerName,
		Rating:       m.Rating,
		Comment:      m.Comment,
	}
}
