package repository

import (
	"context"

	"sandy/internal/domain/entity"
)

// ReviewRepository defines the interface for review-related database reads.
type ReviewRepository interface {
	// FindRecentBySitter retrieves up to limit reviews tied to bookings
	// served by the sitter, newest-first.
	FindRecentBySitter(ctx context.Context, sitterID int64, limit int) ([]*entity.Review, error)
}
