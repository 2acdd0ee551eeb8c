package repository

import (
	"context"

	"sandy/internal/domain/entity"
)

// BookingRepository defines the interface for booking-related database reads.
type BookingRepository interface {
	// FindRecentBySitter retrieves up to limit bookings for a sitter, joined
	// to the names of the pets involved, ordered newest-first by start date.
	FindRecentBySitter(ctx context.Context, sitterID int64, limit int) ([]*entity.Booking, error)
}
