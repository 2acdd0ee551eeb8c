package usecase

import (
	"context"

	"sandy/internal/domain/entity"
)

// SlotInput is one validated availability slot in a replace request.
type SlotInput struct {
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// AvailabilityUsecase defines the interface for weekly availability management.
type AvailabilityUsecase interface {
	// Replace atomically swaps a sitter's entire weekly availability set for
	// the given one. An empty set is a valid full replace. Any failure rolls
	// back, leaving the previous set intact.
	Replace(ctx context.Context, sitterID int64, slots []SlotInput) error

	// Get returns the currently stored slot set for a sitter.
	Get(ctx context.Context, sitterID int64) ([]*entity.AvailabilitySlot, error)
}
