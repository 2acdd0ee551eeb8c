package repository

import (
	"context"

	"sandy/internal/domain/entity"
)

// AvailabilityRepository defines the interface for availability slot
// persistence. Writes are only ever issued through the TransactionManager so
// that delete-then-insert replaces are atomic.
type AvailabilityRepository interface {
	// FindBySitter retrieves all stored slots for a sitter.
	FindBySitter(ctx context.Context, sitterID int64) ([]*entity.AvailabilitySlot, error)

	// DeleteBySitter removes every slot belonging to a sitter. Deleting zero
	// rows is not an error.
	DeleteBySitter(ctx context.Context, sitterID int64) error

	// CreateSlots inserts the given slots. An empty set is a no-op.
	CreateSlots(ctx context.Context, slots []*entity.AvailabilitySlot) error
}
