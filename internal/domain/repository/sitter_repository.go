// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"sandy/internal/domain/entity"
	"sandy/internal/errors"
)

// Domain-specific errors for sitter persistence.
var (
	// ErrSitterNotFound is returned when no sitter matches the given ID.
	ErrSitterNotFound = errors.New("sitter not found")
)

// SitterRepository defines the interface for sitter-related database reads.
// All methods are read-only; the discovery flow never mutates sitter data.
type SitterRepository interface {
	// FindByID retrieves the core sitter record by its unique ID.
	// Returns ErrSitterNotFound if no sitter matches.
	FindByID(ctx context.Context, id int64) (*entity.Sitter, error)

	// FindPhotoURLs retrieves up to limit photo URLs for a sitter. The order
	// is whatever the store returns; the first entry becomes the main image.
	FindPhotoURLs(ctx context.Context, sitterID int64, limit int) ([]string, error)

	// AverageRatingByUser returns the rounded average review rating across
	// all reviews for the sitter's underlying user, or 0 when none exist.
	AverageRatingByUser(ctx context.Context, userID int64) (int, error)

	// FindSupportedSpecies retrieves the species an employee sitter supports.
	// An empty list is a valid result, distinct from the non-employee default.
	FindSupportedSpecies(ctx context.Context, sitterID int64) ([]string, error)
}
