package postgres

import (
	"context"

	"sandy/internal/domain/entity"
	"sandy/internal/domain/repository"
	"sandy/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookingRepository implements the repository.BookingRepository interface.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{
		db: db,
	}
}

// FindRecentBySitter retrieves up to limit bookings for a sitter, newest-first
// by start date, with the names of the pets involved.
func (repo *bookingRepository) FindRecentBySitter(ctx context.Context, sitterID int64, limit int) ([]*entity.Booking, error) {
	var bookingModels []*model.BookingModel

	if err := repo.db.WithContext(ctx).
		Preload("Pets").
		Where("sitter_id = ?", sitterID).
		Order("start_date DESC").
		Limit(limit).
		Find(&bookingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent bookings by sitter")
	}

	bookings := make([]*entity.Booking, 0, len(bookingModels))
	for _, bookingM := range bookingModels {
		bookings = append(bookings, toBookingDomain(bookingM))
	}

	return bookings, nil
}

// toBookingDomain maps the persistence model back to a pure domain entity.
func toBookingDomain(m *model.BookingModel) *entity.Booking {
	petNames := make([]string, 0, len(m.Pets))
	for _, pet := range m.Pets {
		petNames = append(petNames, pet.PetName)
	}

	return &entity.Booking{
		ID:        m.ID,
		SitterID:  m.SitterID,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		PetNames:  petNames,
	}
}
