package postgres

import (
	"context"

	"sandy/internal/domain/entity"
	domainerrors "sandy/internal/domain/errors"
	"sandy/internal/domain/repository"
	"sandy/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// availabilityRepository implements the repository.AvailabilityRepository interface.
type availabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository is the constructor for availabilityRepository.
// Writes go through instances created by the transaction manager's factory so
// the delete-then-insert replace runs on one connection.
func NewAvailabilityRepository(db *gorm.DB) repository.AvailabilityRepository {
	return &availabilityRepository{
		db: db,
	}
}

// FindBySitter retrieves all stored slots for a sitter.
func (repo *availabilityRepository) FindBySitter(ctx context.Context, sitterID int64) ([]*entity.AvailabilitySlot, error) {
	var slotModels []*model.AvailabilitySlotModel

	if err := repo.db.WithContext(ctx).
		Where("sitter_id = ?", sitterID).
		Order("id ASC").
		Find(&slotModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find availability slots by sitter")
	}

	slots := make([]*entity.AvailabilitySlot, 0, len(slotModels))
	for _, slotM := range slotModels {
		slots = append(slots, toSlotDomain(slotM))
	}

	return slots, nil
}

// DeleteBySitter removes every slot belonging to a sitter.
func (repo *availabilityRepository) DeleteBySitter(ctx context.Context, sitterID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("sitter_id = ?", sitterID).
		Delete(&model.AvailabilitySlotModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete availability slots")
	}

	return nil
}

// CreateSlots inserts the given slots. An empty set is a no-op.
func (repo *availabilityRepository) CreateSlots(ctx context.Context, slots []*entity.AvailabilitySlot) error {
	if len(slots) == 0 {
		return nil
	}

	slotModels := make([]*model.AvailabilitySlotModel, 0, len(slots))
	for _, slot := range slots {
		slotModels = append(slotModels, fromSlotDomain(slot))
	}

	if err := repo.db.WithContext(ctx).Create(&slotModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPersistenceFailed.WrapMessage("invalid sitter reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPersistenceFailed.WrapMessage("missing required slot information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert availability slots")
	}

	// Update the entities with generated values
	for i, slotM := range slotModels {
		slots[i].ID = slotM.ID
		slots[i].CreatedAt = slotM.CreatedAt
	}

	return nil
}

// toSlotDomain maps the persistence model back to a pure domain entity.
func toSlotDomain(m *model.AvailabilitySlotModel) *entity.AvailabilitySlot {
	return &entity.AvailabilitySlot{
		ID:        m.ID,
		SitterID:  m.SitterID,
		DayOfWeek: m.DayOfWeek,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		CreatedAt: m.CreatedAt,
	}
}

// fromSlotDomain maps a domain entity to its persistence model.
func fromSlotDomain(slot *entity.AvailabilitySlot) *model.AvailabilitySlotModel {
	return &model.AvailabilitySlotModel{
		ID:        slot.ID,
		SitterID:  slot.SitterID,
		DayOfWeek: slot.DayOfWeek,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
	}
}
