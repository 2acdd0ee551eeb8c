package impl

import (
	"context"
	"log/slog"

	"sandy/internal/domain/entity"
	domainerrors "sandy/internal/domain/errors"
	"sandy/internal/domain/repository"
	"sandy/internal/errors"
	"sandy/internal/infra/metrics"
	"sandy/internal/usecase"
)

// availabilityService implements the AvailabilityUsecase interface.
type availabilityService struct {
	txManager        repository.TransactionManager
	availabilityRepo repository.AvailabilityRepository
	logger           *slog.Logger
	metrics          *metrics.Metrics
}

// NewAvailabilityService is the constructor for availabilityService.
func NewAvailabilityService(
	txManager repository.TransactionManager,
	availabilityRepo repository.AvailabilityRepository,
	logger *slog.Logger,
	m *metrics.Metrics,
) usecase.AvailabilityUsecase {
	return &availabilityService{
		txManager:        txManager,
		availabilityRepo: availabilityRepo,
		logger:           logger,
		metrics:          m,
	}
}

// Replace atomically swaps a sitter's entire weekly availability set:
// delete everything, insert the new set, commit. Any failure rolls the
// transaction back so callers never observe an empty or partially-populated
// set mid-write. Concurrent writers for the same sitter serialize at the
// database; last committed wins.
func (srv *availabilityService) Replace(ctx context.Context, sitterID int64, slots []usecase.SlotInput) error {
	if err := validateSlots(slots); err != nil {
		return err
	}

	entities := make([]*entity.AvailabilitySlot, 0, len(slots))
	for _, slot := range slots {
		entities = append(entities, &entity.AvailabilitySlot{
			SitterID:  sitterID,
			DayOfWeek: slot.DayOfWeek,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.AvailabilityRepo()

		if err := repo.DeleteBySitter(ctx, sitterID); err != nil {
			return errors.Wrap(err, "failed to clear existing availability")
		}

		if err := repo.CreateSlots(ctx, entities); err != nil {
			return errors.Wrap(err, "failed to insert new availability")
		}

		return nil
	})
	if err != nil {
		srv.metrics.RecordAvailabilityRollback()

		return err
	}

	srv.metrics.RecordAvailabilityWrite()
	srv.logger.Info("Replaced availability",
		slog.Int64("sitterID", sitterID), slog.Int("slots", len(entities)))

	return nil
}

// Get returns the currently stored slot set for a sitter.
func (srv *availabilityService) Get(ctx context.Context, sitterID int64) ([]*entity.AvailabilitySlot, error) {
	slots, err := srv.availabilityRepo.FindBySitter(ctx, sitterID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load availability")
	}

	return slots, nil
}

// validateSlots rejects the whole batch on the first slot missing a required
// field, before any transaction opens. No overlap validation is performed.
func validateSlots(slots []usecase.SlotInput) error {
	for i, slot := range slots {
		if slot.DayOfWeek == "" {
			return domainerrors.ErrValidationFailed.WithDetails(slotFieldError(i, "day_of_week"))
		}
		if slot.StartTime == "" {
			return domainerrors.ErrValidationFailed.WithDetails(slotFieldError(i, "start_time"))
		}
		if slot.EndTime == "" {
			return domainerrors.ErrValidationFailed.WithDetails(slotFieldError(i, "end_time"))
		}
	}

	return nil
}

func slotFieldError(index int, field string) string {
	return errors.Errorf("slot %d is missing %s", index, field).Error()
}
