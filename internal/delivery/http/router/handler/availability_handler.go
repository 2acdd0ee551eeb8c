package handler

import (
	"log/slog"
	"net/http"

	"sandy/internal/delivery/http/response"
	domainerrors "sandy/internal/domain/errors"
	"sandy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AvailabilityHandlerParams holds dependencies for AvailabilityHandler, injected by Fx.
type AvailabilityHandlerParams struct {
	fx.In

	AvailabilityUC usecase.AvailabilityUsecase
	Logger         *slog.Logger
}

// AvailabilityHandler handles the weekly availability endpoints.
type AvailabilityHandler struct {
	availabilityUC usecase.AvailabilityUsecase
	logger         *slog.Logger
}

// NewAvailabilityHandler is the constructor for AvailabilityHandler
func NewAvailabilityHandler(params AvailabilityHandlerParams) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUC: params.AvailabilityUC,
		logger:         params.Logger,
	}
}

// ReplaceAvailabilityRequest represents the request body for replacing a
// sitter's weekly availability. The availability field must be present: an
// empty list is a valid full clear, but a missing or null field is rejected
// so a malformed request can never wipe the stored schedule.
type ReplaceAvailabilityRequest struct {
	SitterID int64                `json:"sitter_id" validate:"required,gt=0"`
	Slots    *[]usecase.SlotInput `json:"availability" validate:"required"`
}

// SlotResponse is one stored slot in the availability read response.
type SlotResponse struct {
	ID        int64  `json:"id"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ReplaceAvailability handles replacing a sitter's entire weekly schedule
func (h *AvailabilityHandler) ReplaceAvailability(c echo.Context) error {
	var req ReplaceAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid availability payload")
	}

	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	slots := *req.Slots
	if err := h.availabilityUC.Replace(c.Request().Context(), req.SitterID, slots); err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated,
		map[string]int{"slots": len(slots)}, "Availability replaced successfully")
}

// GetAvailabilityRequest represents the query parameters of an availability read
type GetAvailabilityRequest struct {
	SitterID int64 `query:"sitter_id" validate:"required,gt=0"`
}

// GetAvailability handles reading a sitter's stored weekly schedule
func (h *AvailabilityHandler) GetAvailability(c echo.Context) error {
	var req GetAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid query parameters")
	}

	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	slots, err := h.availabilityUC.Get(c.Request().Context(), req.SitterID)
	if err != nil {
		return err
	}

	payload := make([]SlotResponse, 0, len(slots))
	for _, slot := range slots {
		payload = append(payload, SlotResponse{
			ID:        slot.ID,
			DayOfWeek: slot.DayOfWeek,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	return response.Success(c, http.StatusOK, payload, "Availability retrieved successfully")
}
