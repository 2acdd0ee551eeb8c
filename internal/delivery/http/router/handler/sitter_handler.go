// Package handler contains the HTTP request handlers.
package handler

import (
	"log/slog"
	"net/http"

	domainerrors "sandy/internal/domain/errors"
	"sandy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SitterHandlerParams holds dependencies for SitterHandler, injected by Fx.
type SitterHandlerParams struct {
	fx.In

	DiscoveryUC usecase.DiscoveryUsecase
	Logger      *slog.Logger
}

// SitterHandler handles the sitter discovery endpoint.
type SitterHandler struct {
	discoveryUC usecase.DiscoveryUsecase
	logger      *slog.Logger
}

// NewSitterHandler is the constructor for SitterHandler
func NewSitterHandler(params SitterHandlerParams) *SitterHandler {
	return &SitterHandler{
		discoveryUC: params.DiscoveryUC,
		logger:      params.Logger,
	}
}

// DiscoverSitterRequest represents the query parameters of a discovery request
type DiscoverSitterRequest struct {
	SitterID      int64  `query:"sitter_id" validate:"required,gt=0"`
	StreetAddress string `query:"street_address" validate:"required"`
	City          string `query:"city" validate:"required"`
	Postcode      string `query:"postcode" validate:"required"`
}

// DiscoverSitter aggregates one sitter's profile relative to the requester's
// address. The response body is the raw profile document, not the envelope;
// the shape is fixed by the mobile client.
func (h *SitterHandler) DiscoverSitter(c echo.Context) error {
	var req DiscoverSitterRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid query parameters")
	}

	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	input := &usecase.DiscoverInput{
		SitterID:      req.SitterID,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		Postcode:      req.Postcode,
	}

	profile, err := h.discoveryUC.Discover(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}
