package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"loan-processing-api/internal/api/handler/dto"
	"loan-processing-api/internal/domain/employment"
	"loan-processing-api/internal/pkg/apperrors"
)

type EmploymentHandler struct {
	service employment.EmploymentService
	logger  *slog.Logger
}

func NewEmploymentHandler(s employment.EmploymentService, l *slog.Logger) *EmploymentHandler {
	if s == nil {
		panic("employment service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &EmploymentHandler{
		service: s,
		logger:  l.With("component", "EmploymentHandler"),
	}
}

// AddEmploymentDetails handles POST /api/users/{customerID}/employment-details
// @Summary Add employment details for a customer
// @Description Appends an employment record for an existing customer with the default Active/Pending statuses.
// @Tags Employment
// @Accept json
// @Produce json
// @Param customerID path string true "Customer identifier" example(CUST0111)
// @Param request body dto.EmploymentDetailsRequest true "Employment details payload"
// @Success 201 {object} dto.EmploymentCreatedResponse "Employment details successfully added"
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 422 {object} dto.ErrorResponse "Request failed field validation"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/users/{customerID}/employment-details [post]
func (h *EmploymentHandler) AddEmploymentDetails(w http.ResponseWriter, r *http.Request) {

	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Received add employment details request")

	var req dto.EmploymentDetailsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %w", apperrors.ErrValidation, err))
		return
	}
	h.logger.DebugContext(r.Context(), "Request validation passed")

	rec, err := h.service.AddEmploymentDetails(r.Context(), customerID, req.Designation, decimal.NewFromFloat(req.MonthlyIncome))
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to add employment details", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewEmploymentCreatedResponse(rec)
	h.logger.InfoContext(r.Context(), "Employment details added successfully", slog.String("customerID", resp.CustomerID))
	respondJSON(w, http.StatusCreated, resp)
}
