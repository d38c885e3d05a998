package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"loan-processing-api/internal/api/handler/dto"
	"loan-processing-api/internal/domain/loan"
	"loan-processing-api/internal/pkg/apperrors"
)

type LoanHandler struct {
	service loan.LoanService
	logger  *slog.Logger
}

func NewLoanHandler(s loan.LoanService, l *slog.Logger) *LoanHandler {
	if s == nil {
		panic("loan service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &LoanHandler{
		service: s,
		logger:  l.With("component", "LoanHandler"),
	}
}

// AddLoanInfo handles POST /api/users/{customerID}/loan-info
// @Summary Add a loan application for a customer
// @Description Appends a loan application for an existing customer with the default Home/documents/PENDING values.
// @Tags Loans
// @Accept json
// @Produce json
// @Param customerID path string true "Customer identifier" example(CUST0111)
// @Param request body dto.LoanApplicationRequest true "Loan application payload"
// @Success 201 {object} dto.LoanCreatedResponse "Loan application successfully added"
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 422 {object} dto.ErrorResponse "Request failed field validation"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/users/{customerID}/loan-info [post]
func (h *LoanHandler) AddLoanInfo(w http.ResponseWriter, r *http.Request) {

	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Received add loan info request")

	var req dto.LoanApplicationRequest
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

	app, err := h.service.AddLoanApplication(r.Context(), customerID, req.ToInput())
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to add loan application", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewLoanCreatedResponse(app)
	h.logger.InfoContext(r.Context(), "Loan application added successfully", slog.String("customerID", resp.CustomerID))
	respondJSON(w, http.StatusCreated, resp)
}
