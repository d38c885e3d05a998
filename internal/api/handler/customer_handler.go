package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"loan-processing-api/internal/api/handler/dto"
	"loan-processing-api/internal/domain/customer"
	"loan-processing-api/internal/pkg/apperrors"
)

type CustomerHandler struct {
	service customer.CustomerService
	logger  *slog.Logger
}

func NewCustomerHandler(s customer.CustomerService, l *slog.Logger) *CustomerHandler {
	if s == nil {
		panic("customer service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		service: s,
		logger:  l.With("component", "CustomerHandler"),
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	// Unknown fields are ignored; callers may send supersets of the contract.
	return json.NewDecoder(r.Body).Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":{"message":"Internal server error"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, err error) {
	status, message, field := http.StatusInternalServerError, "An unexpected error occurred.", ""
	var validationError *apperrors.ValidationError
	var appErr *apperrors.AppError

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status, message = http.StatusNotFound, "Resource not found."
	case errors.As(err, &validationError):
		status, message, field = http.StatusUnprocessableEntity, validationError.Message, validationError.Field
	case errors.Is(err, apperrors.ErrValidation):
		status, message = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, apperrors.ErrInvalidArgument):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrAlreadyExists), errors.Is(err, apperrors.ErrConflict):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, apperrors.ErrDataIntegrity):
		slog.Default().Error("Data integrity error", "error", err)
	case errors.As(err, &appErr):
		message = appErr.Error()
	default:
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	resp := dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Message: message,
			Field:   field,
		},
	}
	respondJSON(w, status, resp)
}

func getCustomerIDFromURL(r *http.Request) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, "customerID"))
	if id == "" {
		return "", fmt.Errorf("%w: customerID not found in URL path", apperrors.ErrInvalidArgument)
	}
	return id, nil
}

// CreatePersonalDetails handles POST /api/start-application/personal-details
// @Summary Register a new customer
// @Description Registers a new customer from their personal details and allocates the next customer identifier.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.PersonalDetailsRequest true "Personal details payload"
// @Success 201 {object} dto.CustomerCreatedResponse "Customer successfully created"
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Failure 409 {object} dto.ErrorResponse "Identifier collided with a concurrent registration; retry"
// @Failure 422 {object} dto.ErrorResponse "Request failed field validation"
// @Failure 500 {object} dto.ErrorResponse "Internal server error during creation"
// @Router /api/start-application/personal-details [post]
func (h *CustomerHandler) CreatePersonalDetails(w http.ResponseWriter, r *http.Request) {

	h.logger.DebugContext(r.Context(), "Received create personal details request")

	var req dto.PersonalDetailsRequest
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

	createdCustomer, err := h.service.RegisterCustomer(r.Context(), req.ToDomain())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to register customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewCustomerCreatedResponse(createdCustomer)
	h.logger.InfoContext(r.Context(), "Customer created successfully", slog.String("customerID", resp.CustomerID))
	respondJSON(w, http.StatusCreated, resp)
}

// GetCustomerSummary handles GET /api/users/{customerID}/summary
// @Summary Retrieve a customer's financial summary
// @Description Joins the customer's profile, latest recorded income, qualifying loans, and latest credit score into one view.
// @Tags Customers
// @Produce json
// @Param customerID path string true "Customer identifier" example(CUST0111)
// @Success 200 {object} dto.CustomerSummaryResponse "Summary retrieved"
// @Failure 400 {object} dto.ErrorResponse "Missing customer identifier"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/users/{customerID}/summary [get]
func (h *CustomerHandler) GetCustomerSummary(w http.ResponseWriter, r *http.Request) {

	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Received get customer summary request")

	summary, err := h.service.GetCustomerSummary(r.Context(), customerID)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to build customer summary", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewCustomerSummaryResponse(summary)
	h.logger.InfoContext(r.Context(), "Customer summary retrieved successfully", slog.String("customerID", resp.CustomerID))
	respondJSON(w, http.StatusOK, resp)
}

// SearchCustomers handles GET /api/users/search?name=
// @Summary Search customers by name
// @Description Case-insensitive substring match of customers by name. No match reports as not found, not as an empty list.
// @Tags Customers
// @Produce json
// @Param name query string true "Name fragment to search for" example(ram)
// @Success 200 {object} dto.SearchCustomersResponse "Matching customers"
// @Failure 400 {object} dto.ErrorResponse "Missing name query parameter"
// @Failure 404 {object} dto.ErrorResponse "No customers matched"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/users/search [get]
func (h *CustomerHandler) SearchCustomers(w http.ResponseWriter, r *http.Request) {

	h.logger.DebugContext(r.Context(), "Received search customers request")

	name := r.URL.Query().Get("name")
	if strings.TrimSpace(name) == "" {
		h.logger.WarnContext(r.Context(), "Missing name query parameter")
		respondError(w, fmt.Errorf("%w: missing required query parameter 'name'", apperrors.ErrInvalidArgument))
		return
	}

	matches, err := h.service.SearchCustomers(r.Context(), name)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, customer.ErrNoSearchResults) && !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to search customers", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewSearchCustomersResponse(name, matches)
	h.logger.InfoContext(r.Context(), "Customers searched successfully", slog.Int("matches", resp.MatchesFound))
	respondJSON(w, http.StatusOK, resp)
}
