package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/expenses-dev/expenses-service/internal/mapper"
	"github.com/expenses-dev/expenses-service/internal/middleware"
	"github.com/expenses-dev/expenses-service/internal/models"
	"github.com/expenses-dev/expenses-service/internal/service"
)

// Accepted expense date formats.
var dateFormats = []string{"2006-01-02", time.RFC3339}

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes attaches the expense endpoints to the router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/expenses", h.CreateExpense).Methods("POST")
	api.HandleFunc("/expenses/{id}", h.GetExpenseByID).Methods("GET")
	api.HandleFunc("/expenses", h.ListExpenses).Methods("GET")
}

// CreateExpense handles POST /api/v1/expenses
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req models.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	date, msg := validateCreateRequest(req)
	if msg != "" {
		respondMessage(w, http.StatusBadRequest, msg)
		return
	}

	expense := mapper.ExpenseFromRequest(req, date)
	id, err := h.svc.CreateExpense(r.Context(), &expense, req.Currency, req.Type)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/expenses/%d", id))
	respondJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// GetExpenseByID handles GET /api/v1/expenses/{id}
func (h *Handler) GetExpenseByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		respondMessage(w, http.StatusBadRequest, "invalid expense id")
		return
	}

	expense, err := h.svc.GetExpenseByID(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, mapper.ExpenseToResponse(expense))
}

// ListExpenses handles GET /api/v1/expenses
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	var userID *int
	if v := r.URL.Query().Get("userId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			respondMessage(w, http.StatusBadRequest, "invalid userId format")
			return
		}
		userID = &id
	}

	sortBy, recognized := models.ParseSortBy(r.URL.Query().Get("sortBy"))
	sortOrder := models.ParseSortOrder(r.URL.Query().Get("sortOrder"))
	if !recognized {
		// Unknown sort key falls back to date ascending.
		sortOrder = models.SortOrderAscending
	}

	expenses, err := h.svc.ListExpenses(r.Context(), userID, sortBy, sortOrder)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if len(expenses) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	respondJSON(w, http.StatusOK, mapper.ExpensesToResponses(expenses))
}

// validateCreateRequest enforces the boundary field constraints and parses
// the date. It returns the parsed date and an empty message on success.
func validateCreateRequest(req models.CreateExpenseRequest) (time.Time, string) {
	if req.UserID == 0 {
		return time.Time{}, "the userId field is required"
	}
	if req.ExpenseDate == "" {
		return time.Time{}, "the expenseDate field is required"
	}
	date, err := parseDate(req.ExpenseDate)
	if err != nil {
		return time.Time{}, "invalid date format"
	}
	if date.Before(time.Now().AddDate(0, -3, 0)) {
		return time.Time{}, "the expense date cannot be older than 3 months"
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return time.Time{}, "the amount must be greater than zero"
	}
	if req.Comment == "" {
		return time.Time{}, "the comment field is required"
	}
	if len(req.Comment) > 500 {
		return time.Time{}, "the comment field must not exceed 500 characters"
	}
	if req.Type == "" {
		return time.Time{}, "the type field is required"
	}
	if len(req.Currency) != 3 {
		return time.Time{}, "the currency field must be 3 characters long"
	}
	return date, ""
}

func parseDate(s string) (time.Time, error) {
	var err error
	for _, format := range dateFormats {
		var t time.Time
		if t, err = time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// respondError translates typed service errors into HTTP outcomes. Anything
// unexpected is logged with the request's correlation id and reported as a
// generic failure.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *service.NotFoundError
	if errors.As(err, &notFound) {
		respondMessage(w, http.StatusNotFound, notFound.Message)
		return
	}
	var validation *service.ValidationError
	if errors.As(err, &validation) {
		respondMessage(w, http.StatusBadRequest, validation.Reason)
		return
	}
	h.log.WithFields(logrus.Fields{
		"correlation_id": middleware.CorrelationIDFromContext(r.Context()),
		"path":           r.URL.Path,
	}).Errorf("Request failed: %v", err)
	respondMessage(w, http.StatusInternalServerError, "internal server error")
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}
