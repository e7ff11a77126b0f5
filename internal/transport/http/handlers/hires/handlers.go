package hireshandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hirequality/internal/domain/hires"
	"hirequality/internal/transport/http/api"
	"hirequality/internal/transport/http/middleware"
	"hirequality/internal/transport/http/shared"
)

const maxIDLength = 64

type Handler struct {
	Store hires.Store
	Guard func(http.Handler) http.Handler
}

func NewHandler(store hires.Store, guard func(http.Handler) http.Handler) *Handler {
	return &Handler{Store: store, Guard: guard}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/hires", func(r chi.Router) {
		if h.Guard != nil {
			r.Use(h.Guard)
		}
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{hireID}", h.handleGet)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	validator := shared.NewValidator()
	filter := shared.ParseFilter(r, validator)
	if validator.Reject(w, requestID) {
		return
	}

	records, err := h.Store.ListHires(r.Context(), filter)
	if err != nil {
		slog.ErrorContext(r.Context(), "hire list failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "hire_list_failed", "failed to list hires", requestID)
		return
	}
	api.Success(w, records, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload hires.HireRecord
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	validator := shared.NewValidator()
	validator.MaxLen("id", payload.ID, maxIDLength)
	validator.Required("hireDate", payload.HireDate, "is required")
	if payload.HireDate != "" {
		if _, ok := hires.ParseHireDate(payload.HireDate); !ok {
			validator.Add("hireDate", "must be a valid date in YYYY-MM-DD format")
		}
	}
	validator.OneOf("firstPerformanceRating", payload.FirstPerformanceRating, ratingNames())
	validator.OneOf("probationOutcome", payload.ProbationOutcome, outcomeNames())
	if validator.Reject(w, requestID) {
		return
	}

	created, err := h.Store.CreateHire(r.Context(), payload)
	switch {
	case errors.Is(err, hires.ErrDuplicateID):
		api.Fail(w, http.StatusConflict, "hire_exists", "a hire with this id already exists", requestID)
		return
	case errors.Is(err, hires.ErrInvalidRecord):
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), requestID)
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "hire create failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "hire_create_failed", "failed to create hire", requestID)
		return
	}
	api.Created(w, created, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	record, err := h.Store.GetHire(r.Context(), chi.URLParam(r, "hireID"))
	if errors.Is(err, hires.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "hire not found", requestID)
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "hire lookup failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "hire_get_failed", "failed to load hire", requestID)
		return
	}
	api.Success(w, record, requestID)
}

func ratingNames() []string {
	out := make([]string, 0, len(hires.Ratings))
	for _, rating := range hires.Ratings {
		out = append(out, string(rating))
	}
	return out
}

func outcomeNames() []string {
	out := make([]string, 0, len(hires.Outcomes))
	for _, outcome := range hires.Outcomes {
		out = append(out, string(outcome))
	}
	return out
}
