package hirequalityhandler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hirequality/internal/domain/hirequality"
	"hirequality/internal/domain/hires"
	"hirequality/internal/platform/metrics"
	"hirequality/internal/render"
	"hirequality/internal/transport/http/api"
	"hirequality/internal/transport/http/middleware"
	"hirequality/internal/transport/http/shared"
)

const maxImageSide = 2000

type ExportRecorder interface {
	RecordExport(format string)
}

type Handler struct {
	Service *hirequality.Service
	Exports ExportRecorder
	Guard   func(http.Handler) http.Handler
}

func NewHandler(service *hirequality.Service, exports ExportRecorder, guard func(http.Handler) http.Handler) *Handler {
	return &Handler{Service: service, Exports: exports, Guard: guard}
}

// RegisterRoutes mounts the JSON, image and PDF endpoints under the API router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/hire-quality", func(r chi.Router) {
		if h.Guard != nil {
			r.Use(h.Guard)
		}
		r.Get("/", h.handleDashboard)
		r.Post("/aggregate", h.handleAggregate)
		r.Get("/charts/ratings.png", h.handleRatingPNG)
		r.Get("/charts/probation.png", h.handleProbationPNG)
		r.Get("/export.pdf", h.handlePDF)
	})
}

// RegisterPage mounts the HTML dashboard outside the API prefix.
func (h *Handler) RegisterPage(r chi.Router) {
	if h.Guard != nil {
		r.With(h.Guard).Get("/hire-quality", h.handlePage)
		return
	}
	r.Get("/hire-quality", h.handlePage)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, ok := h.load(w, r)
	if !ok {
		return
	}
	h.recordExport(metrics.FormatJSON)
	api.Success(w, dashboard, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAggregate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload struct {
		Hires []hires.HireRecord `json:"hires"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	dashboard := h.Service.Build(r.Context(), payload.Hires)
	h.recordExport(metrics.FormatJSON)
	api.Success(w, dashboard, requestID)
}

func (h *Handler) handleRatingPNG(w http.ResponseWriter, r *http.Request) {
	h.writePNG(w, r, render.RatingPNG)
}

func (h *Handler) handleProbationPNG(w http.ResponseWriter, r *http.Request) {
	h.writePNG(w, r, render.ProbationPNG)
}

func (h *Handler) writePNG(w http.ResponseWriter, r *http.Request, draw func(io.Writer, hirequality.Dashboard, render.Size) error) {
	requestID := middleware.GetRequestID(r.Context())
	validator := shared.NewValidator()
	size := render.Size{
		Width:  imageSide(validator, r, "width"),
		Height: imageSide(validator, r, "height"),
	}
	if validator.Reject(w, requestID) {
		return
	}
	dashboard, ok := h.load(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := draw(&buf, dashboard, size); err != nil {
		slog.ErrorContext(r.Context(), "chart render failed", "err", err, "path", r.URL.Path)
		api.Fail(w, http.StatusInternalServerError, "render_failed", "failed to render chart", requestID)
		return
	}
	h.recordExport(metrics.FormatPNG)
	writeBody(w, "image/png", buf.Bytes())
}

func (h *Handler) handlePDF(w http.ResponseWriter, r *http.Request) {
	dashboard, ok := h.load(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := render.PDF(&buf, dashboard); err != nil {
		slog.ErrorContext(r.Context(), "pdf render failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "render_failed", "failed to render report", middleware.GetRequestID(r.Context()))
		return
	}
	h.recordExport(metrics.FormatPDF)
	w.Header().Set("Content-Disposition", `attachment; filename="hire-quality.pdf"`)
	writeBody(w, "application/pdf", buf.Bytes())
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	dashboard, ok := h.load(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := render.HTML(&buf, dashboard); err != nil {
		slog.ErrorContext(r.Context(), "page render failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "render_failed", "failed to render page", middleware.GetRequestID(r.Context()))
		return
	}
	h.recordExport(metrics.FormatHTML)
	writeBody(w, "text/html; charset=utf-8", buf.Bytes())
}

// load parses the date filter and builds the dashboard from the store. It
// writes the error response itself and reports whether the caller may go on.
func (h *Handler) load(w http.ResponseWriter, r *http.Request) (hirequality.Dashboard, bool) {
	requestID := middleware.GetRequestID(r.Context())
	validator := shared.NewValidator()
	filter := shared.ParseFilter(r, validator)
	if validator.Reject(w, requestID) {
		return hirequality.Dashboard{}, false
	}

	dashboard, err := h.Service.Dashboard(r.Context(), filter)
	if err != nil {
		slog.ErrorContext(r.Context(), "dashboard build failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to build dashboard", requestID)
		return hirequality.Dashboard{}, false
	}
	return dashboard, true
}

func (h *Handler) recordExport(format string) {
	if h.Exports != nil {
		h.Exports.RecordExport(format)
	}
}

func imageSide(v *shared.Validator, r *http.Request, field string) int {
	raw := r.URL.Query().Get(field)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 || value > maxImageSide {
		v.Add(field, "must be an integer between 1 and "+strconv.Itoa(maxImageSide))
		return 0
	}
	return value
}

func writeBody(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		slog.Warn("write response failed", "err", err)
	}
}
