package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bizledger/books/backend/internal/report"
)

// userIDHeader carries the caller identity. Authentication itself happens
// upstream (gateway/interceptor); this service only scopes queries by it.
const userIDHeader = "X-User-Id"

// Handler exposes the report service over HTTP.
type Handler struct {
	reports *ReportService
}

// NewHandler builds the HTTP handler for the report service.
func NewHandler(reports *ReportService) *Handler {
	return &Handler{reports: reports}
}

// Routes registers the report endpoints on a chi router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/reports/{kind}", h.getReport)
	r.Get("/reports/{kind}/export", h.exportReport)
	return r
}

func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.generate(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (h *Handler) exportReport(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.generate(w, r)
	if !ok {
		return
	}

	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "csv"
	}
	data, filename, contentType, err := ExportReport(rep, format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// generate handles the shared parameter plumbing for both endpoints. It
// writes the error response itself and returns ok=false on failure.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request) (*report.Report, bool) {
	userID := r.Header.Get(userIDHeader)
	if userID == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing "+userIDHeader+" header"))
		return nil, false
	}

	kind, err := report.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}

	q := r.URL.Query()
	rep, err := h.reports.GenerateReport(r.Context(), userID, kind, ReportRequest{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		CompanyID: q.Get("company_id"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return nil, false
	}
	return rep, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
