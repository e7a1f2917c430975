package handler

import (
	"errors"
	"fmt"
	"net/http"

	reportdomain "troupe-app-go/internal/domain/report"
	userdomain "troupe-app-go/internal/domain/user"
	"troupe-app-go/internal/transport/httpserver/middleware"
)

// Report returns the per-day, per-slot matrix for a date range. The whole
// endpoint is gated on the stats capability, so percentages are always
// included for callers that get this far.
func (h *Handlers) Report(w http.ResponseWriter, r *http.Request) {
	current, start, end, ok := h.reportParams(w, r)
	if !ok {
		return
	}

	rows, err := h.Reports.Generate(r.Context(), start, end, userdomain.CanViewStats(current.Role))
	if err != nil {
		if errors.Is(err, reportdomain.ErrInvalidRange) {
			writeError(w, http.StatusBadRequest, "invalid_range", "invalid date range")
			return
		}
		h.log.InternalError("reports.generate: failed", err, "from", start, "to", end)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"from": start,
		"to":   end,
		"rows": rows,
	})
}

// ExportReport streams the CSV download of the same report.
func (h *Handlers) ExportReport(w http.ResponseWriter, r *http.Request) {
	current, start, end, ok := h.reportParams(w, r)
	if !ok {
		return
	}

	includeStats := userdomain.CanViewStats(current.Role)
	rows, err := h.Reports.Generate(r.Context(), start, end, includeStats)
	if err != nil {
		if errors.Is(err, reportdomain.ErrInvalidRange) {
			writeError(w, http.StatusBadRequest, "invalid_range", "invalid date range")
			return
		}
		h.log.InternalError("reports.export: failed", err, "from", start, "to", end)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", reportdomain.Filename(start, end)))
	if err := reportdomain.WriteCSV(w, rows, includeStats); err != nil {
		h.log.InternalError("reports.export: write failed", err)
	}
}

func (h *Handlers) reportParams(w http.ResponseWriter, r *http.Request) (middleware.User, string, string, bool) {
	current, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return middleware.User{}, "", "", false
	}
	if !userdomain.CanViewStats(current.Role) {
		writeError(w, http.StatusForbidden, "forbidden", "not allowed")
		return middleware.User{}, "", "", false
	}

	query := r.URL.Query()
	from, err := parseDateRequired(query.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "from is required")
		return middleware.User{}, "", "", false
	}
	to, err := parseDateRequired(query.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "to is required")
		return middleware.User{}, "", "", false
	}

	return current, from.Format(dateLayout), to.Format(dateLayout), true
}
