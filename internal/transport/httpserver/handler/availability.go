package handler

import (
	"net/http"
	"time"

	availabilitydomain "troupe-app-go/internal/domain/availability"
	"troupe-app-go/internal/transport/httpserver/middleware"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) ListAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	userID := query.Get("user_id")

	from, err := parseDateParam(query.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid from date")
		return
	}
	to, err := parseDateParam(query.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid to date")
		return
	}
	if (from == nil) != (to == nil) {
		writeError(w, http.StatusBadRequest, "invalid_request", "from and to must be provided together")
		return
	}

	var records []availabilitydomain.Record
	switch {
	case userID != "":
		records, err = h.Availability.ListByUser(r.Context(), userID)
		if err == nil && from != nil {
			records = filterRange(records, from.Format(dateLayout), to.Format(dateLayout))
		}
	case from != nil:
		records, err = h.Availability.ListRange(r.Context(), from.Format(dateLayout), to.Format(dateLayout))
	default:
		records, err = h.Availability.List(r.Context())
	}
	if err != nil {
		h.log.InternalError("availability.list: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"records": records})
}

type setAvailabilityRequest struct {
	Slots []string `json:"slots"`
}

// SetAvailability overwrites the caller's slot selection for one date. An
// empty slot list clears the date.
func (h *Handlers) SetAvailability(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	var req setAvailabilityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	slots := make([]availabilitydomain.Slot, 0, len(req.Slots))
	for _, raw := range req.Slots {
		slot, err := availabilitydomain.ParseSlot(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_slot", err.Error())
			return
		}
		slots = append(slots, slot)
	}

	date := chi.URLParam(r, "date")

	// The horizon guard lives here, not in the store: parseable dates too
	// far out are rejected, anything else passes through unchanged.
	if parsed, err := time.Parse(dateLayout, date); err == nil && h.calendar.MaxMonthsAhead > 0 {
		horizon := time.Now().AddDate(0, h.calendar.MaxMonthsAhead, 0)
		if parsed.After(horizon) {
			writeError(w, http.StatusUnprocessableEntity, "too_far_ahead", "cannot mark unavailability that far in the future")
			return
		}
	}

	if err := h.Availability.Set(r.Context(), current.ID, date, slots); err != nil {
		h.log.InternalError("availability.set: failed", err, "user_id", current.ID, "date", date)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func filterRange(records []availabilitydomain.Record, from, to string) []availabilitydomain.Record {
	result := make([]availabilitydomain.Record, 0, len(records))
	for _, rec := range records {
		if rec.Date >= from && rec.Date <= to {
			result = append(result, rec)
		}
	}
	return result
}
