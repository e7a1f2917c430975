package handler

import (
	"net/http"

	availabilitydomain "troupe-app-go/internal/domain/availability"
)

type slotInfo struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Time  string `json:"time"`
}

// Slot display metadata, shared with clients so every surface renders the
// same time windows.
var slotCatalog = []slotInfo{
	{Key: string(availabilitydomain.SlotMorning), Label: "Morning", Time: "08:00 - 13:00"},
	{Key: string(availabilitydomain.SlotAfternoon), Label: "Afternoon", Time: "13:01 - 20:00"},
	{Key: string(availabilitydomain.SlotNight), Label: "Night", Time: "20:01 - 07:59"},
	{Key: string(availabilitydomain.SlotFullDay), Label: "Full day", Time: "All day"},
}

func (h *Handlers) Meta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"slots":                      slotCatalog,
		"max_months_ahead":           h.calendar.MaxMonthsAhead,
		"notification_poll_interval": h.notifications.PollInterval.String(),
	})
}
