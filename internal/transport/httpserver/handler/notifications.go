package handler

import (
	"errors"
	"net/http"

	notificationdomain "troupe-app-go/internal/domain/notification"
	userdomain "troupe-app-go/internal/domain/user"
	"troupe-app-go/internal/transport/httpserver/middleware"
)

func (h *Handlers) ListNotifications(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}
	if !userdomain.CanViewStats(current.Role) {
		writeError(w, http.StatusForbidden, "forbidden", "not allowed")
		return
	}

	notes, err := h.Notifications.List(r.Context())
	if err != nil {
		h.log.InternalError("notifications.list: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"notifications": notes})
}

func (h *Handlers) ClearNotifications(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	if err := h.Notifications.Clear(r.Context(), current.Role); err != nil {
		if errors.Is(err, notificationdomain.ErrNotAllowed) {
			writeError(w, http.StatusForbidden, "forbidden", "not allowed")
			return
		}
		h.log.InternalError("notifications.clear: failed", err, "actor_id", current.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
