package handler

import (
	"errors"
	"net/http"

	userdomain "troupe-app-go/internal/domain/user"
	"troupe-app-go/internal/transport/httpserver/middleware"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		h.log.InternalError("users.list: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

type createUserRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	actor := userdomain.User{ID: current.ID, Name: current.Name, Role: current.Role}
	created, err := h.Users.Create(r.Context(), &actor, req.ID, req.Name, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, userdomain.ErrNotAllowed):
			writeError(w, http.StatusForbidden, "forbidden", "not allowed")
		case errors.Is(err, userdomain.ErrDuplicateID):
			writeError(w, http.StatusConflict, "duplicate_id", "user id already exists")
		case errors.Is(err, userdomain.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, "invalid_role", "invalid role")
		case errors.Is(err, userdomain.ErrInvalidCredentials):
			writeError(w, http.StatusBadRequest, "invalid_request", "id and name are required")
		default:
			h.log.InternalError("users.create: failed", err, "actor_id", current.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	targetID := chi.URLParam(r, "id")
	actor := userdomain.User{ID: current.ID, Role: current.Role}
	if err := h.Users.Delete(r.Context(), &actor, targetID); err != nil {
		switch {
		case errors.Is(err, userdomain.ErrNotAllowed):
			writeError(w, http.StatusForbidden, "forbidden", "not allowed")
		case errors.Is(err, userdomain.ErrSelfDelete):
			writeError(w, http.StatusConflict, "self_delete", "cannot delete own account")
		case errors.Is(err, userdomain.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
		default:
			h.log.InternalError("users.delete: failed", err, "actor_id", current.ID, "target_id", targetID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	// Revoke any live sessions for the removed account.
	if err := h.Sessions.EndAllForUser(r.Context(), targetID); err != nil {
		h.log.InternalError("users.delete: revoke sessions failed", err, "target_id", targetID)
	}

	w.WriteHeader(http.StatusNoContent)
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

func (h *Handlers) ChangeUserRole(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	var req changeRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	targetID := chi.URLParam(r, "id")
	actor := userdomain.User{ID: current.ID, Role: current.Role}
	updated, err := h.Users.ChangeRole(r.Context(), &actor, targetID, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, userdomain.ErrNotAllowed):
			writeError(w, http.StatusForbidden, "forbidden", "only an owner can change roles")
		case errors.Is(err, userdomain.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, "invalid_role", "invalid role")
		case errors.Is(err, userdomain.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
		default:
			h.log.InternalError("users.change_role: failed", err, "actor_id", current.ID, "target_id", targetID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) ResetUserPIN(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	targetID := chi.URLParam(r, "id")
	actor := userdomain.User{ID: current.ID, Role: current.Role}
	if err := h.Users.ResetPIN(r.Context(), &actor, targetID); err != nil {
		switch {
		case errors.Is(err, userdomain.ErrNotAllowed):
			writeError(w, http.StatusForbidden, "forbidden", "not allowed")
		case errors.Is(err, userdomain.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
		default:
			h.log.InternalError("users.reset_pin: failed", err, "actor_id", current.ID, "target_id", targetID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
