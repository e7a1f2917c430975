package handler

import (
	"errors"
	"net/http"

	userdomain "troupe-app-go/internal/domain/user"
	"troupe-app-go/internal/transport/httpserver/middleware"
)

type loginRequest struct {
	UserID string `json:"user_id"`
	PIN    string `json:"pin"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	account, err := h.Users.Authenticate(r.Context(), req.UserID, req.PIN)
	if err != nil {
		if errors.Is(err, userdomain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials")
			return
		}
		h.log.InternalError("auth.login: authenticate failed", err, "user_id", req.UserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	started, err := h.Sessions.Start(r.Context(), account.ID)
	if err != nil {
		h.log.InternalError("auth.login: start session failed", err, "user_id", account.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token":      started.Token,
		"expires_at": started.ExpiresAt,
		"user":       account,
	})
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}
	if err := h.Sessions.End(r.Context(), token); err != nil {
		h.log.InternalError("auth.logout: end session failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	account, err := h.Users.Get(r.Context(), current.ID)
	if err != nil {
		h.log.InternalError("auth.me: load user failed", err, "user_id", current.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, account)
}

type changePINRequest struct {
	PIN string `json:"pin"`
}

func (h *Handlers) ChangePIN(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	var req changePINRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	if err := h.Users.ChangePIN(r.Context(), current.ID, req.PIN); err != nil {
		if errors.Is(err, userdomain.ErrInvalidPIN) {
			writeError(w, http.StatusBadRequest, "invalid_pin", "pin must be exactly 4 digits")
			return
		}
		h.log.InternalError("auth.change_pin: update failed", err, "user_id", current.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
