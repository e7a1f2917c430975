package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	sessiondomain "troupe-app-go/internal/domain/session"
	userdomain "troupe-app-go/internal/domain/user"
	"troupe-app-go/pkg/logger"
)

type User struct {
	ID   string
	Name string
	Role string
}

// SessionResolver maps a bearer token to a user id.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// Directory resolves a user id to the current account.
type Directory interface {
	Get(ctx context.Context, id string) (*userdomain.User, error)
}

type SessionAuth struct {
	sessions SessionResolver
	users    Directory
	log      logger.Logger
}

func NewSessionAuth(sessions SessionResolver, users Directory, log logger.Logger) *SessionAuth {
	return &SessionAuth{sessions: sessions, users: users, log: log}
}

func (a *SessionAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w)
			return
		}

		userID, err := a.sessions.Resolve(r.Context(), token)
		if err != nil {
			if !errors.Is(err, sessiondomain.ErrSessionNotFound) && !errors.Is(err, sessiondomain.ErrSessionExpired) {
				a.log.InternalError("auth: resolve session failed", err)
			}
			unauthorized(w)
			return
		}

		account, err := a.users.Get(r.Context(), userID)
		if err != nil {
			// A session can outlive its account when an owner deletes the
			// user; treat it as an invalid token.
			if !errors.Is(err, userdomain.ErrUserNotFound) {
				a.log.InternalError("auth: load user failed", err, "user_id", userID)
			}
			unauthorized(w)
			return
		}

		ctx := WithUser(r.Context(), User{ID: account.ID, Name: account.Name, Role: account.Role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type contextKey int

const userKey contextKey = iota

func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userKey).(User)
	if !ok || user.ID == "" {
		return User{}, false
	}
	return user, true
}

// TokenFromRequest extracts the raw bearer token, for logout.
func TokenFromRequest(r *http.Request) (string, bool) {
	return bearerToken(r.Header.Get("Authorization"))
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    "invalid_token",
			"message": "invalid token",
		},
	})
}
