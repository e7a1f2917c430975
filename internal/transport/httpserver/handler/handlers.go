package handler

import (
	"net/http"

	"troupe-app-go/internal/config"
	availabilitydomain "troupe-app-go/internal/domain/availability"
	notificationdomain "troupe-app-go/internal/domain/notification"
	reportdomain "troupe-app-go/internal/domain/report"
	sessiondomain "troupe-app-go/internal/domain/session"
	userdomain "troupe-app-go/internal/domain/user"
	"troupe-app-go/pkg/logger"
)

type Handlers struct {
	Users         *userdomain.Service
	Availability  *availabilitydomain.Service
	Notifications *notificationdomain.Service
	Reports       *reportdomain.Service
	Sessions      *sessiondomain.Service

	calendar      config.CalendarConfig
	notifications config.NotificationsConfig
	log           logger.Logger
}

func New(
	users *userdomain.Service,
	availability *availabilitydomain.Service,
	notifications *notificationdomain.Service,
	reports *reportdomain.Service,
	sessions *sessiondomain.Service,
	cfg config.Config,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Users:         users,
		Availability:  availability,
		Notifications: notifications,
		Reports:       reports,
		Sessions:      sessions,
		calendar:      cfg.Calendar,
		notifications: cfg.Notifications,
		log:           log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
