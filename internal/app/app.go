package app

import (
	"context"
	"fmt"
	"net/http"

	"troupe-app-go/internal/config"
	"troupe-app-go/internal/db"
	availabilitydomain "troupe-app-go/internal/domain/availability"
	notificationdomain "troupe-app-go/internal/domain/notification"
	reportdomain "troupe-app-go/internal/domain/report"
	sessiondomain "troupe-app-go/internal/domain/session"
	userdomain "troupe-app-go/internal/domain/user"
	availabilityrepo "troupe-app-go/internal/repository/availability"
	notificationrepo "troupe-app-go/internal/repository/notification"
	sessionrepo "troupe-app-go/internal/repository/session"
	userrepo "troupe-app-go/internal/repository/user"
	"troupe-app-go/internal/transport/httpserver"
	"troupe-app-go/internal/transport/httpserver/handler"
	authmw "troupe-app-go/internal/transport/httpserver/middleware"
	"troupe-app-go/pkg/logger"

	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	applied, err := db.Migrate(dbConn)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Info("app: migrations applied", "count", applied)

	users := userdomain.NewService(userrepo.NewPostgres(dbConn), cfg.Auth.DefaultPIN)
	notifications := notificationdomain.NewService(
		notificationrepo.NewPostgres(dbConn),
		cfg.Notifications.Cap,
		userdomain.CanManageUsers,
	)
	availability := availabilitydomain.NewService(
		availabilityrepo.NewPostgres(dbConn),
		userNames{users: users},
		notifications,
	)
	reports := reportdomain.NewService(users, availability)
	sessions := sessiondomain.NewService(sessionrepo.NewPostgres(dbConn), cfg.Auth.SessionTTL)

	log.Info("app: seeding initial users")
	if err := users.Seed(context.Background()); err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}

	log.Info("app: initializing router")
	handlers := handler.New(users, availability, notifications, reports, sessions, cfg, log)
	auth := authmw.NewSessionAuth(sessions, users, log)
	router := httpserver.NewRouter(cfg, handlers, auth)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// userNames adapts the user service to the availability audit hook.
type userNames struct {
	users *userdomain.Service
}

func (n userNames) UserName(ctx context.Context, userID string) (string, bool) {
	found, err := n.users.Get(ctx, userID)
	if err != nil {
		return "", false
	}
	return found.Name, true
}
