package web

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/muhammadusama-15/Todo-List-Website/internal/config"
	"github.com/muhammadusama-15/Todo-List-Website/internal/database"
)

type app struct {
	log            *logrus.Logger
	cfg            *config.Config
	Database       *database.Database
	UserService    *database.UserService
	SessionService *database.SessionService
	TaskService    *database.TaskService
}

func RunApp() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	db, err := database.New(cfg.DSN)
	if err != nil {
		log.WithError(err).Fatal("Failed to open SQLite DB")
	}
	defer db.Close()

	log.WithField("dsn", cfg.DSN).Info("SQLite DB connected")

	app := &app{
		log:            log,
		cfg:            cfg,
		Database:       db,
		UserService:    database.NewUserService(db),
		SessionService: database.NewSessionService(db, cfg.SessionTTL),
		TaskService:    database.NewTaskService(db),
	}

	if err := app.SessionService.DeleteExpired(); err != nil {
		log.WithError(err).Warn("Failed to cleanup expired sessions")
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: app.routes(),

		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.WithField("addr", cfg.Addr).Info("Starting server")
	if err := srv.ListenAndServe(); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
