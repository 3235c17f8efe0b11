package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/notevault/auth"
	"github.com/dmitrymomot/notevault/core/config"
	"github.com/dmitrymomot/notevault/core/cookie"
	"github.com/dmitrymomot/notevault/core/health"
	"github.com/dmitrymomot/notevault/core/logger"
	"github.com/dmitrymomot/notevault/core/server"
	"github.com/dmitrymomot/notevault/core/sessiontransport"
	"github.com/dmitrymomot/notevault/image"
	"github.com/dmitrymomot/notevault/integration/database/pg"
	"github.com/dmitrymomot/notevault/integration/storage/s3"
	"github.com/dmitrymomot/notevault/middleware"
	"github.com/dmitrymomot/notevault/note"
	"github.com/dmitrymomot/notevault/repository"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg) // panic on error

	logOpt := logger.WithProduction(cfg.AppName)
	if cfg.Development {
		logOpt = logger.WithDevelopment(cfg.AppName)
	}
	log := logger.New(logOpt)

	// Init postgres connection
	db, err := pg.Connect(ctx, cfg.DB)
	if err != nil {
		log.Error("Failed to connect to database", logger.Component("database"), logger.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	// Run migrations automatically on app start
	if err := pg.Migrate(ctx, db, cfg.DB, log.With("component", "migration")); err != nil {
		log.Error("Failed to migrate database", logger.Component("database.migration"), logger.Error(err))
		os.Exit(1)
	}

	users := repository.NewUsers(db, cfg.QueryTimeout)
	sessions := repository.NewSessions(db, cfg.QueryTimeout)
	notes := repository.NewNotes(db, cfg.QueryTimeout)
	images := repository.NewImages(db, cfg.QueryTimeout)

	// Setup cookie manager
	cookieMgr, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		log.Error("Failed to create cookie manager", logger.Component("cookie"), logger.Error(err))
		os.Exit(1)
	}

	// Setup cookie-based session transport
	sesCookie := sessiontransport.NewCookieFromConfig(cfg.Session, cookieMgr)

	// Setup S3-backed object storage for image uploads
	objects, err := s3.New(ctx, cfg.Storage)
	if err != nil {
		log.Error("Failed to create object storage", logger.Component("storage"), logger.Error(err))
		os.Exit(1)
	}

	guard := auth.NewGuard(users, sessions, sesCookie)
	authSvc := auth.NewService(users, sessions, sesCookie, log)

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.LoggingWithLogger(log.With(logger.Component("http.request"))),
	)

	// Health check endpoints
	r.Get("/live", health.Liveness)
	r.Get("/ready", health.Readiness(log, pg.Healthcheck(db)))

	r.Route("/api", func(api chi.Router) {
		api.Get("/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("Hello!"))
		})
		auth.NewHandler(authSvc, guard, log).Mount(api)
		note.NewHandler(notes, guard, log).Mount(api)
		image.NewHandler(images, objects, guard, log,
			image.WithMaxUploadBytes(cfg.MaxUploadBytes),
		).Mount(api)
	})

	eg, ctx := errgroup.WithContext(ctx)

	s, err := server.NewFromConfig(cfg.Server, server.WithLogger(log.With(logger.Component("server"))))
	if err != nil {
		log.Error("Failed to create server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}
	eg.Go(s.Run(ctx, r))

	if err := eg.Wait(); err != nil {
		log.Error("Failed to run server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped")
}
