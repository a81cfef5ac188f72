package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/athletelink/apiserver/config"
	"github.com/athletelink/apiserver/internal/db"
	"github.com/athletelink/apiserver/internal/handlers"
	"github.com/athletelink/apiserver/internal/logging"
	"github.com/athletelink/apiserver/internal/services"
	"github.com/athletelink/apiserver/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
	logger     *zap.Logger
}

// New constructs a Server with its full dependency graph wired.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	userRepo := store.NewUserRepository(dbConn)
	moodRepo := store.NewMoodRepository(dbConn)
	scheduleRepo := store.NewScheduleRepository(dbConn)

	authService := services.NewAuthService(userRepo)
	moodService := services.NewMoodService(moodRepo, userRepo)
	scheduleService := services.NewScheduleService(scheduleRepo)

	sugar := logger.Sugar()

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		logging.RequestLogger(logger),
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/api/auth", func(r chi.Router) {
		handlers.AuthRouter(r, authService, sugar)
	})
	router.Route("/api/mood", func(r chi.Router) {
		handlers.MoodRouter(r, moodService, sugar)
	})
	router.Route("/api/schedule", func(r chi.Router) {
		handlers.ScheduleRouter(r, scheduleService, sugar)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
		logger:     logger,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("server listening", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	if s.logger != nil {
		_ = s.logger.Sync()
	}
	return s.httpServer.Close()
}
