package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"eventhub/internal/app"
	"eventhub/internal/clock"
	"eventhub/internal/config"
	"eventhub/internal/notify"
	"eventhub/internal/storage/postgres"
	transporthttp "eventhub/internal/transport/http"
	"eventhub/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn().Err(err).Msg("failed to load .env")
	}
	cfg := config.Parse()

	if cfg.JWTSecret == "" {
		logger.Fatal().Msg("JWT_SECRET not set")
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(startupCtx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to db")
	}
	defer pool.Close()

	if err := pool.Ping(startupCtx); err != nil {
		logger.Fatal().Err(err).Msg("db ping")
	}
	if err := migrations.Apply(startupCtx, pool); err != nil {
		logger.Fatal().Err(err).Msg("apply migrations")
	}

	clk := clock.NewSystem()

	userRepo := postgres.NewUserRepository(pool)
	authSvc := app.NewAuthService(userRepo, clk, []byte(cfg.JWTSecret), app.WithTokenTTL(cfg.TokenTTL))

	var sessionOpts []app.SessionOption
	if cfg.DemoData {
		sessionOpts = append(sessionOpts, app.WithSeed(app.SeedDemoEvents))
	}
	sessions := app.NewSessionManager(clk, sessionOpts...)

	var notifier app.Notifier
	if cfg.TelegramBotToken != "" {
		tg, err := notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			logger.Fatal().Err(err).Msg("create telegram notifier")
		}
		notifier = tg
	} else {
		logger.Warn().Msg("TELEGRAM_BOT_TOKEN not set, logging reminders instead of delivering")
		notifier = notify.NewLogNotifier(logger)
	}
	rsvpSvc := app.NewRSVPService(notifier, logger)

	authed := func(h http.Handler) http.Handler {
		return transporthttp.RequireAuth(authSvc, h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", transporthttp.HealthHandler)
	mux.Handle("/auth/register", transporthttp.HandleRegister(authSvc))
	mux.Handle("/auth/login", transporthttp.HandleLogin(authSvc))
	mux.Handle("/auth/logout", authed(transporthttp.HandleLogout(sessions)))
	mux.Handle("/auth/me", authed(transporthttp.HandleMe()))
	mux.Handle("/events", authed(transporthttp.HandleTimeline(sessions, clk)))
	mux.Handle("/events/", authed(transporthttp.HandleEventScoped(sessions, rsvpSvc)))
	mux.Handle("/wizard", authed(transporthttp.HandleWizard(sessions)))
	mux.Handle("/wizard/", authed(transporthttp.HandleWizardActions(sessions)))
	mux.Handle("/dashboard/stats", authed(transporthttp.HandleDashboardStats(sessions)))
	mux.Handle("/", transporthttp.NotFoundHandler())

	handler := transporthttp.RequestLogger(transporthttp.CORS(cfg.CORSOrigins, mux), logger)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	logger.Info().Str("port", cfg.Port).Msg("api listening")

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server error")
		}
	case <-stopCtx.Done():
		logger.Info().Msg("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("server shutdown error")
	}
	logger.Info().Msg("server stopped")
}
