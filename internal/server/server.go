package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"example.com/budget-tracker/backend/internal/auth"
	"example.com/budget-tracker/backend/internal/config"
	"example.com/budget-tracker/backend/internal/handlers"
	"example.com/budget-tracker/backend/internal/mail"
	"example.com/budget-tracker/backend/internal/notifications"
	"example.com/budget-tracker/backend/internal/repository"
)

// New собирает HTTP-сервер Echo с роутами и зависимостями.
func New(cfg config.Config, logger *slog.Logger, db *pgxpool.Pool) *echo.Echo {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))

	tokenManager := auth.NewTokenManager(cfg.Signup.TokenSecret, cfg.Signup.TokenIssuer, cfg.Signup.VerificationTTL)
	mailer := mail.NewMailer(cfg.Mail)
	notificationHub := notifications.NewHub()

	userRepo := repository.NewUserRepository(db)
	entryRepo := repository.NewEntryRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	savingsRepo := repository.NewSavingsRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(userRepo, tokenManager, mailer, cfg.Mail.BaseURL)
	entryHandler := handlers.NewEntryHandler(entryRepo, notificationHub)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionRepo, notificationHub)
	savingsHandler := handlers.NewSavingsHandler(savingsRepo, notificationHub)
	wishlistHandler := handlers.NewWishlistHandler(wishlistRepo)
	statsHandler := handlers.NewStatsHandler(entryRepo, statsRepo)
	exportHandler := handlers.NewExportHandler(entryRepo)
	notificationHandler := handlers.NewNotificationHandler(notificationHub)

	registerRoutes(
		e,
		healthHandler,
		authHandler,
		entryHandler,
		categoryHandler,
		subscriptionHandler,
		savingsHandler,
		wishlistHandler,
		statsHandler,
		exportHandler,
		notificationHandler,
		signupRateLimiter(cfg.Signup),
	)

	return e
}

// NewHTTPServer создает net/http сервер с заданными таймаутами.
func NewHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote_ip", v.RemoteIP),
				slog.Duration("latency", v.Latency),
			}

			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			msg := "request completed"
			if v.Status >= http.StatusInternalServerError {
				logger.LogAttrs(c.Request().Context(), slog.LevelError, msg, attrs...)
				return nil
			}

			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, msg, attrs...)
			return nil
		},
	})
}

func signupRateLimiter(cfg config.SignupConfig) echo.MiddlewareFunc {
	limit := rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0)
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     cfg.RateLimitBurst,
		ExpiresIn: time.Minute,
	})

	return middleware.RateLimiter(store)
}
