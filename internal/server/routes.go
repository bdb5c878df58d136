package server

import (
	"github.com/labstack/echo/v4"

	"example.com/budget-tracker/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	entryHandler *handlers.EntryHandler,
	categoryHandler *handlers.CategoryHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	savingsHandler *handlers.SavingsHandler,
	wishlistHandler *handlers.WishlistHandler,
	statsHandler *handlers.StatsHandler,
	exportHandler *handlers.ExportHandler,
	notificationHandler *handlers.NotificationHandler,
	signupRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", healthHandler.Live)
	e.GET("/ready", healthHandler.Ready)

	api := e.Group("/api/v1")

	authGroup := api.Group("/auth", signupRateLimiter)
	authGroup.POST("/signup", authHandler.Signup)
	authGroup.GET("/verify", authHandler.Verify)

	accounts := api.Group("/accounts/:accountId")

	accounts.POST("/entries", entryHandler.Create)
	accounts.GET("/entries", entryHandler.List)
	accounts.DELETE("/entries/:id", entryHandler.Delete)

	accounts.POST("/categories", categoryHandler.Create)
	accounts.GET("/categories", categoryHandler.List)

	accounts.POST("/subscriptions", subscriptionHandler.Create)
	accounts.GET("/subscriptions", subscriptionHandler.List)
	accounts.POST("/subscriptions/:id/cancel", subscriptionHandler.RequestCancel)
	accounts.POST("/subscriptions/:id/keep", subscriptionHandler.Keep)
	accounts.DELETE("/subscriptions/:id", subscriptionHandler.Delete)
	accounts.GET("/subscriptions/:id/calendar", subscriptionHandler.Calendar)

	accounts.GET("/savings", savingsHandler.Get)
	accounts.POST("/savings/deposit", savingsHandler.Deposit)
	accounts.POST("/savings/withdraw", savingsHandler.Withdraw)
	accounts.PUT("/savings/currency", savingsHandler.SetCurrency)

	accounts.POST("/wishlist", wishlistHandler.Create)
	accounts.GET("/wishlist", wishlistHandler.List)
	accounts.PATCH("/wishlist/:id/toggle", wishlistHandler.Toggle)
	accounts.DELETE("/wishlist/:id", wishlistHandler.Delete)

	accounts.GET("/stats/overview", statsHandler.Overview)
	accounts.GET("/stats/recent", statsHandler.Recent)
	accounts.GET("/stats/spending-by-category", statsHandler.SpendingByCategory)
	accounts.GET("/stats/chart", statsHandler.ExpensesChart)

	accounts.GET("/export/csv", exportHandler.EntriesCSV)

	accounts.GET("/notifications/stream", notificationHandler.Stream)
}
