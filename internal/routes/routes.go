// Package routes defines the API routing configuration. It wires
// repositories, services and handlers together.
package routes

import (
	"payflow/internal/config"
	"payflow/internal/handlers"
	"payflow/internal/repositories"
	"payflow/internal/services/authorization"
	"payflow/internal/services/transfer"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes. The notifier is built
// by the caller because it owns the queue connection lifecycle.
func SetupRoutes(app *fiber.App, db *gorm.DB, notifier transfer.Notifier) {
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)
	walletRepo := repositories.NewWalletRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)

	authorizationService := authorization.NewService(
		config.GetEnv("AUTHORIZATION_URL", "https://util.devi.tools/api/v2/authorize"))

	transferService := transfer.NewService(
		db,
		userRepo,
		walletRepo,
		transactionRepo,
		authorizationService,
		notifier,
	)

	transferHandler := handlers.NewTransferHandler(transferService)
	transactionHandler := handlers.NewTransactionHandler(transactionRepo)

	app.Get("/ping", handlers.Ping)
	app.Post("/transfer", transferHandler.Transfer)
	app.Get("/users/:id/transactions", transactionHandler.History)
}
