package setup

import (
	"email-dataset/app"
	"email-dataset/database"
	"log/slog"
)

// InitDatabase opens the dataset and makes sure its tables exist
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.EnsureSchema(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("dataset opened", "path", dbPath)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	application := app.New(db, logger)
	logger.Info("application initialized with dependency injection")

	return application
}

// Shutdown releases the dataset
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("failed to close dataset", "error", err)
			return
		}
		logger.Info("dataset closed")
	}
}
