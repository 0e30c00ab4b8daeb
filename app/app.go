package app

import (
	"email-dataset/database"
	"email-dataset/services"
	"email-dataset/validator"
	"log/slog"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	DB        *database.DB
	Emails    *services.EmailService
	Tags      *services.TagService
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance bound to one open dataset
func New(db *database.DB, logger *slog.Logger) *App {
	emailRepo := database.NewEmailRepository(db, logger)
	tagRepo := database.NewTagRepository(db)

	return &App{
		DB:        db,
		Emails:    services.NewEmailService(emailRepo),
		Tags:      services.NewTagService(tagRepo, emailRepo),
		Validator: validator.New(),
		Logger:    logger,
	}
}
