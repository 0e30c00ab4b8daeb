package setup

import (
	"email-dataset/app"
	"email-dataset/handlers"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	// Public routes
	fiberApp.Get("/", handlers.MutationsPage(application))
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })
	fiberApp.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := fiberApp.Group("/api")

	// Reads
	api.Get("/stats", handlers.GetStats(application))
	api.Get("/email", handlers.GetEmail(application))
	api.Get("/email/preview", handlers.GetEmailPreview(application))
	api.Get("/email/body", handlers.GetEmailBody(application))
	api.Get("/email/replies", handlers.GetReplies(application))
	api.Get("/email/thread", handlers.GetThread(application))
	api.Get("/threads/:id/root", handlers.GetThreadRoot(application))
	api.Get("/mutations", handlers.GetMutations(application))
	api.Get("/mutations/:id/emails", handlers.GetMutationEmails(application))

	// Tags
	api.Get("/tags", handlers.GetTags(application))
	api.Post("/tags", handlers.CreateTag(application))
	api.Get("/tags/:id/emails", handlers.GetTagEmails(application))
	api.Get("/email/tags", handlers.GetEmailTags(application))
	api.Post("/email/tags", handlers.TagEmail(application))
	api.Delete("/email/tags", handlers.UntagEmail(application))

	// Writes that change visibility or remove rows get a tighter limit
	writeLimiter := limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "write:" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded for dataset changes",
			})
		},
	})
	api.Post("/email/hide", writeLimiter, handlers.HideEmail(application))
	api.Post("/email/show", writeLimiter, handlers.ShowEmail(application))
	api.Post("/mutations/hide-by-body", writeLimiter, handlers.HideByBody(application))
	api.Post("/mutations/hide-by-sender", writeLimiter, handlers.HideBySender(application))
	api.Delete("/emails/hidden", writeLimiter, handlers.DeleteHidden(application))
}
