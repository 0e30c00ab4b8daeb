package handlers

import (
	"email-dataset/app"
	"email-dataset/templates/pages"

	"github.com/gofiber/fiber/v2"
)

// MutationsPage renders the audit history as HTML
func MutationsPage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := a.Emails.Stats()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to count emails", err)
		}
		mutations, err := a.Emails.Mutations()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch mutations", err)
		}

		// Set HTML content type
		c.Set("Content-Type", "text/html; charset=utf-8")
		// Render with Templ
		return pages.MutationHistory(stats, mutations).Render(c.Context(), c.Response().BodyWriter())
	}
}
