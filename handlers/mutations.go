package handlers

import (
	"email-dataset/app"
	"email-dataset/models"

	"github.com/gofiber/fiber/v2"
)

// HideByBody hides every visible email whose body matches a LIKE pattern
func HideByBody(a *app.App) fiber.Handler {
	return hideByPattern(a, a.Emails.HideByBody)
}

// HideBySender hides every visible email whose sender matches a LIKE pattern
func HideBySender(a *app.App) fiber.Handler {
	return hideByPattern(a, a.Emails.HideBySender)
}

func hideByPattern(a *app.App, hide func(pattern string) (int, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.HidePatternRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return validationFailed(c, err)
		}

		count, err := hide(req.Pattern)
		if err != nil {
			return serviceError(c, "Failed to hide emails", err)
		}

		return success(c, fiber.Map{"pattern": req.Pattern, "hidden": count})
	}
}

// DeleteHidden permanently deletes every hidden email
func DeleteHidden(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := a.Emails.PurgeHidden()
		if err != nil {
			return serviceError(c, "Failed to delete hidden emails", err)
		}
		return success(c, fiber.Map{"deleted": count})
	}
}

// GetMutations lists the audit history, latest first
func GetMutations(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mutations, err := a.Emails.Mutations()
		if err != nil {
			return serviceError(c, "Failed to fetch mutations", err)
		}
		return success(c, fiber.Map{"mutations": mutations})
	}
}

// GetMutationEmails lists the message ids a mutation affected
func GetMutationEmails(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := int64Param(c, "id")
		if err != nil {
			return badRequest(c, err.Error())
		}

		messageIDs, err := a.Emails.MutationEmails(id)
		if err != nil {
			return serviceError(c, "Failed to fetch mutation emails", err)
		}
		return success(c, fiber.Map{"mutation_id": id, "message_ids": messageIDs})
	}
}
