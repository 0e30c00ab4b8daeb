package handlers

import (
	"email-dataset/app"
	"email-dataset/models"

	"github.com/gofiber/fiber/v2"
)

// GetStats returns the dataset counters
func GetStats(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := a.Emails.Stats()
		if err != nil {
			return serviceError(c, "Failed to count emails", err)
		}
		return success(c, fiber.Map{"stats": stats})
	}
}

// GetEmail returns a full email, body included
func GetEmail(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		messageID, err := messageIDQuery(c, a.Validator)
		if err != nil {
			return validationFailed(c, err)
		}

		email, err := a.Emails.Get(messageID)
		if err != nil {
			return serviceError(c, "Failed to fetch email", err)
		}
		return success(c, fiber.Map{"email": email})
	}
}

// GetEmailPreview returns an email without its body
func GetEmailPreview(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		messageID, err := messageIDQuery(c, a.Validator)
		if err != nil {
			return validationFailed(c, err)
		}

		preview, err := a.Emails.Preview(messageID)
		if err != nil {
			return serviceError(c, "Failed to fetch email preview", err)
		}
		return success(c, fiber.Map{"preview": preview})
	}
}

// GetEmailBody returns only the body of an email
func GetEmailBody(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		messageID, err := messageIDQuery(c, a.Validator)
		if err != nil {
			return validationFailed(c, err)
		}

		body, err := a.Emails.Body(messageID)
		if err != nil {
			return serviceError(c, "Failed to fetch email body", err)
		}
		return success(c, fiber.Map{"message_id": messageID, "body": body})
	}
}

// GetReplies lists the direct replies to an email, most recent first
func GetReplies(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		messageID, err := messageIDQuery(c, a.Validator)
		if err != nil {
			return validationFailed(c, err)
		}

		replies, err := a.Emails.Replies(messageID)
		if err != nil {
			return serviceError(c, "Failed to fetch replies", err)
		}
		return success(c, fiber.Map{"replies": replies})
	}
}

// GetThread returns an email with its thread root and direct replies
func GetThread(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		messageID, err := messageIDQuery(c, a.Validator)
		if err != nil {
			return validationFailed(c, err)
		}

		thread, err := a.Emails.Thread(messageID)
		if err != nil {
			return serviceError(c, "Failed to fetch thread", err)
		}
		return success(c, fiber.Map{"thread": thread})
	}
}

// GetThreadRoot returns the root of the thread containing the email with
// the given internal id
func GetThreadRoot(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := int64Param(c, "id")
		if err != nil {
			return badRequest(c, err.Error())
		}

		root, err := a.Emails.Root(id)
		if err != nil {
			return serviceError(c, "Failed to find thread root", err)
		}
		return success(c, fiber.Map{"root": root})
	}
}

// HideEmail hides a single email
func HideEmail(a *app.App) fiber.Handler {
	return setHidden(a, true)
}

// ShowEmail un-hides a single email
func ShowEmail(a *app.App) fiber.Handler {
	return setHidden(a, false)
}

func setHidden(a *app.App, hidden bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.MessageIDRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return validationFailed(c, err)
		}

		var err error
		if hidden {
			err = a.Emails.Hide(req.MessageID)
		} else {
			err = a.Emails.Show(req.MessageID)
		}
		if err != nil {
			return serviceError(c, "Failed to update email", err)
		}

		return success(c, fiber.Map{"message_id": req.MessageID, "hidden": hidden})
	}
}
