package handlers

import (
	"email-dataset/app"
	"email-dataset/models"

	"github.com/gofiber/fiber/v2"
)

// GetTags lists every tag
func GetTags(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tags, err := a.Tags.List()
		if err != nil {
			return serviceError(c, "Failed to fetch tags", err)
		}
		return success(c, fiber.Map{"tags": tags})
	}
}

// CreateTag creates a new tag
func CreateTag(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateTagRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return validationFailed(c, err)
		}

		tag, err := a.Tags.Create(req.Name, req.Description)
		if err != nil {
			return serviceError(c, "Failed to create tag", err)
		}
		return created(c, fiber.Map{"tag": tag})
	}
}

// GetTagEmails lists previews of the emails carrying a tag
func GetTagEmails(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := int64Param(c, "id")
		if err != nil {
			return badRequest(c, err.Error())
		}

		previews, err := a.Tags.Emails(id)
		if err != nil {
			return serviceError(c, "Failed to fetch tagged emails", err)
		}
		return success(c, fiber.Map{"emails": previews})
	}
}

// GetEmailTags lists the tags applied to an email
func GetEmailTags(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		messageID, err := messageIDQuery(c, a.Validator)
		if err != nil {
			return validationFailed(c, err)
		}

		tags, err := a.Tags.ForEmail(messageID)
		if err != nil {
			return serviceError(c, "Failed to fetch email tags", err)
		}
		return success(c, fiber.Map{"tags": tags})
	}
}

// TagEmail applies a tag to an email
func TagEmail(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := parseEmailTagRequest(a, c)
		if err != nil {
			return err
		}
		if req == nil {
			return nil
		}

		if err := a.Tags.Tag(req.MessageID, req.TagID); err != nil {
			return serviceError(c, "Failed to tag email", err)
		}
		return success(c, fiber.Map{"message_id": req.MessageID, "tag_id": req.TagID})
	}
}

// UntagEmail removes a tag from an email
func UntagEmail(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := parseEmailTagRequest(a, c)
		if err != nil {
			return err
		}
		if req == nil {
			return nil
		}

		if err := a.Tags.Untag(req.MessageID, req.TagID); err != nil {
			return serviceError(c, "Failed to untag email", err)
		}
		return success(c, fiber.Map{"message_id": req.MessageID, "tag_id": req.TagID})
	}
}

// parseEmailTagRequest returns nil, nil when it already wrote an error response
func parseEmailTagRequest(a *app.App, c *fiber.Ctx) (*models.EmailTagRequest, error) {
	var req models.EmailTagRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, badRequest(c, "Invalid request body")
	}
	if err := a.Validator.Validate(req); err != nil {
		return nil, validationFailed(c, err)
	}
	return &req, nil
}
