package handlers

import (
	"email-dataset/middleware"
	"email-dataset/services"
	"email-dataset/validator"
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": message})
}

func validationFailed(c *fiber.Ctx, err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  validationErrs.Error(),
			"fields": validationErrs,
		})
	}
	return badRequest(c, err.Error())
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	slog.Error("server error",
		"request_id", middleware.GetRequestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// serviceError maps service sentinels to client errors and logs the rest
func serviceError(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, services.ErrEmailNotFound),
		errors.Is(err, services.ErrTagNotFound),
		errors.Is(err, services.ErrMutationNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidPattern):
		return badRequest(c, err.Error())
	case errors.Is(err, services.ErrTagAlreadyExists):
		return conflict(c, err.Error())
	default:
		return serverErrorWithDetails(c, message, err)
	}
}

// messageIDQuery reads and validates the message_id query parameter
func messageIDQuery(c *fiber.Ctx, v *validator.Validator) (string, error) {
	messageID := c.Query("message_id")
	if messageID == "" {
		return "", errors.New("message_id is required")
	}
	if err := v.Validate(struct {
		MessageID string `json:"message_id" validate:"max=998,messageid"`
	}{messageID}); err != nil {
		return "", err
	}
	return messageID, nil
}

func int64Param(c *fiber.Ctx, name string) (int64, error) {
	value, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || value <= 0 {
		return 0, errors.New(name + " must be a positive integer")
	}
	return value, nil
}
