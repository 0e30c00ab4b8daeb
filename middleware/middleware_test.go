package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	app := fiber.New()
	app.Use(StructuredLogger(logger))
	app.Get("/api/email", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"request_id": GetRequestID(c)})
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "email not found"})
	})

	tests := []struct {
		name        string
		target      string
		status      int
		wantMessage string
		wantLevel   string
	}{
		{
			name:        "Success logs at info with the message id",
			target:      "/api/email?message_id=%3Ca%40example.com%3E",
			status:      http.StatusOK,
			wantMessage: "request completed",
			wantLevel:   `"level":"INFO"`,
		},
		{
			name:        "Client errors log at warn",
			target:      "/missing",
			status:      http.StatusNotFound,
			wantMessage: "client error",
			wantLevel:   `"level":"WARN"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.target, nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
			assert.Contains(t, buf.String(), tt.wantMessage)
			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.Contains(t, buf.String(), resp.Header.Get("X-Request-ID"))
		})
	}

	t.Run("Message id is logged", func(t *testing.T) {
		buf.Reset()
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/email?message_id=abc123", nil), -1)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Contains(t, buf.String(), `"message_id":"abc123"`)
	})
}

func TestGetRequestIDWithoutLogger(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body bytes.Buffer
	_, err = body.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body.String())
}

func TestSecurityHeaders(t *testing.T) {
	app := fiber.New()
	app.Use(Security())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Contains(t, resp.Header.Get("Content-Security-Policy"), "default-src 'self'")
}
