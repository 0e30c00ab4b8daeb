package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"email-dataset/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutationHistory(t *testing.T) {
	t.Run("Lists mutations and escapes descriptions", func(t *testing.T) {
		mutations := []models.Mutation{
			{
				ID:                 2,
				Description:        "Hiding all emails sent by email addresses like: <script>%",
				PerformedAt:        time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
				AffectedEmailCount: 7,
			},
		}

		var buf bytes.Buffer
		err := MutationHistory(&models.Stats{TotalEmails: 10, TaggedEmails: 3}, mutations).Render(context.Background(), &buf)
		require.NoError(t, err)

		html := buf.String()
		assert.Contains(t, html, "10 emails, 3 tagged")
		assert.Contains(t, html, "<td>7</td>")
		assert.Contains(t, html, "2024-03-01 12:00:00 UTC")
		assert.Contains(t, html, "&lt;script&gt;%")
		assert.NotContains(t, html, "<script>")
	})

	t.Run("Rows keep the given order and escape quotes", func(t *testing.T) {
		mutations := []models.Mutation{
			{ID: 5, Description: `Hiding all emails with a body like:

%"free"%`, PerformedAt: time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC), AffectedEmailCount: 0},
			{ID: 4, Description: "Permanently deleting all hidden emails.", PerformedAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), AffectedEmailCount: 12},
		}

		var buf bytes.Buffer
		require.NoError(t, MutationHistory(&models.Stats{}, mutations).Render(context.Background(), &buf))

		html := buf.String()
		assert.Contains(t, html, "%&#34;free&#34;%")
		assert.Less(t, strings.Index(html, "<td>5</td>"), strings.Index(html, "<td>4</td>"))
		assert.Contains(t, html, "<td>12</td>")
		assert.NotContains(t, html, "No mutations have been applied")
	})

	t.Run("Empty history", func(t *testing.T) {
		var buf bytes.Buffer
		err := MutationHistory(&models.Stats{}, nil).Render(context.Background(), &buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "No mutations have been applied")
	})
}
