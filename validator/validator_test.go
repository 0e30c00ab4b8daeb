package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestHidePatternRequest struct {
	Pattern string `json:"pattern" validate:"required,max=1000,likepattern"`
}

type TestMessageIDRequest struct {
	MessageID string `json:"message_id" validate:"required,max=998,messageid"`
}

type TestEmailTagRequest struct {
	MessageID string `json:"message_id" validate:"required,messageid"`
	TagID     int64  `json:"tag_id" validate:"required,gt=0"`
}

func TestValidator_HidePattern(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       TestHidePatternRequest
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Valid pattern with wildcards",
			req:       TestHidePatternRequest{Pattern: "%spam%"},
			wantError: false,
		},
		{
			name:      "Valid exact pattern",
			req:       TestHidePatternRequest{Pattern: "news@spammer.test"},
			wantError: false,
		},
		{
			name:      "Missing pattern",
			req:       TestHidePatternRequest{Pattern: ""},
			wantError: true,
			errorMsg:  "pattern is required",
		},
		{
			name:      "Only wildcards",
			req:       TestHidePatternRequest{Pattern: "%_%"},
			wantError: true,
			errorMsg:  "pattern must contain text besides the % and _ wildcards",
		},
		{
			name:      "Wildcards and whitespace",
			req:       TestHidePatternRequest{Pattern: " % "},
			wantError: true,
			errorMsg:  "pattern must contain text besides the % and _ wildcards",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_MessageID(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		messageID string
		wantError bool
		errorMsg  string
	}{
		{name: "Bracketed message id", messageID: "<CAF1234@mail.example.com>"},
		{name: "Message id with slash", messageID: "abc/def@example.com"},
		{name: "Empty", messageID: "", wantError: true, errorMsg: "message_id is required"},
		{name: "Contains space", messageID: "<a b@example.com>", wantError: true, errorMsg: "message_id must be a message id without whitespace"},
		{name: "Non-ASCII message id", messageID: "<résumé.42@exämple.de>"},
		{name: "CJK message id", messageID: "<メール1@例え.jp>"},
		{name: "Contains no-break space", messageID: "<a\u00a0b@example.com>", wantError: true, errorMsg: "message_id must be a message id without whitespace"},
		{name: "Contains control character", messageID: "<a\x00b@example.com>", wantError: true, errorMsg: "message_id must be a message id without whitespace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(TestMessageIDRequest{MessageID: tt.messageID})
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_EmailTag(t *testing.T) {
	v := New()

	err := v.Validate(TestEmailTagRequest{MessageID: "<a@example.com>", TagID: 0})
	require.Error(t, err)

	validationErrs, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, validationErrs, 1)
	assert.Equal(t, "tag_id", validationErrs[0].Field)
	assert.Equal(t, "required", validationErrs[0].Tag)

	err = v.Validate(TestEmailTagRequest{MessageID: "<a@example.com>", TagID: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tag_id must be greater than 0")

	assert.NoError(t, v.Validate(TestEmailTagRequest{MessageID: "<a@example.com>", TagID: 2}))
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "pattern", Message: "pattern is required"},
		{Field: "message_id", Message: "message_id is required"},
	}
	assert.Equal(t, "pattern is required; message_id is required", errs.Error())
}
