package models

import "time"

type Email struct {
	ID        int64     `json:"id"`
	ParentID  *int64    `json:"parent_id"`
	MessageID string    `json:"message_id"`
	Subject   string    `json:"subject"`
	InReplyTo string    `json:"in_reply_to,omitempty"`
	SentFrom  string    `json:"sent_from"`
	Date      time.Time `json:"date"`
	Body      string    `json:"body"`
	Hidden    bool      `json:"hidden"`
}

// EmailPreview is an email without its body, used for list views.
type EmailPreview struct {
	ID         int64     `json:"id"`
	ParentID   *int64    `json:"parent_id"`
	MessageID  string    `json:"message_id"`
	Subject    string    `json:"subject"`
	InReplyTo  string    `json:"in_reply_to,omitempty"`
	SentFrom   string    `json:"sent_from"`
	Date       time.Time `json:"date"`
	Hidden     bool      `json:"hidden"`
	ReplyCount int       `json:"reply_count"`
}

// IsRoot reports whether the email starts a thread.
func (p *EmailPreview) IsRoot() bool {
	return p.ParentID == nil
}

type Tag struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Mutation is an audit record of a bulk hide or purge.
type Mutation struct {
	ID                 int64     `json:"id"`
	Description        string    `json:"description"`
	PerformedAt        time.Time `json:"performed_at"`
	AffectedEmailCount int       `json:"affected_email_count"`
}

// Thread is the view of one email placed in its reply tree.
type Thread struct {
	Root    *EmailPreview  `json:"root"`
	Email   *EmailPreview  `json:"email"`
	Replies []EmailPreview `json:"replies"`
}

type Stats struct {
	TotalEmails  int64 `json:"total_emails"`
	TaggedEmails int64 `json:"tagged_emails"`
}

type MessageIDRequest struct {
	MessageID string `json:"message_id" validate:"required,max=998,messageid"`
}

type HidePatternRequest struct {
	Pattern string `json:"pattern" validate:"required,max=1000,likepattern"`
}

type CreateTagRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type EmailTagRequest struct {
	MessageID string `json:"message_id" validate:"required,max=998,messageid"`
	TagID     int64  `json:"tag_id" validate:"required,gt=0"`
}
