package services

import (
	"strings"

	"email-dataset/models"
)

// TagService handles business logic for tags
type TagService struct {
	tags   TagRepository
	emails EmailRepository
}

// NewTagService creates a new tag service
func NewTagService(tags TagRepository, emails EmailRepository) *TagService {
	return &TagService{
		tags:   tags,
		emails: emails,
	}
}

// List retrieves all tags
func (ts *TagService) List() ([]models.Tag, error) {
	return ts.tags.FindAll()
}

// Create creates a new tag
func (ts *TagService) Create(name, description string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	existing, err := ts.tags.FindByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTagAlreadyExists
	}

	return ts.tags.Create(name, description)
}

// ForEmail lists the tags applied to an email
func (ts *TagService) ForEmail(messageID string) ([]models.Tag, error) {
	if err := ts.requireEmail(messageID); err != nil {
		return nil, err
	}
	return ts.tags.FindTagsForEmail(messageID)
}

// Emails lists previews of the emails carrying a tag
func (ts *TagService) Emails(tagID int64) ([]models.EmailPreview, error) {
	if err := ts.requireTag(tagID); err != nil {
		return nil, err
	}
	return ts.emails.FindPreviewsByTag(tagID)
}

// Tag applies a tag to an email
func (ts *TagService) Tag(messageID string, tagID int64) error {
	if err := ts.requireEmail(messageID); err != nil {
		return err
	}
	if err := ts.requireTag(tagID); err != nil {
		return err
	}
	return ts.tags.AddTag(messageID, tagID)
}

// Untag removes a tag from an email
func (ts *TagService) Untag(messageID string, tagID int64) error {
	if err := ts.requireEmail(messageID); err != nil {
		return err
	}
	if err := ts.requireTag(tagID); err != nil {
		return err
	}
	return ts.tags.RemoveTag(messageID, tagID)
}

func (ts *TagService) requireEmail(messageID string) error {
	preview, err := ts.emails.FindPreviewByID(messageID)
	if err != nil {
		return err
	}
	if preview == nil {
		return ErrEmailNotFound
	}
	return nil
}

func (ts *TagService) requireTag(tagID int64) error {
	tag, err := ts.tags.FindByID(tagID)
	if err != nil {
		return err
	}
	if tag == nil {
		return ErrTagNotFound
	}
	return nil
}
