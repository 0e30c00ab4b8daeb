package services

import (
	"strings"

	"email-dataset/models"
)

// EmailService handles business logic for reading and curating emails
type EmailService struct {
	repo EmailRepository
}

// NewEmailService creates a new email service
func NewEmailService(repo EmailRepository) *EmailService {
	return &EmailService{repo: repo}
}

// Get retrieves a full email, body included
func (es *EmailService) Get(messageID string) (*models.Email, error) {
	email, err := es.repo.FindEmailByID(messageID)
	if err != nil {
		return nil, err
	}
	if email == nil {
		return nil, ErrEmailNotFound
	}
	return email, nil
}

// Preview retrieves an email without its body
func (es *EmailService) Preview(messageID string) (*models.EmailPreview, error) {
	preview, err := es.repo.FindPreviewByID(messageID)
	if err != nil {
		return nil, err
	}
	if preview == nil {
		return nil, ErrEmailNotFound
	}
	return preview, nil
}

// Body retrieves only the body of an email
func (es *EmailService) Body(messageID string) (string, error) {
	body, found, err := es.repo.GetBody(messageID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", ErrEmailNotFound
	}
	return body, nil
}

// Replies lists the direct replies to an email, most recent first
func (es *EmailService) Replies(messageID string) ([]models.EmailPreview, error) {
	if _, err := es.Preview(messageID); err != nil {
		return nil, err
	}
	return es.repo.FindAllReplies(messageID)
}

// Root finds the thread root of the email with the given internal id
func (es *EmailService) Root(id int64) (*models.EmailPreview, error) {
	root, err := es.repo.FindRootEmailByChildID(id)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, ErrEmailNotFound
	}
	return root, nil
}

// Thread places an email in its reply tree: its root and its direct replies
func (es *EmailService) Thread(messageID string) (*models.Thread, error) {
	preview, err := es.Preview(messageID)
	if err != nil {
		return nil, err
	}

	root := preview
	if !preview.IsRoot() {
		if root, err = es.Root(preview.ID); err != nil {
			return nil, err
		}
	}

	replies, err := es.repo.FindAllReplies(messageID)
	if err != nil {
		return nil, err
	}

	return &models.Thread{
		Root:    root,
		Email:   preview,
		Replies: replies,
	}, nil
}

// Hide marks a single email as hidden
func (es *EmailService) Hide(messageID string) error {
	if _, err := es.Preview(messageID); err != nil {
		return err
	}
	return es.repo.HideEmail(messageID)
}

// Show clears the hidden flag of a single email
func (es *EmailService) Show(messageID string) error {
	if _, err := es.Preview(messageID); err != nil {
		return err
	}
	return es.repo.ShowEmail(messageID)
}

// HideByBody hides every visible email whose body matches a LIKE pattern
func (es *EmailService) HideByBody(pattern string) (int, error) {
	if err := checkPattern(pattern); err != nil {
		return 0, err
	}
	return es.repo.HideAllEmailsByBody(pattern)
}

// HideBySender hides every visible email whose sender matches a LIKE pattern
func (es *EmailService) HideBySender(pattern string) (int, error) {
	if err := checkPattern(pattern); err != nil {
		return 0, err
	}
	return es.repo.HideAllEmailsBySentFrom(pattern)
}

// PurgeHidden permanently deletes every hidden email
func (es *EmailService) PurgeHidden() (int, error) {
	return es.repo.DeleteAllHidden()
}

// Mutations lists the audit history, latest first
func (es *EmailService) Mutations() ([]models.Mutation, error) {
	return es.repo.GetAllMutations()
}

// MutationEmails lists the message ids a mutation affected
func (es *EmailService) MutationEmails(mutationID int64) ([]string, error) {
	mutation, err := es.repo.FindMutationByID(mutationID)
	if err != nil {
		return nil, err
	}
	if mutation == nil {
		return nil, ErrMutationNotFound
	}
	return es.repo.FindMutationEmails(mutationID)
}

// Stats returns dataset counters
func (es *EmailService) Stats() (*models.Stats, error) {
	total, err := es.repo.CountEmails()
	if err != nil {
		return nil, err
	}
	tagged, err := es.repo.CountTaggedEmails()
	if err != nil {
		return nil, err
	}
	return &models.Stats{TotalEmails: total, TaggedEmails: tagged}, nil
}

// checkPattern rejects blank patterns and patterns made only of LIKE
// wildcards, which would hide the whole dataset
func checkPattern(pattern string) error {
	if strings.Trim(pattern, "%_ \t\r\n") == "" {
		return ErrInvalidPattern
	}
	return nil
}
