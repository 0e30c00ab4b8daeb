package services

import "email-dataset/models"

// EmailRepository defines the interface for email data access
type EmailRepository interface {
	CountEmails() (int64, error)
	CountTaggedEmails() (int64, error)
	FindEmailByID(messageID string) (*models.Email, error)
	FindPreviewByID(messageID string) (*models.EmailPreview, error)
	FindAllReplies(messageID string) ([]models.EmailPreview, error)
	GetBody(messageID string) (string, bool, error)
	FindRootEmailByChildID(id int64) (*models.EmailPreview, error)
	FindPreviewsByTag(tagID int64) ([]models.EmailPreview, error)
	HideEmail(messageID string) error
	ShowEmail(messageID string) error
	HideAllEmailsByBody(pattern string) (int, error)
	HideAllEmailsBySentFrom(pattern string) (int, error)
	DeleteAllHidden() (int, error)
	GetAllMutations() ([]models.Mutation, error)
	FindMutationByID(id int64) (*models.Mutation, error)
	FindMutationEmails(mutationID int64) ([]string, error)
}

// TagRepository defines the interface for tag data access
type TagRepository interface {
	FindAll() ([]models.Tag, error)
	FindByID(id int64) (*models.Tag, error)
	FindByName(name string) (*models.Tag, error)
	Create(name, description string) (*models.Tag, error)
	FindTagsForEmail(messageID string) ([]models.Tag, error)
	AddTag(messageID string, tagID int64) error
	RemoveTag(messageID string, tagID int64) error
}
