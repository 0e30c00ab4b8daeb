package services

import (
	"email-dataset/models"

	"github.com/stretchr/testify/mock"
)

// ==================== MOCKS ====================

// MockEmailRepository is a mock implementation of EmailRepository interface
type MockEmailRepository struct {
	mock.Mock
}

// Ensure MockEmailRepository implements EmailRepository interface
var _ EmailRepository = (*MockEmailRepository)(nil)

func (m *MockEmailRepository) CountEmails() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmailRepository) CountTaggedEmails() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmailRepository) FindEmailByID(messageID string) (*models.Email, error) {
	args := m.Called(messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Email), args.Error(1)
}

func (m *MockEmailRepository) FindPreviewByID(messageID string) (*models.EmailPreview, error) {
	args := m.Called(messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmailPreview), args.Error(1)
}

func (m *MockEmailRepository) FindAllReplies(messageID string) ([]models.EmailPreview, error) {
	args := m.Called(messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EmailPreview), args.Error(1)
}

func (m *MockEmailRepository) GetBody(messageID string) (string, bool, error) {
	args := m.Called(messageID)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockEmailRepository) FindRootEmailByChildID(id int64) (*models.EmailPreview, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmailPreview), args.Error(1)
}

func (m *MockEmailRepository) FindPreviewsByTag(tagID int64) ([]models.EmailPreview, error) {
	args := m.Called(tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EmailPreview), args.Error(1)
}

func (m *MockEmailRepository) HideEmail(messageID string) error {
	args := m.Called(messageID)
	return args.Error(0)
}

func (m *MockEmailRepository) ShowEmail(messageID string) error {
	args := m.Called(messageID)
	return args.Error(0)
}

func (m *MockEmailRepository) HideAllEmailsByBody(pattern string) (int, error) {
	args := m.Called(pattern)
	return args.Int(0), args.Error(1)
}

func (m *MockEmailRepository) HideAllEmailsBySentFrom(pattern string) (int, error) {
	args := m.Called(pattern)
	return args.Int(0), args.Error(1)
}

func (m *MockEmailRepository) DeleteAllHidden() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockEmailRepository) GetAllMutations() ([]models.Mutation, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Mutation), args.Error(1)
}

func (m *MockEmailRepository) FindMutationByID(id int64) (*models.Mutation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mutation), args.Error(1)
}

func (m *MockEmailRepository) FindMutationEmails(mutationID int64) ([]string, error) {
	args := m.Called(mutationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockTagRepository is a mock implementation of TagRepository interface
type MockTagRepository struct {
	mock.Mock
}

var _ TagRepository = (*MockTagRepository)(nil)

func (m *MockTagRepository) FindAll() ([]models.Tag, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByID(id int64) (*models.Tag, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByName(name string) (*models.Tag, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) Create(name, description string) (*models.Tag, error) {
	args := m.Called(name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) FindTagsForEmail(messageID string) ([]models.Tag, error) {
	args := m.Called(messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) AddTag(messageID string, tagID int64) error {
	args := m.Called(messageID, tagID)
	return args.Error(0)
}

func (m *MockTagRepository) RemoveTag(messageID string, tagID int64) error {
	args := m.Called(messageID, tagID)
	return args.Error(0)
}
