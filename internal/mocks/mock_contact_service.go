package mocks

import (
	"context"

	"github.com/OOlexandr/Contacts/domain"
)

// MockContactService implements domain.ContactService interface for testing
type MockContactService struct {
	ListFunc              func(ctx context.Context, userID uint) ([]domain.Contact, error)
	GetFunc               func(ctx context.Context, userID, contactID uint) (*domain.Contact, error)
	SearchFunc            func(ctx context.Context, userID uint, text string) ([]domain.Contact, error)
	UpcomingBirthdaysFunc func(ctx context.Context, userID uint) ([]domain.Contact, error)
	CreateFunc            func(ctx context.Context, userID uint, fields domain.ContactFields) (*domain.Contact, error)
	UpdateFunc            func(ctx context.Context, userID, contactID uint, fields domain.ContactFields) (*domain.Contact, error)
	DeleteFunc            func(ctx context.Context, userID, contactID uint) (*domain.Contact, error)
}

// NewMockContactService creates a new MockContactService with default behaviors
func NewMockContactService() *MockContactService {
	return &MockContactService{}
}

// List lists the user's contacts
func (m *MockContactService) List(ctx context.Context, userID uint) ([]domain.Contact, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	// Default behavior: empty
	return []domain.Contact{}, nil
}

// Get fetches one contact
func (m *MockContactService) Get(ctx context.Context, userID, contactID uint) (*domain.Contact, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, contactID)
	}
	// Default behavior: not found
	return nil, domain.ErrContactNotFound
}

// Search finds contacts by exact field match
func (m *MockContactService) Search(ctx context.Context, userID uint, text string) ([]domain.Contact, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, userID, text)
	}
	// Default behavior: empty
	return []domain.Contact{}, nil
}

// UpcomingBirthdays lists contacts with birthdays in the window
func (m *MockContactService) UpcomingBirthdays(ctx context.Context, userID uint) ([]domain.Contact, error) {
	if m.UpcomingBirthdaysFunc != nil {
		return m.UpcomingBirthdaysFunc(ctx, userID)
	}
	// Default behavior: empty
	return []domain.Contact{}, nil
}

// Create inserts a contact
func (m *MockContactService) Create(ctx context.Context, userID uint, fields domain.ContactFields) (*domain.Contact, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, fields)
	}
	// Default behavior: echo back a created contact
	return &domain.Contact{
		ID:        1,
		FirstName: fields.FirstName,
		LastName:  fields.LastName,
		Email:     fields.Email,
		Phone:     fields.Phone,
		BirthDate: fields.BirthDate,
		UserID:    userID,
	}, nil
}

// Update overwrites a contact
func (m *MockContactService) Update(ctx context.Context, userID, contactID uint, fields domain.ContactFields) (*domain.Contact, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, contactID, fields)
	}
	// Default behavior: not found
	return nil, domain.ErrContactNotFound
}

// Delete removes a contact
func (m *MockContactService) Delete(ctx context.Context, userID, contactID uint) (*domain.Contact, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, contactID)
	}
	// Default behavior: not found
	return nil, domain.ErrContactNotFound
}

// Compile-time interface compliance verification
var _ domain.ContactService = (*MockContactService)(nil)
