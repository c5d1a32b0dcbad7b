package mocks

import (
	"context"

	"github.com/OOlexandr/Contacts/domain"
)

// MockContactRepository implements domain.ContactRepository interface for testing
type MockContactRepository struct {
	ListByUserFunc func(ctx context.Context, userID uint) ([]domain.Contact, error)
	FindByIDFunc   func(ctx context.Context, userID, contactID uint) (*domain.Contact, error)
	SearchFunc     func(ctx context.Context, userID uint, text string) ([]domain.Contact, error)
	CreateFunc     func(ctx context.Context, contact *domain.Contact) error
	UpdateFunc     func(ctx context.Context, contact *domain.Contact) error
	DeleteFunc     func(ctx context.Context, userID, contactID uint) (*domain.Contact, error)
}

// NewMockContactRepository creates a new MockContactRepository with default behaviors
func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{}
}

// ListByUser lists the user's contacts
func (m *MockContactRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Contact, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	// Default behavior: empty
	return []domain.Contact{}, nil
}

// FindByID finds a contact owned by the user
func (m *MockContactRepository) FindByID(ctx context.Context, userID, contactID uint) (*domain.Contact, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, userID, contactID)
	}
	// Default behavior: not found
	return nil, domain.ErrContactNotFound
}

// Search finds the user's contacts by exact field match
func (m *MockContactRepository) Search(ctx context.Context, userID uint, text string) ([]domain.Contact, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, userID, text)
	}
	// Default behavior: empty
	return []domain.Contact{}, nil
}

// Create inserts a contact
func (m *MockContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, contact)
	}
	// Default behavior: success
	return nil
}

// Update overwrites a contact's mutable fields
func (m *MockContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, contact)
	}
	// Default behavior: success
	return nil
}

// Delete removes and returns a contact
func (m *MockContactRepository) Delete(ctx context.Context, userID, contactID uint) (*domain.Contact, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, contactID)
	}
	// Default behavior: not found
	return nil, domain.ErrContactNotFound
}

// Compile-time interface compliance verification
var _ domain.ContactRepository = (*MockContactRepository)(nil)
