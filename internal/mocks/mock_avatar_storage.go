package mocks

import (
	"context"
	"io"

	"github.com/OOlexandr/Contacts/domain"
)

// MockAvatarStorage implements domain.AvatarStorage interface for testing
type MockAvatarStorage struct {
	UploadFunc func(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// NewMockAvatarStorage creates a new MockAvatarStorage with default behaviors
func NewMockAvatarStorage() *MockAvatarStorage {
	return &MockAvatarStorage{}
}

// Upload stores an avatar and returns its URL
func (m *MockAvatarStorage) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, key, body, contentType)
	}
	// Default behavior: predictable URL
	return "https://storage.example.com/" + key, nil
}

// Compile-time interface compliance verification
var _ domain.AvatarStorage = (*MockAvatarStorage)(nil)
