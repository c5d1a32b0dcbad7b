package mocks

import (
	"github.com/OOlexandr/Contacts/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateAccessTokenFunc  func(email string, userID uint) (string, error)
	GenerateRefreshTokenFunc func(email string, userID uint) (string, error)
	GenerateEmailTokenFunc   func(email string, userID uint) (string, error)
	GenerateResetTokenFunc   func(email string, userID uint) (string, error)
	ValidateAccessTokenFunc  func(token string) (*domain.TokenClaims, error)
	ValidateRefreshTokenFunc func(token string) (*domain.TokenClaims, error)
	ValidateEmailTokenFunc   func(token string) (*domain.TokenClaims, error)
	ValidateResetTokenFunc   func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateAccessToken generates an access token
func (m *MockTokenService) GenerateAccessToken(email string, userID uint) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(email, userID)
	}
	// Default behavior: predictable token
	return "access_" + email, nil
}

// GenerateRefreshToken generates a refresh token
func (m *MockTokenService) GenerateRefreshToken(email string, userID uint) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(email, userID)
	}
	// Default behavior: predictable token
	return "refresh_" + email, nil
}

// GenerateEmailToken generates an email-purpose token
func (m *MockTokenService) GenerateEmailToken(email string, userID uint) (string, error) {
	if m.GenerateEmailTokenFunc != nil {
		return m.GenerateEmailTokenFunc(email, userID)
	}
	// Default behavior: predictable token
	return "email_" + email, nil
}

// GenerateResetToken generates a password-reset token
func (m *MockTokenService) GenerateResetToken(email string, userID uint) (string, error) {
	if m.GenerateResetTokenFunc != nil {
		return m.GenerateResetTokenFunc(email, userID)
	}
	// Default behavior: predictable token
	return "reset_" + email, nil
}

// ValidateAccessToken validates an access token
func (m *MockTokenService) ValidateAccessToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// ValidateRefreshToken validates a refresh token
func (m *MockTokenService) ValidateRefreshToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateRefreshTokenFunc != nil {
		return m.ValidateRefreshTokenFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// ValidateEmailToken validates an email-purpose token
func (m *MockTokenService) ValidateEmailToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateEmailTokenFunc != nil {
		return m.ValidateEmailTokenFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// ValidateResetToken validates a password-reset token
func (m *MockTokenService) ValidateResetToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateResetTokenFunc != nil {
		return m.ValidateResetTokenFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
