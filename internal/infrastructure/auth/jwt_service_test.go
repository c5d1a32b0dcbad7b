package auth

import (
	"testing"
	"time"

	"github.com/OOlexandr/Contacts/domain"
)

func newTestJWTService(accessTTL time.Duration) domain.TokenService {
	return NewJWTService("test_secret_key", "contacts-test", accessTTL, time.Hour, time.Hour)
}

func TestJWTServiceImpl_AccessTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)

	token, err := svc.GenerateAccessToken("user@example.com", 42)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("expected email user@example.com, got %s", claims.Email)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Scope != domain.ScopeAccessToken {
		t.Errorf("expected scope %s, got %s", domain.ScopeAccessToken, claims.Scope)
	}
}

func TestJWTServiceImpl_ExpiredTokenRejected(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, err := svc.GenerateAccessToken("user@example.com", 1)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	_, err = svc.ValidateAccessToken(token)
	if err != domain.ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTServiceImpl_ScopeEnforced(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)

	tests := []struct {
		name     string
		generate func(email string, userID uint) (string, error)
		validate func(token string) (*domain.TokenClaims, error)
		wantErr  error
	}{
		{
			name:     "refresh token not accepted as access token",
			generate: svc.GenerateRefreshToken,
			validate: svc.ValidateAccessToken,
			wantErr:  domain.ErrTokenInvalid,
		},
		{
			name:     "access token not accepted as refresh token",
			generate: svc.GenerateAccessToken,
			validate: svc.ValidateRefreshToken,
			wantErr:  domain.ErrTokenInvalid,
		},
		{
			name:     "email token not accepted as access token",
			generate: svc.GenerateEmailToken,
			validate: svc.ValidateAccessToken,
			wantErr:  domain.ErrTokenInvalid,
		},
		{
			name:     "email token accepted for email validation",
			generate: svc.GenerateEmailToken,
			validate: svc.ValidateEmailToken,
			wantErr:  nil,
		},
		{
			name:     "confirmation token not accepted for password reset",
			generate: svc.GenerateEmailToken,
			validate: svc.ValidateResetToken,
			wantErr:  domain.ErrTokenInvalid,
		},
		{
			name:     "reset token not accepted for email confirmation",
			generate: svc.GenerateResetToken,
			validate: svc.ValidateEmailToken,
			wantErr:  domain.ErrTokenInvalid,
		},
		{
			name:     "reset token accepted for reset validation",
			generate: svc.GenerateResetToken,
			validate: svc.ValidateResetToken,
			wantErr:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tt.generate("user@example.com", 7)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			_, err = tt.validate(token)
			if err != tt.wantErr {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestJWTServiceImpl_TamperedTokenRejected(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)
	other := NewJWTService("another_secret", "contacts-test", 15*time.Minute, time.Hour, time.Hour)

	token, err := other.GenerateAccessToken("user@example.com", 1)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := svc.ValidateAccessToken(token); err != domain.ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid for foreign signature, got %v", err)
	}

	if _, err := svc.ValidateAccessToken("not-a-jwt"); err != domain.ErrTokenMalformed {
		t.Errorf("expected ErrTokenMalformed for garbage input, got %v", err)
	}
}
