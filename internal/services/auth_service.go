package services

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/OOlexandr/Contacts/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo        domain.UserRepository
	passwordSvc     domain.PasswordService
	tokenSvc        domain.TokenService
	notificationSvc domain.NotificationService
	limiter         domain.RateLimiter
	accessTTL       time.Duration
	baseURL         string
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	notificationSvc domain.NotificationService,
	limiter domain.RateLimiter,
	accessTTL time.Duration,
	baseURL string,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:        userRepo,
		passwordSvc:     passwordSvc,
		tokenSvc:        tokenSvc,
		notificationSvc: notificationSvc,
		limiter:         limiter,
		accessTTL:       accessTTL,
		baseURL:         baseURL,
	}
}

// gravatarURL builds the default avatar for a fresh account
func gravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x", sum)
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrUserAlreadyExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Avatar:       gravatarURL(email),
		Role:         "user",
		Confirmed:    false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Confirmation mail failures must not undo the signup
	if err := s.sendConfirmationEmail(user); err != nil {
		log.Printf("CONFIRMATION_EMAIL_FAILED: user_id=%d email=%s error=%v", user.ID, user.Email, err)
	}

	return user, nil
}

func (s *AuthServiceImpl) sendConfirmationEmail(user *domain.User) error {
	token, err := s.tokenSvc.GenerateEmailToken(user.Email, user.ID)
	if err != nil {
		return fmt.Errorf("failed to generate email token: %w", err)
	}

	link := fmt.Sprintf("%s/api/auth/confirmed_email/%s", s.baseURL, token)
	body := fmt.Sprintf("Hi %s,\n\nplease confirm your email address by opening this link:\n%s\n", user.Username, link)
	return s.notificationSvc.SendEmail(user.Email, "Confirm your email", body)
}

// Login implements domain.AuthService
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.Confirmed {
		return nil, domain.ErrEmailNotConfirmed
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueTokenPair(ctx, user)
}

// issueTokenPair generates a fresh access/refresh pair and persists the
// refresh token, overwriting (and thereby invalidating) any prior one.
func (s *AuthServiceImpl) issueTokenPair(ctx context.Context, user *domain.User) (*domain.AuthResult, error) {
	accessToken, err := s.tokenSvc.GenerateAccessToken(user.Email, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.tokenSvc.GenerateRefreshToken(user.Email, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.userRepo.UpdateRefreshToken(ctx, user.ID, &refreshToken); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}
	user.RefreshToken = &refreshToken

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// RefreshToken implements domain.AuthService. The presented token must
// match the single stored value for the user; a stale token revokes the
// stored one so neither can be replayed.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	claims, err := s.tokenSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, claims.Email)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		if err := s.userRepo.UpdateRefreshToken(ctx, user.ID, nil); err != nil {
			return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
		}
		return nil, domain.ErrRefreshTokenMismatch
	}

	return s.issueTokenPair(ctx, user)
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context, userID uint) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, nil)
}

// ConfirmEmail implements domain.AuthService. The confirmed flag flips
// exactly once; a second confirmation attempt is a client error.
func (s *AuthServiceImpl) ConfirmEmail(ctx context.Context, token string) error {
	claims, err := s.tokenSvc.ValidateEmailToken(token)
	if err != nil {
		return err
	}

	user, err := s.userRepo.FindByEmail(ctx, claims.Email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	if user.Confirmed {
		return domain.ErrEmailAlreadyConfirmed
	}

	return s.userRepo.ConfirmEmail(ctx, user.Email)
}

// RequestPasswordReset implements domain.AuthService. Requests are
// rate-limited per email address.
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, email string) error {
	allowed, wait, err := s.limiter.Allow(ctx, "pwreset:"+email)
	if err != nil {
		return fmt.Errorf("failed to check rate limit: %w", err)
	}
	if !allowed {
		log.Printf("PASSWORD_RESET_THROTTLED: email=%s retry_after=%s", email, wait)
		return domain.ErrRateLimited
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	token, err := s.tokenSvc.GenerateResetToken(user.Email, user.ID)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	link := fmt.Sprintf("%s/api/auth/reset_password/%s", s.baseURL, token)
	body := fmt.Sprintf("Hi %s,\n\na password reset was requested for your account. Open this link to choose a new password:\n%s\n\nIf you did not request this, ignore this message.\n", user.Username, link)
	if err := s.notificationSvc.SendEmail(user.Email, "Reset your password", body); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	return nil
}

// ResetPassword implements domain.AuthService. Only reset-scoped tokens
// are accepted; a successful reset also revokes the stored refresh token.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	claims, err := s.tokenSvc.ValidateResetToken(token)
	if err != nil {
		return err
	}

	user, err := s.userRepo.FindByEmail(ctx, claims.Email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return s.userRepo.UpdateRefreshToken(ctx, user.ID, nil)
}
