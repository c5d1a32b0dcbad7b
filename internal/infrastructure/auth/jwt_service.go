package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/OOlexandr/Contacts/domain"
)

// JWTServiceImpl implements domain.TokenService
type JWTServiceImpl struct {
	secretKey     []byte
	issuer        string
	accessTTL     time.Duration
	refreshTTL    time.Duration
	emailTokenTTL time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey, issuer string, accessTTL, refreshTTL, emailTokenTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey:     []byte(secretKey),
		issuer:        issuer,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		emailTokenTTL: emailTokenTTL,
	}
}

// GenerateAccessToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateAccessToken(email string, userID uint) (string, error) {
	return j.generate(email, userID, domain.ScopeAccessToken, j.accessTTL)
}

// GenerateRefreshToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateRefreshToken(email string, userID uint) (string, error) {
	return j.generate(email, userID, domain.ScopeRefreshToken, j.refreshTTL)
}

// GenerateEmailToken implements domain.TokenService. Email tokens back
// confirmation links only.
func (j *JWTServiceImpl) GenerateEmailToken(email string, userID uint) (string, error) {
	return j.generate(email, userID, domain.ScopeEmailToken, j.emailTokenTTL)
}

// GenerateResetToken implements domain.TokenService. Reset tokens back
// password reset links and share the email token lifetime.
func (j *JWTServiceImpl) GenerateResetToken(email string, userID uint) (string, error) {
	return j.generate(email, userID, domain.ScopeResetToken, j.emailTokenTTL)
}

func (j *JWTServiceImpl) generate(email string, userID uint, scope string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     email,
		"user_id": userID,
		"scope":   scope,
		"iss":     j.issuer,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ValidateAccessToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateAccessToken(tokenString string) (*domain.TokenClaims, error) {
	return j.validateToken(tokenString, domain.ScopeAccessToken)
}

// ValidateRefreshToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateRefreshToken(tokenString string) (*domain.TokenClaims, error) {
	return j.validateToken(tokenString, domain.ScopeRefreshToken)
}

// ValidateEmailToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateEmailToken(tokenString string) (*domain.TokenClaims, error) {
	return j.validateToken(tokenString, domain.ScopeEmailToken)
}

// ValidateResetToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateResetToken(tokenString string) (*domain.TokenClaims, error) {
	return j.validateToken(tokenString, domain.ScopeResetToken)
}

// validateToken verifies signature, expiry, and scope, and returns claims
func (j *JWTServiceImpl) validateToken(tokenString, expectedScope string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, domain.ErrTokenMalformed
		}
		return nil, domain.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	email, ok := claims["sub"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	scope, ok := claims["scope"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	// A token presented outside of its purpose is invalid, not malformed
	if scope != expectedScope {
		return nil, domain.ErrTokenInvalid
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	return &domain.TokenClaims{
		Email:     email,
		UserID:    uint(userID),
		Scope:     scope,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}, nil
}
