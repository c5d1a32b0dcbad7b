package domain

import "time"

// User represents an account that owns contacts
type User struct {
	ID           uint
	Username     string
	Email        string
	PasswordHash string `gorm:"column:password"`
	Avatar       string
	RefreshToken *string
	Role         string
	Confirmed    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Contact represents a person owned by exactly one user
type Contact struct {
	ID        uint
	FirstName string
	LastName  string
	Email     string
	Phone     string
	BirthDate time.Time
	UserID    uint
}

// AuthRequest represents authentication credentials
type AuthRequest struct {
	Email    string
	Password string
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// Token scopes carried in the "scope" claim
const (
	ScopeAccessToken  = "access_token"
	ScopeRefreshToken = "refresh_token"
	ScopeEmailToken   = "email_token"
	ScopeResetToken   = "reset_token"
)

// TokenClaims represents JWT token claims
type TokenClaims struct {
	Email     string `json:"sub"`
	UserID    uint   `json:"user_id"`
	Scope     string `json:"scope"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
