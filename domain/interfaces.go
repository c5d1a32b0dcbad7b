package domain

import (
	"context"
	"io"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	UpdateRefreshToken(ctx context.Context, userID uint, token *string) error
	ConfirmEmail(ctx context.Context, email string) error
	UpdateAvatar(ctx context.Context, email, url string) (*User, error)
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
}

// ContactRepository defines owner-scoped contact data access operations.
// Absence of a record is reported as ErrContactNotFound, never as a
// database failure.
type ContactRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]Contact, error)
	FindByID(ctx context.Context, userID, contactID uint) (*Contact, error)
	Search(ctx context.Context, userID uint, text string) ([]Contact, error)
	Create(ctx context.Context, contact *Contact) error
	Update(ctx context.Context, contact *Contact) error
	Delete(ctx context.Context, userID, contactID uint) (*Contact, error)
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, userID uint) error
	ConfirmEmail(ctx context.Context, token string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// ContactService defines the contact operations exposed to handlers,
// all scoped to the owning user
type ContactService interface {
	List(ctx context.Context, userID uint) ([]Contact, error)
	Get(ctx context.Context, userID, contactID uint) (*Contact, error)
	Search(ctx context.Context, userID uint, text string) ([]Contact, error)
	UpcomingBirthdays(ctx context.Context, userID uint) ([]Contact, error)
	Create(ctx context.Context, userID uint, fields ContactFields) (*Contact, error)
	Update(ctx context.Context, userID, contactID uint, fields ContactFields) (*Contact, error)
	Delete(ctx context.Context, userID, contactID uint) (*Contact, error)
}

// ContactFields carries the mutable fields of a contact
type ContactFields struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	BirthDate time.Time
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations. Email and reset tokens carry
// distinct scopes so a confirmation link cannot be replayed against the
// password reset endpoint.
type TokenService interface {
	GenerateAccessToken(email string, userID uint) (string, error)
	GenerateRefreshToken(email string, userID uint) (string, error)
	GenerateEmailToken(email string, userID uint) (string, error)
	GenerateResetToken(email string, userID uint) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
	ValidateEmailToken(token string) (*TokenClaims, error)
	ValidateResetToken(token string) (*TokenClaims, error)
}

// NotificationService defines outbound notification operations
type NotificationService interface {
	SendEmail(to, subject, body string) error
}

// AvatarStorage defines avatar object storage operations
type AvatarStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// RateLimiter defines fixed-window request throttling. Allow reports
// whether the call identified by key may proceed and, when denied, how
// long the caller has to wait.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
