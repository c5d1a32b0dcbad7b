package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/OOlexandr/Contacts/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags).
// Deleting a user cascades to the owned contacts.
type DBUser struct {
	ID           uint    `gorm:"primaryKey"`
	Username     string  `gorm:"size:50"`
	Email        string  `gorm:"uniqueIndex;size:255"`
	PasswordHash string  `gorm:"column:password;size:255"`
	Avatar       string  `gorm:"size:255"`
	RefreshToken *string `gorm:"size:512"`
	Role         string  `gorm:"index;size:64"`
	Confirmed    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Contacts     []DBContact `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// UpdateRefreshToken implements domain.UserRepository. A nil token revokes
// the stored refresh token.
func (r *UserRepositoryImpl) UpdateRefreshToken(ctx context.Context, userID uint, token *string) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Update("refresh_token", token).Error
}

// ConfirmEmail implements domain.UserRepository. The flag only ever flips
// from false to true, so repeated calls are harmless.
func (r *UserRepositoryImpl) ConfirmEmail(ctx context.Context, email string) error {
	result := r.db.WithContext(ctx).Model(&DBUser{}).Where("email = ?", email).Update("confirmed", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdateAvatar implements domain.UserRepository
func (r *UserRepositoryImpl) UpdateAvatar(ctx context.Context, email, url string) (*domain.User, error) {
	result := r.db.WithContext(ctx).Model(&DBUser{}).Where("email = ?", email).Update("avatar", url)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByEmail(ctx, email)
}

// UpdatePassword implements domain.UserRepository
func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Update("password", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Avatar:       user.Avatar,
		RefreshToken: user.RefreshToken,
		Role:         user.Role,
		Confirmed:    user.Confirmed,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Username:     dbUser.Username,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		Avatar:       dbUser.Avatar,
		RefreshToken: dbUser.RefreshToken,
		Role:         dbUser.Role,
		Confirmed:    dbUser.Confirmed,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
