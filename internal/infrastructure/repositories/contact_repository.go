package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/OOlexandr/Contacts/domain"
)

// ContactRepositoryImpl implements domain.ContactRepository using GORM.
// Every query is scoped by the owning user id; a contact belonging to a
// different user is indistinguishable from an absent one.
type ContactRepositoryImpl struct {
	db *gorm.DB
}

// DBContact represents the database model for Contact (with GORM tags)
type DBContact struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"column:firstname;size:25"`
	LastName  string `gorm:"column:lastname;size:25"`
	Email     string `gorm:"size:25"`
	Phone     string `gorm:"size:25"`
	BirthDate time.Time `gorm:"column:birthdate"`
	UserID    uint   `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBContact) TableName() string {
	return "contacts"
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) domain.ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

// ListByUser implements domain.ContactRepository
func (r *ContactRepositoryImpl) ListByUser(ctx context.Context, userID uint) ([]domain.Contact, error) {
	var dbContacts []DBContact
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&dbContacts).Error
	if err != nil {
		return nil, err
	}
	return r.dbToDomainSlice(dbContacts), nil
}

// FindByID implements domain.ContactRepository
func (r *ContactRepositoryImpl) FindByID(ctx context.Context, userID, contactID uint) (*domain.Contact, error) {
	var dbContact DBContact
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", contactID, userID).First(&dbContact).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrContactNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbContact), nil
}

// Search implements domain.ContactRepository. Matching is exact equality
// on firstname, lastname, email, or phone, not substring. An empty result
// is a normal return, not an error.
func (r *ContactRepositoryImpl) Search(ctx context.Context, userID uint, text string) ([]domain.Contact, error) {
	var dbContacts []DBContact
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("firstname = ? OR lastname = ? OR email = ? OR phone = ?", text, text, text, text).
		Find(&dbContacts).Error
	if err != nil {
		return nil, err
	}
	return r.dbToDomainSlice(dbContacts), nil
}

// Create implements domain.ContactRepository
func (r *ContactRepositoryImpl) Create(ctx context.Context, contact *domain.Contact) error {
	dbContact := r.domainToDB(contact)
	if err := r.db.WithContext(ctx).Create(dbContact).Error; err != nil {
		return err
	}
	contact.ID = dbContact.ID
	return nil
}

// Update implements domain.ContactRepository. All mutable fields are
// overwritten; ownership is re-checked in the WHERE clause.
func (r *ContactRepositoryImpl) Update(ctx context.Context, contact *domain.Contact) error {
	result := r.db.WithContext(ctx).Model(&DBContact{}).
		Where("id = ? AND user_id = ?", contact.ID, contact.UserID).
		Updates(map[string]interface{}{
			"firstname": contact.FirstName,
			"lastname":  contact.LastName,
			"email":     contact.Email,
			"phone":     contact.Phone,
			"birthdate": contact.BirthDate,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

// Delete implements domain.ContactRepository. The removed record is
// returned so the handler can echo it back.
func (r *ContactRepositoryImpl) Delete(ctx context.Context, userID, contactID uint) (*domain.Contact, error) {
	contact, err := r.FindByID(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).Where("id = ? AND user_id = ?", contactID, userID).Delete(&DBContact{}).Error
	if err != nil {
		return nil, err
	}
	return contact, nil
}

// domainToDB converts domain contact to database contact
func (r *ContactRepositoryImpl) domainToDB(contact *domain.Contact) *DBContact {
	return &DBContact{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
		BirthDate: contact.BirthDate,
		UserID:    contact.UserID,
	}
}

// dbToDomain converts database contact to domain contact
func (r *ContactRepositoryImpl) dbToDomain(dbContact *DBContact) *domain.Contact {
	return &domain.Contact{
		ID:        dbContact.ID,
		FirstName: dbContact.FirstName,
		LastName:  dbContact.LastName,
		Email:     dbContact.Email,
		Phone:     dbContact.Phone,
		BirthDate: dbContact.BirthDate,
		UserID:    dbContact.UserID,
	}
}

func (r *ContactRepositoryImpl) dbToDomainSlice(dbContacts []DBContact) []domain.Contact {
	contacts := make([]domain.Contact, 0, len(dbContacts))
	for i := range dbContacts {
		contacts = append(contacts, *r.dbToDomain(&dbContacts[i]))
	}
	return contacts
}
