package services

import (
	"context"
	"time"

	"github.com/OOlexandr/Contacts/domain"
)

// ContactServiceImpl implements domain.ContactService
type ContactServiceImpl struct {
	contactRepo domain.ContactRepository
	now         func() time.Time
	window      int
}

// NewContactService creates a new contact service. The clock is injected
// so the birthday window can be tested deterministically.
func NewContactService(contactRepo domain.ContactRepository, now func() time.Time, window int) domain.ContactService {
	if now == nil {
		now = time.Now
	}
	return &ContactServiceImpl{
		contactRepo: contactRepo,
		now:         now,
		window:      window,
	}
}

// List implements domain.ContactService
func (s *ContactServiceImpl) List(ctx context.Context, userID uint) ([]domain.Contact, error) {
	return s.contactRepo.ListByUser(ctx, userID)
}

// Get implements domain.ContactService
func (s *ContactServiceImpl) Get(ctx context.Context, userID, contactID uint) (*domain.Contact, error) {
	return s.contactRepo.FindByID(ctx, userID, contactID)
}

// Search implements domain.ContactService
func (s *ContactServiceImpl) Search(ctx context.Context, userID uint, text string) ([]domain.Contact, error) {
	return s.contactRepo.Search(ctx, userID, text)
}

// UpcomingBirthdays implements domain.ContactService. It returns the
// owner's contacts whose birthday recurs within the configured window.
func (s *ContactServiceImpl) UpcomingBirthdays(ctx context.Context, userID uint) ([]domain.Contact, error) {
	contacts, err := s.contactRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	matched := make([]domain.Contact, 0)
	for _, c := range contacts {
		if domain.BirthdayInWindow(c.BirthDate, today, s.window) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// Create implements domain.ContactService
func (s *ContactServiceImpl) Create(ctx context.Context, userID uint, fields domain.ContactFields) (*domain.Contact, error) {
	contact := &domain.Contact{
		FirstName: fields.FirstName,
		LastName:  fields.LastName,
		Email:     fields.Email,
		Phone:     fields.Phone,
		BirthDate: fields.BirthDate,
		UserID:    userID,
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Update implements domain.ContactService. All mutable fields are
// overwritten with the submitted values.
func (s *ContactServiceImpl) Update(ctx context.Context, userID, contactID uint, fields domain.ContactFields) (*domain.Contact, error) {
	contact, err := s.contactRepo.FindByID(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}

	contact.FirstName = fields.FirstName
	contact.LastName = fields.LastName
	contact.Email = fields.Email
	contact.Phone = fields.Phone
	contact.BirthDate = fields.BirthDate

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Delete implements domain.ContactService
func (s *ContactServiceImpl) Delete(ctx context.Context, userID, contactID uint) (*domain.Contact, error) {
	return s.contactRepo.Delete(ctx, userID, contactID)
}
