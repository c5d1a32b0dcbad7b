package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/OOlexandr/Contacts/domain"
	"github.com/OOlexandr/Contacts/internal/mocks"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestContactServiceImpl_UpcomingBirthdays(t *testing.T) {
	contacts := []domain.Contact{
		{ID: 1, FirstName: "Ann", BirthDate: date(1990, time.February, 2), UserID: 1},
		{ID: 2, FirstName: "Bob", BirthDate: date(1985, time.February, 5), UserID: 1},
		{ID: 3, FirstName: "Cat", BirthDate: date(2000, time.January, 30), UserID: 1},
		{ID: 4, FirstName: "Dan", BirthDate: date(1979, time.June, 17), UserID: 1},
	}

	tests := []struct {
		name        string
		today       time.Time
		expectedIDs []uint
	}{
		{
			name:        "window wraps into next month",
			today:       date(2024, time.January, 28),
			expectedIDs: []uint{1, 3},
		},
		{
			name:        "mid-month window",
			today:       date(2024, time.June, 10),
			expectedIDs: []uint{4},
		},
		{
			name:        "no upcoming birthdays",
			today:       date(2024, time.September, 1),
			expectedIDs: []uint{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contactRepo := mocks.NewMockContactRepository()
			contactRepo.ListByUserFunc = func(ctx context.Context, userID uint) ([]domain.Contact, error) {
				return contacts, nil
			}

			svc := NewContactService(contactRepo, func() time.Time { return tt.today }, 7)

			got, err := svc.UpcomingBirthdays(context.Background(), 1)
			if err != nil {
				t.Fatalf("UpcomingBirthdays: %v", err)
			}
			if len(got) != len(tt.expectedIDs) {
				t.Fatalf("expected %d contacts, got %d", len(tt.expectedIDs), len(got))
			}
			for i, id := range tt.expectedIDs {
				if got[i].ID != id {
					t.Errorf("position %d: expected contact %d, got %d", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestContactServiceImpl_UpcomingBirthdaysEmptyIsNotAnError(t *testing.T) {
	svc := NewContactService(mocks.NewMockContactRepository(), func() time.Time {
		return date(2024, time.March, 1)
	}, 7)

	got, err := svc.UpcomingBirthdays(context.Background(), 1)
	if err != nil {
		t.Fatalf("UpcomingBirthdays: %v", err)
	}
	if got == nil {
		t.Error("expected an empty slice, not nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no contacts, got %d", len(got))
	}
}

func TestContactServiceImpl_Create(t *testing.T) {
	contactRepo := mocks.NewMockContactRepository()
	contactRepo.CreateFunc = func(ctx context.Context, contact *domain.Contact) error {
		contact.ID = 42
		return nil
	}

	svc := NewContactService(contactRepo, nil, 7)

	fields := domain.ContactFields{
		FirstName: "Ivan",
		LastName:  "Petrenko",
		Email:     "ivan.p@example.com",
		Phone:     "+380501112233",
		BirthDate: date(1991, time.April, 12),
	}
	contact, err := svc.Create(context.Background(), 7, fields)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if contact.ID != 42 {
		t.Errorf("expected assigned id 42, got %d", contact.ID)
	}
	if contact.UserID != 7 {
		t.Errorf("contact must belong to the caller, got owner %d", contact.UserID)
	}
	if contact.FirstName != "Ivan" || contact.Phone != "+380501112233" {
		t.Errorf("fields not carried over: %+v", contact)
	}
}

func TestContactServiceImpl_UpdateOverwritesAllFields(t *testing.T) {
	existing := &domain.Contact{
		ID:        5,
		FirstName: "Old",
		LastName:  "Name",
		Email:     "old@example.com",
		Phone:     "+380000000000",
		BirthDate: date(1980, time.January, 1),
		UserID:    1,
	}

	contactRepo := mocks.NewMockContactRepository()
	contactRepo.FindByIDFunc = func(ctx context.Context, userID, contactID uint) (*domain.Contact, error) {
		if userID != 1 || contactID != 5 {
			return nil, domain.ErrContactNotFound
		}
		return existing, nil
	}
	var updated *domain.Contact
	contactRepo.UpdateFunc = func(ctx context.Context, contact *domain.Contact) error {
		updated = contact
		return nil
	}

	svc := NewContactService(contactRepo, nil, 7)

	fields := domain.ContactFields{
		FirstName: "New",
		LastName:  "Name",
		Email:     "new@example.com",
		Phone:     "+380111111111",
		BirthDate: date(1981, time.February, 2),
	}
	contact, err := svc.Update(context.Background(), 1, 5, fields)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated == nil {
		t.Fatal("repository update was not called")
	}
	if contact.FirstName != "New" || contact.Email != "new@example.com" || !contact.BirthDate.Equal(fields.BirthDate) {
		t.Errorf("fields not overwritten: %+v", contact)
	}
	if contact.ID != 5 || contact.UserID != 1 {
		t.Errorf("identity fields must not change: %+v", contact)
	}
}

func TestContactServiceImpl_UpdateMissingContact(t *testing.T) {
	svc := NewContactService(mocks.NewMockContactRepository(), nil, 7)

	_, err := svc.Update(context.Background(), 1, 99, domain.ContactFields{FirstName: "X"})
	if !errors.Is(err, domain.ErrContactNotFound) {
		t.Errorf("expected ErrContactNotFound, got %v", err)
	}
}

func TestContactServiceImpl_DeleteReturnsRemovedContact(t *testing.T) {
	contactRepo := mocks.NewMockContactRepository()
	contactRepo.DeleteFunc = func(ctx context.Context, userID, contactID uint) (*domain.Contact, error) {
		return &domain.Contact{ID: contactID, FirstName: "Gone", UserID: userID}, nil
	}

	svc := NewContactService(contactRepo, nil, 7)

	contact, err := svc.Delete(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if contact.ID != 3 || contact.FirstName != "Gone" {
		t.Errorf("expected the removed record back, got %+v", contact)
	}
}

func TestContactServiceImpl_SearchPassesThrough(t *testing.T) {
	contactRepo := mocks.NewMockContactRepository()
	var gotUser uint
	var gotText string
	contactRepo.SearchFunc = func(ctx context.Context, userID uint, text string) ([]domain.Contact, error) {
		gotUser, gotText = userID, text
		return []domain.Contact{{ID: 1, FirstName: "Ann", UserID: userID}}, nil
	}

	svc := NewContactService(contactRepo, nil, 7)

	got, err := svc.Search(context.Background(), 4, "Ann")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotUser != 4 || gotText != "Ann" {
		t.Errorf("search scoped to user %d text %q", gotUser, gotText)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 result, got %d", len(got))
	}
}
