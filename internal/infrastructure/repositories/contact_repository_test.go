package repositories

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/OOlexandr/Contacts/domain"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&DBUser{}, &DBContact{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func seedContact(t *testing.T, db *gorm.DB, userID uint, first, last, email, phone string, birth time.Time) uint {
	t.Helper()
	c := &DBContact{
		FirstName: first,
		LastName:  last,
		Email:     email,
		Phone:     phone,
		BirthDate: birth,
		UserID:    userID,
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("failed to seed contact: %v", err)
	}
	return c.ID
}

func TestContactRepositoryImpl_FindByID_OwnershipScoping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	id := seedContact(t, db, 1, "Anna", "Kovalenko", "anna@example.com", "+380501112233",
		time.Date(1990, time.June, 17, 0, 0, 0, 0, time.UTC))

	found, err := repo.FindByID(ctx, 1, id)
	if err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
	if found.FirstName != "Anna" {
		t.Errorf("expected firstname Anna, got %s", found.FirstName)
	}

	// Another user must not see the contact
	_, err = repo.FindByID(ctx, 2, id)
	if err != domain.ErrContactNotFound {
		t.Errorf("expected ErrContactNotFound for foreign user, got %v", err)
	}
}

func TestContactRepositoryImpl_Search_ExactMatchOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	birth := time.Date(1985, time.March, 2, 0, 0, 0, 0, time.UTC)
	seedContact(t, db, 1, "Anna", "Kovalenko", "anna@example.com", "+380501112233", birth)
	seedContact(t, db, 1, "Annabel", "Annan", "other@example.com", "+380507778899", birth)
	seedContact(t, db, 2, "Anna", "Shevchenko", "anna2@example.com", "+380509990011", birth)

	results, err := repo.Search(ctx, 1, "Anna")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected exactly one exact match, got %d", len(results))
	}
	if results[0].LastName != "Kovalenko" {
		t.Errorf("expected Kovalenko, got %s", results[0].LastName)
	}

	// Match against phone field
	results, err = repo.Search(ctx, 1, "+380507778899")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].FirstName != "Annabel" {
		t.Errorf("expected phone match on Annabel, got %+v", results)
	}

	// No match is an empty slice, not an error
	results, err = repo.Search(ctx, 1, "Ann")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("substring must not match, got %d results", len(results))
	}
}

func TestContactRepositoryImpl_CreateThenFindRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	birth := time.Date(1992, time.November, 29, 0, 0, 0, 0, time.UTC)
	contact := &domain.Contact{
		FirstName: "Dmytro",
		LastName:  "Bondar",
		Email:     "dmytro@example.com",
		Phone:     "+380671234567",
		BirthDate: birth,
		UserID:    1,
	}

	if err := repo.Create(ctx, contact); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if contact.ID == 0 {
		t.Fatal("Create must assign an id")
	}

	found, err := repo.FindByID(ctx, 1, contact.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.FirstName != contact.FirstName || found.LastName != contact.LastName ||
		found.Email != contact.Email || found.Phone != contact.Phone ||
		!found.BirthDate.Equal(contact.BirthDate) || found.UserID != contact.UserID {
		t.Errorf("round trip mismatch: created %+v, found %+v", contact, found)
	}
}

func TestContactRepositoryImpl_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	birth := time.Date(1985, time.March, 2, 0, 0, 0, 0, time.UTC)
	id := seedContact(t, db, 1, "Anna", "Kovalenko", "anna@example.com", "+380501112233", birth)

	updated := &domain.Contact{
		ID:        id,
		FirstName: "Hanna",
		LastName:  "Kovalenko",
		Email:     "hanna@example.com",
		Phone:     "+380501112233",
		BirthDate: birth,
		UserID:    1,
	}
	if err := repo.Update(ctx, updated); err != nil {
		t.Fatalf("Update: %v", err)
	}

	found, err := repo.FindByID(ctx, 1, id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.FirstName != "Hanna" || found.Email != "hanna@example.com" {
		t.Errorf("update not applied: %+v", found)
	}

	// Nonexistent id performs no mutation and reports absence
	missing := &domain.Contact{ID: 9999, UserID: 1, FirstName: "Nobody", BirthDate: birth}
	if err := repo.Update(ctx, missing); err != domain.ErrContactNotFound {
		t.Errorf("expected ErrContactNotFound, got %v", err)
	}

	// Foreign owner cannot update
	foreign := *updated
	foreign.UserID = 2
	foreign.FirstName = "Intruder"
	if err := repo.Update(ctx, &foreign); err != domain.ErrContactNotFound {
		t.Errorf("expected ErrContactNotFound for foreign user, got %v", err)
	}
	found, _ = repo.FindByID(ctx, 1, id)
	if found.FirstName != "Hanna" {
		t.Errorf("foreign update must not mutate record, got %s", found.FirstName)
	}
}

func TestContactRepositoryImpl_DeleteIsIdempotentInEffect(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	birth := time.Date(1985, time.March, 2, 0, 0, 0, 0, time.UTC)
	id := seedContact(t, db, 1, "Anna", "Kovalenko", "anna@example.com", "+380501112233", birth)

	deleted, err := repo.Delete(ctx, 1, id)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.ID != id || deleted.FirstName != "Anna" {
		t.Errorf("Delete must return the removed record, got %+v", deleted)
	}

	// Second delete on the same id reports absence
	if _, err := repo.Delete(ctx, 1, id); err != domain.ErrContactNotFound {
		t.Errorf("expected ErrContactNotFound on repeated delete, got %v", err)
	}
}

func TestContactRepositoryImpl_ListByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	birth := time.Date(1985, time.March, 2, 0, 0, 0, 0, time.UTC)
	seedContact(t, db, 1, "Anna", "Kovalenko", "anna@example.com", "1", birth)
	seedContact(t, db, 1, "Borys", "Tkachenko", "borys@example.com", "2", birth)
	seedContact(t, db, 2, "Clara", "Melnyk", "clara@example.com", "3", birth)

	contacts, err := repo.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts for user 1, got %d", len(contacts))
	}
	for _, c := range contacts {
		if c.UserID != 1 {
			t.Errorf("listing leaked a foreign contact: %+v", c)
		}
	}
}
