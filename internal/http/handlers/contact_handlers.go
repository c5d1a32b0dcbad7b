package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/OOlexandr/Contacts/domain"
	"github.com/OOlexandr/Contacts/internal/http/middleware"
)

// ContactHandlers handles contact HTTP requests
type ContactHandlers struct {
	contactSvc domain.ContactService
}

// NewContactHandlers creates new contact handlers
func NewContactHandlers(contactSvc domain.ContactService) *ContactHandlers {
	return &ContactHandlers{
		contactSvc: contactSvc,
	}
}

// ContactRequest represents the create/update payload. The birthdate
// travels as a plain ISO date, no time-of-day.
type ContactRequest struct {
	FirstName string `json:"firstname" binding:"required,max=25"`
	LastName  string `json:"lastname" binding:"required,max=25"`
	Email     string `json:"email" binding:"required,email,max=25"`
	Phone     string `json:"phone" binding:"required,max=25"`
	BirthDate string `json:"birthdate" binding:"required,datetime=2006-01-02"`
}

func (r *ContactRequest) fields() domain.ContactFields {
	// Format already validated by the datetime binding
	birthDate, _ := time.Parse("2006-01-02", r.BirthDate)
	return domain.ContactFields{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		BirthDate: birthDate,
	}
}

func contactResponse(contact *domain.Contact) gin.H {
	return gin.H{
		"id":        contact.ID,
		"firstname": contact.FirstName,
		"lastname":  contact.LastName,
		"email":     contact.Email,
		"phone":     contact.Phone,
		"birthdate": contact.BirthDate.Format("2006-01-02"),
	}
}

func contactListResponse(contacts []domain.Contact) []gin.H {
	out := make([]gin.H, 0, len(contacts))
	for i := range contacts {
		out = append(out, contactResponse(&contacts[i]))
	}
	return out
}

func contactID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact id"})
		return 0, false
	}
	return uint(id), true
}

// List returns the caller's contacts. With ?filter= it returns only
// contacts where a field exactly equals the filter text.
func (h *ContactHandlers) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var (
		contacts []domain.Contact
		err      error
	)
	if filter, hasFilter := c.GetQuery("filter"); hasFilter {
		contacts, err = h.contactSvc.Search(c.Request.Context(), user.ID, filter)
	} else {
		contacts, err = h.contactSvc.List(c.Request.Context(), user.ID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list contacts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": contactListResponse(contacts)})
}

// Birthdays returns the caller's contacts with a birthday in the next
// window of days.
func (h *ContactHandlers) Birthdays(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	contacts, err := h.contactSvc.UpcomingBirthdays(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list birthdays"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": contactListResponse(contacts)})
}

// Get returns one contact owned by the caller
func (h *ContactHandlers) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	id, ok := contactID(c)
	if !ok {
		return
	}

	contact, err := h.contactSvc.Get(c.Request.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contact"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": contactResponse(contact)})
}

// Create inserts a new contact owned by the caller
func (h *ContactHandlers) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactSvc.Create(c.Request.Context(), user.ID, req.fields())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": contactResponse(contact)})
}

// Update overwrites all mutable fields of a contact owned by the caller
func (h *ContactHandlers) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	id, ok := contactID(c)
	if !ok {
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactSvc.Update(c.Request.Context(), user.ID, id, req.fields())
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": contactResponse(contact)})
}

// Delete removes a contact owned by the caller and returns the removed
// record.
func (h *ContactHandlers) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	id, ok := contactID(c)
	if !ok {
		return
	}

	contact, err := h.contactSvc.Delete(c.Request.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": contactResponse(contact)})
}
