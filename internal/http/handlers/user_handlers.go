package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/OOlexandr/Contacts/domain"
	"github.com/OOlexandr/Contacts/internal/http/middleware"
)

// maxAvatarSize bounds avatar uploads to 5 MiB.
const maxAvatarSize = 5 << 20

// UserHandlers handles user profile HTTP requests
type UserHandlers struct {
	userRepo      domain.UserRepository
	avatarStorage domain.AvatarStorage
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userRepo domain.UserRepository, avatarStorage domain.AvatarStorage) *UserHandlers {
	return &UserHandlers{
		userRepo:      userRepo,
		avatarStorage: avatarStorage,
	}
}

// Me returns the authenticated user's profile
func (h *UserHandlers) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": userResponse(user)})
}

// UpdateAvatar stores an uploaded image and points the user's avatar at
// its public URL.
func (h *UserHandlers) UpdateAvatar(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Avatar file required"})
		return
	}
	if fileHeader.Size > maxAvatarSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Avatar file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read avatar file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("avatars/%d/%s%s", user.ID, uuid.NewString(), filepath.Ext(fileHeader.Filename))
	url, err := h.avatarStorage.Upload(c.Request.Context(), key, file, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store avatar"})
		return
	}

	updated, err := h.userRepo.UpdateAvatar(c.Request.Context(), user.Email, url)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update avatar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": userResponse(updated)})
}
