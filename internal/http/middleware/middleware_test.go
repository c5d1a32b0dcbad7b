package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/OOlexandr/Contacts/domain"
	"github.com/OOlexandr/Contacts/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authTestRouter(tokenSvc domain.TokenService, userRepo domain.UserRepository) *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokenSvc, userRepo), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"email": user.Email, "role": user.Role})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	claims := &domain.TokenClaims{Email: "ivan@example.com", UserID: 1, Scope: domain.ScopeAccessToken}

	tests := []struct {
		name           string
		authHeader     string
		validateErr    error
		findErr        error
		expectedStatus int
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer good-token",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic abc123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer old-token",
			validateErr:    domain.ErrTokenExpired,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed token",
			authHeader:     "Bearer garbage",
			validateErr:    domain.ErrTokenMalformed,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "deleted user",
			authHeader:     "Bearer good-token",
			findErr:        domain.ErrUserNotFound,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewMockTokenService()
			tokenSvc.ValidateAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
				if tt.validateErr != nil {
					return nil, tt.validateErr
				}
				return claims, nil
			}

			userRepo := mocks.NewMockUserRepository()
			userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
				if tt.findErr != nil {
					return nil, tt.findErr
				}
				return &domain.User{ID: 1, Email: email, Role: "user", Confirmed: true}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			authTestRouter(tokenSvc, userRepo).ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestCasbinMW_Enforce(t *testing.T) {
	tests := []struct {
		name           string
		role           string
		enforceResult  bool
		expectedStatus int
	}{
		{
			name:           "role allowed",
			role:           "user",
			enforceResult:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "role denied",
			role:           "user",
			enforceResult:  false,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enforcer := mocks.NewMockCasbinEnforcer()
			var gotRole, gotPath string
			enforcer.EnforceFunc = func(rvals ...interface{}) (bool, error) {
				gotRole = rvals[0].(string)
				gotPath = rvals[1].(string)
				return tt.enforceResult, nil
			}

			r := gin.New()
			r.GET("/api/contacts/:id", func(c *gin.Context) {
				c.Set("user_role", tt.role)
			}, NewCasbinMW(enforcer).Enforce(), func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"ok": true})
			})

			req := httptest.NewRequest(http.MethodGet, "/api/contacts/5", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if gotRole != "role_"+tt.role {
				t.Errorf("expected casbin subject role_%s, got %s", tt.role, gotRole)
			}
			if gotPath != "/api/contacts/:id" {
				t.Errorf("expected parameterized path, got %s", gotPath)
			}
		})
	}
}

func TestCasbinMW_MissingRole(t *testing.T) {
	r := gin.New()
	r.GET("/api/contacts", NewCasbinMW(mocks.NewMockCasbinEnforcer()).Enforce(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without an authenticated role, got %d", w.Code)
	}
}

func TestRateLimitMW(t *testing.T) {
	t.Run("allowed request passes through", func(t *testing.T) {
		r := gin.New()
		r.POST("/api/auth/signup", NewRateLimitMW(mocks.NewMockRateLimiter()).Limit(), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	t.Run("throttled request gets 429 with retry hint", func(t *testing.T) {
		limiter := mocks.NewMockRateLimiter()
		limiter.AllowFunc = func(ctx context.Context, key string) (bool, time.Duration, error) {
			return false, 42 * time.Second, nil
		}

		r := gin.New()
		r.POST("/api/auth/signup", NewRateLimitMW(limiter).Limit(), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
		if body := w.Body.String(); !strings.Contains(body, `"retry_after":42`) {
			t.Errorf("expected retry_after 42 in body: %s", body)
		}
	})
}
