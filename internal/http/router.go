package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/OOlexandr/Contacts/internal/http/handlers"
	"github.com/OOlexandr/Contacts/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, ch *handlers.ContactHandlers, uh *handlers.UserHandlers, ph *handlers.PolicyHandlers, jwtmw *middleware.AuthMW, cb middleware.CasbinMiddleware, rl *middleware.RateLimitMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/api/auth")
	auth.POST("/signup", rl.Limit(), ah.Signup)
	auth.POST("/login", ah.Login)
	auth.GET("/confirmed_email/:token", ah.ConfirmEmail)
	auth.POST("/refresh_token", ah.Refresh)
	auth.POST("/request_password_reset", rl.Limit(), ah.RequestPasswordReset)
	auth.POST("/reset_password/:token", ah.ResetPassword)

	v := r.Group("/api").Use(jwtmw.WithJWT(), cb.Enforce())
	v.POST("/auth/logout", ah.Logout)

	v.GET("/contacts", ch.List)
	v.GET("/contacts/birthdays", ch.Birthdays)
	v.GET("/contacts/:id", ch.Get)
	v.POST("/contacts", ch.Create)
	v.PUT("/contacts/:id", ch.Update)
	v.DELETE("/contacts/:id", ch.Delete)

	v.GET("/users/me", uh.Me)
	v.PATCH("/users/avatar", uh.UpdateAvatar)

	adm := r.Group("/api/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	adm.GET("/policies", ph.List)
	adm.POST("/policies", ph.Add)
	adm.DELETE("/policies", ph.Remove)

	return r
}
