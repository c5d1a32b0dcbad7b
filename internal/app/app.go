package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OOlexandr/Contacts/internal/config"
	httpx "github.com/OOlexandr/Contacts/internal/http"
	"github.com/OOlexandr/Contacts/internal/http/handlers"
	"github.com/OOlexandr/Contacts/internal/http/middleware"
	"github.com/OOlexandr/Contacts/internal/infrastructure/auth"
	"github.com/OOlexandr/Contacts/internal/infrastructure/database"
	"github.com/OOlexandr/Contacts/internal/infrastructure/notifications"
	"github.com/OOlexandr/Contacts/internal/infrastructure/repositories"
	"github.com/OOlexandr/Contacts/internal/infrastructure/storage"
	"github.com/OOlexandr/Contacts/internal/services"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}
	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}
	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	avatarStorage, err := storage.NewS3AvatarStorage(context.Background(), storage.S3Config{
		Region:       cfg.S3Region,
		BaseEndpoint: cfg.S3BaseEndpoint,
		Bucket:       cfg.S3Bucket,
		AccessKey:    cfg.S3AccessKey,
		SecretKey:    cfg.S3SecretKey,
		PublicURL:    cfg.S3PublicURL,
	})
	if err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL, cfg.EmailTokenTTL)
	notificationSvc := notifications.NewSMTPService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)

	// Repositories
	userRepo := repositories.NewUserRepository(gdb)
	contactRepo := repositories.NewContactRepository(gdb)

	// Services
	limiter := services.NewRateLimiter(rdb, services.RateLimitConfig{
		Limit:  cfg.RateLimit,
		Window: cfg.RateLimitWindow,
	})
	authSvc := services.NewAuthService(userRepo, passwordSvc, tokenSvc, notificationSvc, limiter, cfg.AccessTTL, cfg.BaseURL)
	contactSvc := services.NewContactService(contactRepo, nil, cfg.BirthdayWindowDays)
	policySvc := services.NewPolicyService(cas.E)

	// Handlers
	authH := handlers.NewAuthHandlers(authSvc)
	contactH := handlers.NewContactHandlers(contactSvc)
	userH := handlers.NewUserHandlers(userRepo, avatarStorage)
	policyH := handlers.NewPolicyHandlers(policySvc)

	// Middleware
	jwtMW := middleware.NewAuthMW(tokenSvc, userRepo)
	casbinMW := middleware.NewCasbinMW(services.NewCasbinEnforcerWrapper(cas.E))
	rateMW := middleware.NewRateLimitMW(limiter)

	r := httpx.BuildRouter(authH, contactH, userH, policyH, jwtMW, casbinMW, rateMW)

	policies, _ := cas.E.GetPolicy()
	if len(policies) == 0 {
		cas.E.AddPolicy("role_admin", "/api/*", "(GET|POST|PUT|PATCH|DELETE)")
		cas.E.AddPolicy("role_user", "/api/auth/logout", "POST")
		cas.E.AddPolicy("role_user", "/api/contacts", "(GET|POST)")
		cas.E.AddPolicy("role_user", "/api/contacts/:id", "(GET|PUT|DELETE)")
		cas.E.AddPolicy("role_user", "/api/contacts/birthdays", "GET")
		cas.E.AddPolicy("role_user", "/api/users/me", "GET")
		cas.E.AddPolicy("role_user", "/api/users/avatar", "PATCH")
		_ = cas.E.SavePolicy()
		log.Println("casbin: seeded default policies")
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
