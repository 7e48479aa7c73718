package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sefazor/snapvault-backend/internal/config"
	"github.com/sefazor/snapvault-backend/internal/handler"
	"github.com/sefazor/snapvault-backend/internal/middleware"
	"github.com/sefazor/snapvault-backend/internal/repository"
	"github.com/sefazor/snapvault-backend/internal/service"
	"github.com/sefazor/snapvault-backend/pkg/email"
	jwtPkg "github.com/sefazor/snapvault-backend/pkg/jwt"
	"github.com/sefazor/snapvault-backend/pkg/qrcode"
	"github.com/sefazor/snapvault-backend/pkg/storage"
	"github.com/sefazor/snapvault-backend/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const APIPrefix = "/api/v1"

// Deps are the collaborators the HTTP app is built from. Storage may be nil
// when object storage is not configured.
type Deps struct {
	Config  *config.Config
	DB      *gorm.DB
	Logger  *zap.Logger
	Storage storage.StorageService
	Mailer  email.Sender
}

// New wires repositories, services and handlers into a fiber app.
func New(d Deps) *fiber.App {
	cfg := d.Config
	log := d.Logger

	// Repositories
	userRepo := repository.NewUserRepository(d.DB)
	eventRepo := repository.NewEventRepository(d.DB)
	collectionRepo := repository.NewCollectionRepository(d.DB)
	photoRepo := repository.NewPhotoRepository(d.DB)
	studioRepo := repository.NewStudioSettingsRepository(d.DB)
	superAdminRepo := repository.NewSuperAdminSettingsRepository(d.DB)

	// Services
	tokens := jwtPkg.NewManager(cfg.JWTSecret, cfg.AccessTTL(), cfg.RefreshTTL())
	authService := service.NewAuthService(userRepo, tokens, d.Mailer, log)
	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(eventRepo, d.Storage, qrcode.NewQRService(cfg.PublicBaseURL), log)
	collectionService := service.NewCollectionService(collectionRepo, eventRepo)
	photoService := service.NewPhotoService(photoRepo, eventRepo, collectionRepo, d.Storage, log)
	studioService := service.NewStudioSettingsService(studioRepo)
	superAdminService := service.NewSuperAdminSettingsService(superAdminRepo, log)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator, cfg.CookieSecure)
	eventHandler := handler.NewEventHandler(eventService, validator)
	collectionHandler := handler.NewCollectionHandler(collectionService, validator)
	photoHandler := handler.NewPhotoHandler(photoService, validator)
	studioHandler := handler.NewStudioSettingsHandler(studioService, validator)
	superAdminHandler := handler.NewSuperAdminSettingsHandler(superAdminService, validator)
	healthHandler := handler.NewHealthHandler(d.DB, log)

	app := fiber.New(fiber.Config{
		AppName:      "snapvault-backend",
		ErrorHandler: handler.ErrorHandler(log),
		BodyLimit:    service.MaxUploadSize + 1024*1024,
	})

	app.Use(recover.New())
	app.Use(middleware.PrometheusMiddleware())
	app.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	app.Use(logger.New())
	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			Next: func(c *fiber.Ctx) bool {
				return c.Path() == "/metrics"
			},
		}))
	}

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/health", healthHandler.Health)

	api := app.Group(APIPrefix)
	api.Get("/health", healthHandler.Health)

	authenticated := middleware.AuthMiddleware(authService)
	withUser := middleware.LoadUser(userService)
	adminOnly := middleware.RequireAdmin(userService)

	// Public auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/super-admin/register", authHandler.RegisterSuperAdmin)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", authenticated, withUser, authHandler.Me)

	events := api.Group("/events", authenticated)
	events.Post("/", eventHandler.CreateEvent)
	events.Get("/", eventHandler.ListEvents)
	events.Get("/:id", eventHandler.GetEvent)
	events.Put("/:id", eventHandler.UpdateEvent)
	events.Delete("/:id", eventHandler.DeleteEvent)
	events.Get("/:id/qrcode", eventHandler.QRCode)
	events.Post("/:id/photos", photoHandler.CreateEventPhoto)
	events.Get("/:id/photos", photoHandler.ListEventPhotos)
	events.Post("/:id/photos/upload", photoHandler.UploadEventPhoto)

	collections := api.Group("/collections", authenticated)
	collections.Post("/", collectionHandler.CreateCollection)
	collections.Get("/", collectionHandler.ListCollections)
	collections.Get("/:id", collectionHandler.GetCollection)
	collections.Put("/:id", collectionHandler.UpdateCollection)
	collections.Delete("/:id", collectionHandler.DeleteCollection)

	photos := api.Group("/photos", authenticated)
	photos.Post("/", photoHandler.CreatePhoto)
	photos.Get("/", photoHandler.ListPhotos)
	photos.Get("/:id", photoHandler.GetPhoto)
	photos.Put("/:id", photoHandler.UpdatePhoto)
	photos.Delete("/:id", photoHandler.DeletePhoto)

	studio := api.Group("/studio-settings", authenticated, withUser)
	studio.Post("/", studioHandler.CreateSettings)
	studio.Get("/", studioHandler.ListSettings)
	studio.Get("/current/me", studioHandler.CurrentSettings)
	studio.Get("/:id", studioHandler.GetSettings)
	studio.Put("/:id", studioHandler.UpdateSettings)
	studio.Delete("/:id", studioHandler.DeleteSettings)

	superAdmin := api.Group("/super-admin-settings", authenticated, adminOnly)
	superAdmin.Post("/", superAdminHandler.CreateSettings)
	superAdmin.Get("/", superAdminHandler.GetSettings)
	superAdmin.Put("/", superAdminHandler.UpdateSettings)
	superAdmin.Delete("/", superAdminHandler.DeleteSettings)
	superAdmin.Post("/initialize", superAdminHandler.InitializeSettings)

	return app
}

func corsConfig(origins string) cors.Config {
	list := make([]string, 0)
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			list = append(list, o)
		}
	}
	allowOrigins := strings.Join(list, ", ")

	return cors.Config{
		AllowOrigins:     allowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: allowOrigins != "*" && allowOrigins != "",
	}
}
