package routes

import (
	"time"

	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/http/handlers"
	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/http/middleware"
	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/persistence/repositories"
	"github.com/jinlee1703/gifthub-was-cicd/internal/config"
	"github.com/jinlee1703/gifthub-was-cicd/internal/core/services"
	"github.com/jinlee1703/gifthub-was-cicd/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Repositories
	memberRepo := repositories.NewMemberRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	brandRepo := repositories.NewBrandRepository(db)
	productRepo := repositories.NewProductRepository(db)
	voucherRepo := repositories.NewVoucherRepository(db)
	usageRepo := repositories.NewVoucherUsageRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	// Token provider
	provider := jwt.NewProvider(
		cfg.JWT.Secret,
		cfg.JWT.Issuer,
		time.Duration(cfg.JWT.AccessTokenMins)*time.Minute,
		cfg.JWT.RefreshTokenDays,
	)

	// Services
	tokenService := services.NewTokenService(provider, refreshTokenRepo)
	authService := services.NewAuthService(memberRepo, tokenService)
	storageService := services.NewStorageService(cfg.S3)
	brandService := services.NewBrandService(brandRepo)
	productService := services.NewProductService(productRepo)
	voucherService := services.NewVoucherService(
		voucherRepo,
		usageRepo,
		brandRepo,
		productRepo,
		memberRepo,
		storageService,
		cfg.S3.VoucherDir,
	)
	notifyService := services.NewNotificationService(notificationRepo, voucherRepo, cfg.Notify.ExpiryNoticeDays)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, tokenService)
	voucherHandler := handlers.NewVoucherHandler(voucherService, storageService, cfg.S3.VoucherDir)
	catalogHandler := handlers.NewCatalogHandler(brandService, productService)
	notificationHandler := handlers.NewNotificationHandler(notifyService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	authed := middleware.AuthMiddleware(provider)

	// Auth routes
	authRoutes := app.Group("/auth")
	authRoutes.Use(middleware.NoCache())
	authRoutes.Post("/sign-up", middleware.AuthRateLimiter(), authHandler.SignUp)
	authRoutes.Post("/sign-in", middleware.AuthRateLimiter(), authHandler.SignIn)
	authRoutes.Post("/refresh", authHandler.Refresh)
	authRoutes.Post("/sign-out", authed, authHandler.SignOut)
	authRoutes.Get("/me", authed, authHandler.Me)

	// Voucher routes
	voucherRoutes := app.Group("/vouchers")
	voucherRoutes.Use(authed)
	voucherRoutes.Post("/", voucherHandler.Save)
	voucherRoutes.Post("/image", voucherHandler.UploadImage)
	voucherRoutes.Get("/", voucherHandler.List)
	voucherRoutes.Get("/:voucherId", voucherHandler.Read)
	voucherRoutes.Patch("/:voucherId", voucherHandler.Update)
	voucherRoutes.Get("/:voucherId/usage", voucherHandler.History)
	voucherRoutes.Post("/:voucherId/usage", voucherHandler.Use)

	// Catalog routes
	catalogCache := middleware.CatalogCache()
	app.Get("/brands/:name", authed, catalogCache, catalogHandler.GetBrand)
	app.Get("/products/:productId", authed, catalogCache, catalogHandler.GetProduct)

	// Notification routes
	app.Get("/notifications", authed, notificationHandler.List)
}
