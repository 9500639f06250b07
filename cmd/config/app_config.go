package config

import (
	"context"
	"os"
	"strconv"
	"time"

	"receipt-ledger/internal/api/handlers"
	"receipt-ledger/internal/api/routes"
	"receipt-ledger/internal/middleware"
	"receipt-ledger/internal/utils"
	applog "receipt-ledger/internal/utils/logger"
	"receipt-ledger/internal/utils/mailing"
	"receipt-ledger/internal/utils/storage"
	"receipt-ledger/pkg/export"
	"receipt-ledger/pkg/extraction"
	"receipt-ledger/pkg/jwt"
	"receipt-ledger/pkg/product"
	"receipt-ledger/pkg/receipt"
	"receipt-ledger/pkg/reconcile"
	"receipt-ledger/pkg/vendors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		BodyLimit:         10 * 1024 * 1024,
	})
	middlewares := middleware.NewMiddleware(utils.GetConfig("AUTH_DISABLED") == "true")
	validator := utils.Validate
	appLogger := applog.New()

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfig("LOG_TIMEZONE"),
		Output:     file,
	}))

	rate, err := strconv.Atoi(utils.GetConfig("RATE_LIMIT_PER_SECOND"))
	if err != nil || rate < 1 {
		rate = 10
	}
	app.Use(limiter.New(limiter.Config{
		Max:        rate,
		Expiration: 1 * time.Second,
	}))
	app.Use(middlewares.RecoverMiddleware())
	app.Use(middlewares.ContextLogger(appLogger))

	// utils
	ctx := context.Background()
	objectStorage, err := storage.New(ctx)
	if err != nil {
		return nil, err
	}
	extractor, err := extraction.New(ctx)
	if err != nil {
		return nil, err
	}
	mailer := mailing.NewMailer()
	appLogger.Info().
		Str("storage", utils.GetConfig("STORAGE_DRIVER")).
		Str("extractor", extractor.Name()).
		Msg("collaborators ready")

	// Repository
	vendorRepository := vendor.NewVendorRepository(db)
	productRepository := product.NewProductRepository(db)
	receiptRepository := receipt.NewReceiptRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	vendorService := vendor.NewVendorService(vendorRepository)
	productService := product.NewProductService(productRepository)
	receiptService := receipt.NewReceiptService(receiptRepository, objectStorage, extractor, vendorService, productService)
	exportService := export.NewExportService(receiptService, mailer)
	sessions := reconcile.NewSessions(receiptService, vendorService).WithLocale(utils.GetConfig("APP_LOCALE"))

	// Handler
	receiptHandler := handlers.NewReceiptHandler(receiptService, validator)
	workspaceHandler := handlers.NewWorkspaceHandler(sessions, validator)
	vendorHandler := handlers.NewVendorHandler(vendorService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	exportHandler := handlers.NewExportHandler(exportService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		ReceiptHandler:   receiptHandler,
		WorkspaceHandler: workspaceHandler,
		VendorHandler:    vendorHandler,
		ProductHandler:   productHandler,
		ExportHandler:    exportHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
