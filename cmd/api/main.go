package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/posledger/internal/application/service"
	"github.com/sangkips/posledger/internal/config"
	"github.com/sangkips/posledger/internal/domain/entity"
	"github.com/sangkips/posledger/internal/infrastructure/database"
	"github.com/sangkips/posledger/internal/infrastructure/repository"
	"github.com/sangkips/posledger/internal/presentation/http/handler"
	"github.com/sangkips/posledger/internal/presentation/http/routes"
	"github.com/sangkips/posledger/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

// run wires the server and blocks until it stops. Deferred closers run on
// every return path.
func run(cfg *config.Config) error {

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.New(&cfg.Database, cfg.App.Debug)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	// Existing stores may carry a reduced transactions table; leave them alone
	// when auto-migration is off.
	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Initialize repositories
	transactionRepo := repository.NewTransactionRepository(db)
	productRepo := repository.NewProductRepository(db)
	cashierRepo := repository.NewCashierRepository(db)

	// Initialize services
	transactionService := service.NewTransactionService(transactionRepo)
	productService := service.NewProductService(productRepo)
	cashierService := service.NewCashierService(cashierRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.New(printer.Options{
		Type:    cfg.Printer.Type,
		USBPath: cfg.Printer.USBPath,
		Address: cfg.Printer.Address,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter, _ = printer.New(printer.Options{Type: printer.TypeNone})
	}
	defer thermalPrinter.Close()

	printEncoding, err := printer.LookupEncoding(cfg.Printer.Encoding)
	if err != nil {
		log.Printf("Warning: %v, printing UTF-8", err)
	}
	printerService := service.NewPrinterService(thermalPrinter, transactionService, service.PrintLayout{
		Header: entity.ReceiptHeader{
			StoreName: cfg.Store.Name,
			Address:   cfg.Store.Address,
			Phone:     cfg.Store.Phone,
		},
		Width:    cfg.Printer.Width,
		Encoding: printEncoding,
	}, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Transaction: handler.NewTransactionHandler(transactionService),
		Product:     handler.NewProductHandler(productService),
		Cashier:     handler.NewCashierHandler(cashierService),
		Printer:     handler.NewPrinterHandler(printerService),
	}

	rateLimiter := routes.NewRateLimiter(&cfg.RateLimit)
	defer rateLimiter.Close()

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:         cfg,
		RateLimiter: rateLimiter,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s, database: %s", cfg.App.Env, cfg.Database.Driver)

	if err := router.Run(":" + port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
