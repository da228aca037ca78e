package config

import (
	"os"
	"strconv"
	"time"

	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/internal/api/handlers"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/internal/api/routes"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/internal/middleware"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/internal/utils"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/internal/utils/storage"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/pkg/jwt"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/pkg/listing"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/pkg/party"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/pkg/payment"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/pkg/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

const defaultSweepInterval = 30 * time.Second

func NewApp(db *gorm.DB) (*fiber.App, *listing.ExpirySweeper, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

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
		TimeZone:   "Asia/Kolkata",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	partyRepository := party.NewPartyRepository(db)
	listingRepository := listing.NewListingRepository(db)
	transactionRepository := transaction.NewTransactionRepository(db, partyRepository)
	paymentRepository := payment.NewPaymentRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	partyService := party.NewPartyService(partyRepository, jwtService)
	listingService := listing.NewListingService(listingRepository, partyRepository, s3)
	paymentService := payment.NewPaymentService(paymentRepository)
	transactionService := transaction.NewTransactionService(
		transactionRepository,
		listingRepository,
		partyRepository,
		paymentService,
	)

	// Handler
	partyHandler := handlers.NewPartyHandler(partyService, validator)
	listingHandler := handlers.NewListingHandler(listingService, validator)
	transactionHandler := handlers.NewTransactionHandler(transactionService, validator)
	paymentHandler := handlers.NewPaymentHandler(paymentService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		PartyHandler:       partyHandler,
		ListingHandler:     listingHandler,
		TransactionHandler: transactionHandler,
		PaymentHandler:     paymentHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()

	sweeper := listing.NewExpirySweeper(listingRepository, sweepInterval())
	return app, sweeper, nil
}

func sweepInterval() time.Duration {
	raw := utils.GetConfig("SWEEP_INTERVAL_SECONDS")
	if raw == "" {
		return defaultSweepInterval
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		log.Warnf("invalid SWEEP_INTERVAL_SECONDS %q, using default", raw)
		return defaultSweepInterval
	}
	return time.Duration(seconds) * time.Second
}
