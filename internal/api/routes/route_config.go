package routes

import (
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/internal/api/handlers"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/internal/middleware"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	PartyHandler       handlers.PartyHandler
	ListingHandler     handlers.ListingHandler
	TransactionHandler handlers.TransactionHandler
	PaymentHandler     handlers.PaymentHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Users()
	c.Listings()
	c.Transactions()
	c.GuestRoute()
}

func (c *Config) Users() {
	users := c.App.Group("/api/v1/users")
	{
		users.Post("/register", c.PartyHandler.Register)
		users.Post("/login", c.PartyHandler.Login)
		users.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.PartyHandler.Me)
		users.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.PartyHandler.UpdateProfile)
		users.Get("/history", c.Middleware.AuthMiddleware(c.JWTService), c.PartyHandler.GetHistory)
	}
}

func (c *Config) Listings() {
	listings := c.App.Group("/api/v1/listings")

	// Browsing is public; listing and delisting require an account.
	listings.Get("/donations", c.ListingHandler.GetDonationListings)
	listings.Get("/marketplace", c.ListingHandler.GetMarketplaceListings)
	listings.Get("/:id", c.ListingHandler.GetListingByID)

	listings.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.ListingHandler.CreateListing)
	listings.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.ListingHandler.DeleteListing)
}

func (c *Config) Transactions() {
	transactions := c.App.Group("/api/v1/transactions", c.Middleware.AuthMiddleware(c.JWTService))

	transactions.Post("", c.TransactionHandler.CreateTransaction)
	transactions.Get("/:id", c.TransactionHandler.GetTransactionByID)
	transactions.Post("/confirm/:id", c.TransactionHandler.ConfirmTransaction)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
	c.App.Post("/webhook/midtrans", c.PaymentHandler.MidtransWebhook)
}
