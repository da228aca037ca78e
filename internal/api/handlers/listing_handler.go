package handlers

import (
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/domain"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/internal/api/presenters"
	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/pkg/listing"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ListingHandler interface {
		CreateListing(c *fiber.Ctx) error
		GetDonationListings(c *fiber.Ctx) error
		GetMarketplaceListings(c *fiber.Ctx) error
		GetListingByID(c *fiber.Ctx) error
		DeleteListing(c *fiber.Ctx) error
	}

	listingHandler struct {
		listingService listing.ListingService
		validator      *validator.Validate
	}
)

func NewListingHandler(listingService listing.ListingService, validator *validator.Validate) ListingHandler {
	return &listingHandler{
		listingService: listingService,
		validator:      validator,
	}
}

func (h *listingHandler) CreateListing(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	req := new(domain.CreateListingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	// Image is optional multipart content.
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateListing, err)
	}

	res, err := h.listingService.CreateListing(c.Context(), *req, userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateListing, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateListing)
}

func (h *listingHandler) GetDonationListings(c *fiber.Ctx) error {
	items, err := h.listingService.GetListingsByKind(c.Context(), domain.ListingKindDonation)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetListings, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetListings)
}

func (h *listingHandler) GetMarketplaceListings(c *fiber.Ctx) error {
	items, err := h.listingService.GetListingsByKind(c.Context(), domain.ListingKindMarketplace)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetListings, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetListings)
}

func (h *listingHandler) GetListingByID(c *fiber.Ctx) error {
	itemID := c.Params("id")

	item, err := h.listingService.GetListingByID(c.Context(), itemID)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetListing, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetListing)
}

func (h *listingHandler) DeleteListing(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.listingService.DeleteListing(c.Context(), itemID); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteListing, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"id": itemID}, fiber.StatusOK, domain.MessageSuccessDeleteListing)
}
