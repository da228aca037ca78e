package handlers

import (
	"errors"

	"github.com/KartikGupta2004/UnpaidLabour-AlgoForge/domain"
	"github.com/gofiber/fiber/v2"
)

// errorStatus maps service errors onto HTTP status codes. Anything not
// recognized is treated as a bad request; infrastructure failures are the
// handler's responsibility to mask.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrListerNotFound),
		errors.Is(err, domain.ErrPartyNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotTransactionParty):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}
