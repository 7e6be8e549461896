package handlers

import (
	"errors"

	"github.com/jinlee1703/gifthub-was-cicd/internal/core/domain"
	"github.com/jinlee1703/gifthub-was-cicd/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// mapDomainError translates domain error kinds to HTTP responses. Specific
// errors inherit the status of the kind they wrap, so "already used" comes
// out as 404 and "insufficient balance"/"expired" as 409.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidAuthentication):
		return response.Unauthorized(c, err.Error())
	case errors.Is(err, domain.ErrAccessDenied):
		return response.Forbidden(c, err.Error())
	case errors.Is(err, domain.ErrNotFoundResource):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrExistResource):
		return response.Conflict(c, err.Error())
	default:
		return response.InternalServerError(c, "Internal server error")
	}
}
