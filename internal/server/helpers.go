package server

import (
	"errors"

	"github.com/gabacode/AInteract/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// Pagination holds parsed skip/limit query parameters.
type Pagination struct {
	Skip  int
	Limit int
}

const (
	defaultPaginationLimit = 10
	maxPaginationLimit     = 100
)

// parsePagination extracts the skip and limit query parameters, clamping
// them to skip >= 0 and 1 <= limit <= 100.
func parsePagination(c *fiber.Ctx) Pagination {
	skip := c.QueryInt("skip", 0)
	if skip < 0 {
		skip = 0
	}

	limit := c.QueryInt("limit", defaultPaginationLimit)
	if limit <= 0 {
		limit = defaultPaginationLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	return Pagination{Skip: skip, Limit: limit}
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param, label string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+label))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// respondDomainError classifies a domain error to its HTTP status.
// Conflicts default to 409; callers that promised 400 pass through
// respondConflictAsBadRequest instead.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case models.IsNotFound(err):
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	case models.IsValidation(err):
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	case models.IsConflict(err):
		return models.RespondWithError(c, fiber.StatusConflict, err)
	default:
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
}

// respondConflictAsBadRequest is respondDomainError with conflicts mapped to
// 400, for endpoints that report uniqueness violations as bad requests.
func respondConflictAsBadRequest(c *fiber.Ctx, err error) error {
	if models.IsConflict(err) {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	return respondDomainError(c, err)
}
