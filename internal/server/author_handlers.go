package server

import (
	"github.com/gabacode/AInteract/internal/models"
	"github.com/gabacode/AInteract/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListAuthors handles GET /authors
func (s *Server) ListAuthors(c *fiber.Ctx) error {
	ctx := c.UserContext()
	page := parsePagination(c)

	authors, count, err := s.authorService.ListAuthors(ctx, page.Skip, page.Limit)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(models.NewPaginatedResponse("/authors", page.Skip, page.Limit, count, authors))
}

// GetAuthor handles GET /authors/:id
func (s *Server) GetAuthor(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id", "author ID")
	if err != nil {
		return nil
	}

	author, err := s.authorService.GetAuthor(ctx, id)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(author)
}

// CreateAuthor handles POST /authors. A duplicate email reports 400, the
// historical behavior of this endpoint.
func (s *Server) CreateAuthor(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req service.CreateAuthorInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	author, err := s.authorService.CreateAuthor(ctx, req)
	if err != nil {
		return respondConflictAsBadRequest(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(author)
}
