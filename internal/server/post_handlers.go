package server

import (
	"github.com/gabacode/AInteract/internal/models"
	"github.com/gabacode/AInteract/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListPosts handles GET /posts
func (s *Server) ListPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()
	page := parsePagination(c)

	posts, count, err := s.postService.ListPosts(ctx, page.Skip, page.Limit)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(models.NewPaginatedResponse("/posts", page.Skip, page.Limit, count, posts))
}

// CreatePost handles POST /posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req service.CreatePostInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(ctx, req)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// DeletePost handles DELETE /posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id", "post ID")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(ctx, id); err != nil {
		return respondDomainError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
