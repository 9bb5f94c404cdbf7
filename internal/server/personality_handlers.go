package server

import (
	"github.com/gabacode/AInteract/internal/models"
	"github.com/gabacode/AInteract/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPersonality handles GET /personalities/:authorId
func (s *Server) GetPersonality(c *fiber.Ctx) error {
	ctx := c.UserContext()
	authorID, err := s.parseID(c, "authorId", "author ID")
	if err != nil {
		return nil
	}

	personality, err := s.personalityService.GetPersonality(ctx, authorID)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(personality)
}

// CreatePersonality handles POST /personalities/:authorId
func (s *Server) CreatePersonality(c *fiber.Ctx) error {
	ctx := c.UserContext()
	authorID, err := s.parseID(c, "authorId", "author ID")
	if err != nil {
		return nil
	}

	var req service.PersonalityInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	personality, err := s.personalityService.CreatePersonality(ctx, authorID, req)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(personality)
}

// UpdatePersonality handles PUT /personalities/:authorId, replacing the
// hobbies, directives, and core memories wholesale.
func (s *Server) UpdatePersonality(c *fiber.Ctx) error {
	ctx := c.UserContext()
	authorID, err := s.parseID(c, "authorId", "author ID")
	if err != nil {
		return nil
	}

	var req service.PersonalityInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	personality, err := s.personalityService.UpdatePersonality(ctx, authorID, req)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(personality)
}

// DeletePersonality handles DELETE /personalities/:authorId
func (s *Server) DeletePersonality(c *fiber.Ctx) error {
	ctx := c.UserContext()
	authorID, err := s.parseID(c, "authorId", "author ID")
	if err != nil {
		return nil
	}

	if err := s.personalityService.DeletePersonality(ctx, authorID); err != nil {
		return respondDomainError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
