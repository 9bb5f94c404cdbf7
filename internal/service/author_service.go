// Package service implements the business logic between handlers and repositories.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabacode/AInteract/internal/models"
	"github.com/gabacode/AInteract/internal/repository"
	"github.com/gabacode/AInteract/internal/validation"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// PersonalityInput is the nested personality payload accepted on author
// creation and on the personality endpoints.
type PersonalityInput struct {
	Hobbies      []string            `json:"hobbies"`
	Directives   []models.Directive  `json:"directives"`
	CoreMemories []models.CoreMemory `json:"core_memories"`
}

// newPersonality builds the entity from input, defaulting omitted list
// fields to empty so they store and serialize as [] rather than null.
func newPersonality(authorID uint, in PersonalityInput) *models.Personality {
	p := &models.Personality{
		ID:           authorID,
		Hobbies:      pq.StringArray(in.Hobbies),
		Directives:   in.Directives,
		CoreMemories: in.CoreMemories,
	}
	if p.Hobbies == nil {
		p.Hobbies = pq.StringArray{}
	}
	if p.Directives == nil {
		p.Directives = models.DirectiveList{}
	}
	if p.CoreMemories == nil {
		p.CoreMemories = models.CoreMemoryList{}
	}
	return p
}

// CreateAuthorInput carries the fields a client supplies for a new author.
type CreateAuthorInput struct {
	Username    string            `json:"username"`
	Email       string            `json:"email"`
	IsAI        bool              `json:"is_ai"`
	Avatar      string            `json:"avatar"`
	Personality *PersonalityInput `json:"personality"`
}

type AuthorService struct {
	authorRepo repository.AuthorRepository
}

// NewAuthorService creates a new AuthorService
func NewAuthorService(authorRepo repository.AuthorRepository) *AuthorService {
	return &AuthorService{authorRepo: authorRepo}
}

// CreateAuthor validates the input and inserts the author, together with its
// nested personality when one is supplied. The pair is one atomic unit: a
// personality insert failure rolls the author back.
func (s *AuthorService) CreateAuthor(ctx context.Context, in CreateAuthorInput) (*models.Author, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.Personality != nil {
		if err := validatePersonalityInput(*in.Personality); err != nil {
			return nil, err
		}
	}

	if _, err := s.authorRepo.GetByEmail(ctx, in.Email); err == nil {
		return nil, models.NewConflictError(
			fmt.Sprintf("An author with the email %s already exists", in.Email))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewInternalError(err)
	}

	author := &models.Author{
		Username: in.Username,
		Email:    in.Email,
		IsAI:     in.IsAI,
	}
	if in.Avatar != "" {
		author.Avatar = &in.Avatar
	}
	if in.Personality != nil {
		author.Personality = newPersonality(0, *in.Personality)
	}

	if err := s.authorRepo.Create(ctx, author); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("An author with that username or email already exists")
		}
		return nil, models.NewInternalError(err)
	}

	return author, nil
}

// ListAuthors returns one page of authors plus the total row count.
func (s *AuthorService) ListAuthors(ctx context.Context, skip, limit int) ([]*models.Author, int64, error) {
	count, err := s.authorRepo.Count(ctx)
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	authors, err := s.authorRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return authors, count, nil
}

// GetAuthor fetches one author by id.
func (s *AuthorService) GetAuthor(ctx context.Context, id uint) (*models.Author, error) {
	author, err := s.authorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Author", id)
		}
		return nil, models.NewInternalError(err)
	}
	return author, nil
}

// validatePersonalityInput enforces the structural invariants on the
// personality list fields.
func validatePersonalityInput(in PersonalityInput) error {
	for i, d := range in.Directives {
		if d.Task == "" {
			return models.NewValidationError(fmt.Sprintf("directives[%d]: task is required", i))
		}
		if d.Priority == "" {
			return models.NewValidationError(fmt.Sprintf("directives[%d]: priority is required", i))
		}
	}
	for i, m := range in.CoreMemories {
		if m.Memory == "" {
			return models.NewValidationError(fmt.Sprintf("core_memories[%d]: memory is required", i))
		}
		if m.Importance == "" {
			return models.NewValidationError(fmt.Sprintf("core_memories[%d]: importance is required", i))
		}
	}
	return nil
}
