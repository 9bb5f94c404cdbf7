package service

import (
	"context"
	"errors"

	"github.com/gabacode/AInteract/internal/models"
	"github.com/gabacode/AInteract/internal/repository"

	"gorm.io/gorm"
)

type PersonalityService struct {
	personalityRepo repository.PersonalityRepository
	authorRepo      repository.AuthorRepository
}

// NewPersonalityService creates a new PersonalityService
func NewPersonalityService(
	personalityRepo repository.PersonalityRepository,
	authorRepo repository.AuthorRepository,
) *PersonalityService {
	return &PersonalityService{
		personalityRepo: personalityRepo,
		authorRepo:      authorRepo,
	}
}

// CreatePersonality attaches a personality to an existing author. At most
// one personality may exist per author.
func (s *PersonalityService) CreatePersonality(ctx context.Context, authorID uint, in PersonalityInput) (*models.Personality, error) {
	if err := validatePersonalityInput(in); err != nil {
		return nil, err
	}

	if _, err := s.authorRepo.GetByID(ctx, authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Author", authorID)
		}
		return nil, models.NewInternalError(err)
	}

	exists, err := s.personalityRepo.Exists(ctx, authorID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if exists {
		return nil, models.NewConflictError("A personality already exists for this author")
	}

	personality := newPersonality(authorID, in)
	if err := s.personalityRepo.Create(ctx, personality); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("A personality already exists for this author")
		}
		return nil, models.NewInternalError(err)
	}

	return s.GetPersonality(ctx, authorID)
}

// GetPersonality fetches the personality attached to the given author.
func (s *PersonalityService) GetPersonality(ctx context.Context, authorID uint) (*models.Personality, error) {
	personality, err := s.personalityRepo.GetByAuthorID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Personality", authorID)
		}
		return nil, models.NewInternalError(err)
	}
	return personality, nil
}

// UpdatePersonality replaces hobbies, directives, and core memories wholesale.
func (s *PersonalityService) UpdatePersonality(ctx context.Context, authorID uint, in PersonalityInput) (*models.Personality, error) {
	if err := validatePersonalityInput(in); err != nil {
		return nil, err
	}

	exists, err := s.personalityRepo.Exists(ctx, authorID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !exists {
		return nil, models.NewNotFoundError("Personality", authorID)
	}

	personality := newPersonality(authorID, in)
	if err := s.personalityRepo.Update(ctx, personality); err != nil {
		return nil, models.NewInternalError(err)
	}

	return s.GetPersonality(ctx, authorID)
}

// DeletePersonality detaches and removes the author's personality.
func (s *PersonalityService) DeletePersonality(ctx context.Context, authorID uint) error {
	rows, err := s.personalityRepo.Delete(ctx, authorID)
	if err != nil {
		return models.NewInternalError(err)
	}
	if rows == 0 {
		return models.NewNotFoundError("Personality", authorID)
	}
	return nil
}
