package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/gabacode/AInteract/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// personalityRepoStub is a stub for repository.PersonalityRepository.
type personalityRepoStub struct {
	createFn        func(context.Context, *models.Personality) error
	getByAuthorIDFn func(context.Context, uint) (*models.Personality, error)
	existsFn        func(context.Context, uint) (bool, error)
	updateFn        func(context.Context, *models.Personality) error
	deleteFn        func(context.Context, uint) (int64, error)
}

func (s *personalityRepoStub) Create(ctx context.Context, p *models.Personality) error {
	return s.createFn(ctx, p)
}
func (s *personalityRepoStub) GetByAuthorID(ctx context.Context, authorID uint) (*models.Personality, error) {
	return s.getByAuthorIDFn(ctx, authorID)
}
func (s *personalityRepoStub) Exists(ctx context.Context, authorID uint) (bool, error) {
	return s.existsFn(ctx, authorID)
}
func (s *personalityRepoStub) Update(ctx context.Context, p *models.Personality) error {
	return s.updateFn(ctx, p)
}
func (s *personalityRepoStub) Delete(ctx context.Context, authorID uint) (int64, error) {
	return s.deleteFn(ctx, authorID)
}

func noopPersonalityRepo() *personalityRepoStub {
	return &personalityRepoStub{
		createFn: func(_ context.Context, _ *models.Personality) error { return nil },
		getByAuthorIDFn: func(_ context.Context, authorID uint) (*models.Personality, error) {
			return &models.Personality{ID: authorID}, nil
		},
		existsFn: func(_ context.Context, _ uint) (bool, error) { return false, nil },
		updateFn: func(_ context.Context, _ *models.Personality) error { return nil },
		deleteFn: func(_ context.Context, _ uint) (int64, error) { return 1, nil },
	}
}

func TestPersonalityService_CreatePersonality(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		svc := NewPersonalityService(noopPersonalityRepo(), noopAuthorRepo())
		p, err := svc.CreatePersonality(context.Background(), 1, PersonalityInput{
			Hobbies:    []string{"astronomy"},
			Directives: []models.Directive{{Task: "observe", Priority: "high"}},
		})
		require.NoError(t, err)
		assert.Equal(t, uint(1), p.ID)
	})

	t.Run("omitted list fields default to empty not null", func(t *testing.T) {
		t.Parallel()
		var created *models.Personality
		repo := noopPersonalityRepo()
		repo.createFn = func(_ context.Context, p *models.Personality) error {
			created = p
			return nil
		}
		svc := NewPersonalityService(repo, noopAuthorRepo())
		_, err := svc.CreatePersonality(context.Background(), 1, PersonalityInput{
			Directives: []models.Directive{{Task: "observe", Priority: "high"}},
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.NotNil(t, created.Hobbies)
		assert.NotNil(t, created.CoreMemories)

		buf, err := json.Marshal(created)
		require.NoError(t, err)
		assert.Contains(t, string(buf), `"hobbies":[]`)
		assert.Contains(t, string(buf), `"core_memories":[]`)
	})

	t.Run("directive missing task", func(t *testing.T) {
		t.Parallel()
		svc := NewPersonalityService(noopPersonalityRepo(), noopAuthorRepo())
		_, err := svc.CreatePersonality(context.Background(), 1, PersonalityInput{
			Directives: []models.Directive{{Priority: "high"}},
		})
		assertValidationError(t, err)
	})

	t.Run("author missing", func(t *testing.T) {
		t.Parallel()
		authorRepo := noopAuthorRepo()
		authorRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Author, error) {
			return nil, gorm.ErrRecordNotFound
		}
		svc := NewPersonalityService(noopPersonalityRepo(), authorRepo)
		_, err := svc.CreatePersonality(context.Background(), 99, PersonalityInput{})
		assertNotFoundError(t, err)
	})

	t.Run("second personality conflicts", func(t *testing.T) {
		t.Parallel()
		repo := noopPersonalityRepo()
		repo.existsFn = func(_ context.Context, _ uint) (bool, error) { return true, nil }
		svc := NewPersonalityService(repo, noopAuthorRepo())
		_, err := svc.CreatePersonality(context.Background(), 1, PersonalityInput{})
		assertConflictError(t, err)
	})

	t.Run("insert race maps to conflict", func(t *testing.T) {
		t.Parallel()
		repo := noopPersonalityRepo()
		repo.createFn = func(_ context.Context, _ *models.Personality) error {
			return gorm.ErrDuplicatedKey
		}
		svc := NewPersonalityService(repo, noopAuthorRepo())
		_, err := svc.CreatePersonality(context.Background(), 1, PersonalityInput{})
		assertConflictError(t, err)
	})
}

func TestPersonalityService_GetPersonality(t *testing.T) {
	t.Parallel()

	repo := noopPersonalityRepo()
	repo.getByAuthorIDFn = func(_ context.Context, _ uint) (*models.Personality, error) {
		return nil, gorm.ErrRecordNotFound
	}
	svc := NewPersonalityService(repo, noopAuthorRepo())

	_, err := svc.GetPersonality(context.Background(), 4)
	assertNotFoundError(t, err)
	assert.Contains(t, err.Error(), "Personality with ID 4")
}

func TestPersonalityService_UpdatePersonality(t *testing.T) {
	t.Parallel()

	t.Run("replaces fields wholesale", func(t *testing.T) {
		t.Parallel()
		var updated *models.Personality
		repo := noopPersonalityRepo()
		repo.existsFn = func(_ context.Context, _ uint) (bool, error) { return true, nil }
		repo.updateFn = func(_ context.Context, p *models.Personality) error {
			updated = p
			return nil
		}
		svc := NewPersonalityService(repo, noopAuthorRepo())
		_, err := svc.UpdatePersonality(context.Background(), 1, PersonalityInput{
			Hobbies: []string{"origami"},
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, []string{"origami"}, []string(updated.Hobbies))
		assert.Empty(t, updated.Directives)
		assert.NotNil(t, updated.Directives)
		assert.NotNil(t, updated.CoreMemories)
	})

	t.Run("missing personality", func(t *testing.T) {
		t.Parallel()
		svc := NewPersonalityService(noopPersonalityRepo(), noopAuthorRepo())
		_, err := svc.UpdatePersonality(context.Background(), 1, PersonalityInput{})
		assertNotFoundError(t, err)
	})

	t.Run("invalid core memory", func(t *testing.T) {
		t.Parallel()
		svc := NewPersonalityService(noopPersonalityRepo(), noopAuthorRepo())
		_, err := svc.UpdatePersonality(context.Background(), 1, PersonalityInput{
			CoreMemories: []models.CoreMemory{{Importance: "high"}},
		})
		assertValidationError(t, err)
	})
}

func TestPersonalityService_DeletePersonality(t *testing.T) {
	t.Parallel()

	t.Run("existing", func(t *testing.T) {
		t.Parallel()
		svc := NewPersonalityService(noopPersonalityRepo(), noopAuthorRepo())
		require.NoError(t, svc.DeletePersonality(context.Background(), 1))
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		repo := noopPersonalityRepo()
		repo.deleteFn = func(_ context.Context, _ uint) (int64, error) { return 0, nil }
		svc := NewPersonalityService(repo, noopAuthorRepo())
		err := svc.DeletePersonality(context.Background(), 1)
		assertNotFoundError(t, err)
	})
}
