package repository

import (
	"context"

	"github.com/gabacode/AInteract/internal/models"

	"gorm.io/gorm"
)

// PersonalityRepository defines the interface for personality data operations.
// Personalities are keyed by their owning author's id.
type PersonalityRepository interface {
	Create(ctx context.Context, personality *models.Personality) error
	GetByAuthorID(ctx context.Context, authorID uint) (*models.Personality, error)
	Exists(ctx context.Context, authorID uint) (bool, error)
	Update(ctx context.Context, personality *models.Personality) error
	Delete(ctx context.Context, authorID uint) (int64, error)
}

type personalityRepository struct {
	db *gorm.DB
}

// NewPersonalityRepository creates a new PersonalityRepository
func NewPersonalityRepository(db *gorm.DB) PersonalityRepository {
	return &personalityRepository{db: db}
}

func (r *personalityRepository) Create(ctx context.Context, personality *models.Personality) error {
	return r.db.WithContext(ctx).Create(personality).Error
}

func (r *personalityRepository) GetByAuthorID(ctx context.Context, authorID uint) (*models.Personality, error) {
	var personality models.Personality
	if err := r.db.WithContext(ctx).Preload("Author").First(&personality, authorID).Error; err != nil {
		return nil, err
	}
	return &personality, nil
}

func (r *personalityRepository) Exists(ctx context.Context, authorID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Personality{}).
		Where("id = ?", authorID).
		Count(&count).Error
	return count > 0, err
}

// Update performs a whole-record replacement of the list columns.
func (r *personalityRepository) Update(ctx context.Context, personality *models.Personality) error {
	return r.db.WithContext(ctx).
		Model(&models.Personality{}).
		Where("id = ?", personality.ID).
		Updates(map[string]interface{}{
			"hobbies":       personality.Hobbies,
			"directives":    personality.Directives,
			"core_memories": personality.CoreMemories,
		}).Error
}

// Delete removes the personality; its memories fall with it via the
// storage-level cascade. Returns the number of rows affected.
func (r *personalityRepository) Delete(ctx context.Context, authorID uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Personality{}, authorID)
	return result.RowsAffected, result.Error
}
