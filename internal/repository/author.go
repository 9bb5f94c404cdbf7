// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"github.com/gabacode/AInteract/internal/models"

	"gorm.io/gorm"
)

// AuthorRepository defines the interface for author data operations
type AuthorRepository interface {
	Create(ctx context.Context, author *models.Author) error
	GetByID(ctx context.Context, id uint) (*models.Author, error)
	GetByEmail(ctx context.Context, email string) (*models.Author, error)
	List(ctx context.Context, skip, limit int) ([]*models.Author, error)
	Count(ctx context.Context) (int64, error)
}

type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository creates a new author repository
func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

// Create inserts the author and, when a nested personality is attached,
// inserts it in the same transaction via the association.
func (r *authorRepository) Create(ctx context.Context, author *models.Author) error {
	return r.db.WithContext(ctx).Create(author).Error
}

func (r *authorRepository) GetByID(ctx context.Context, id uint) (*models.Author, error) {
	var author models.Author
	if err := r.db.WithContext(ctx).First(&author, id).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *authorRepository) GetByEmail(ctx context.Context, email string) (*models.Author, error) {
	var author models.Author
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&author).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

// List returns authors in insertion order.
func (r *authorRepository) List(ctx context.Context, skip, limit int) ([]*models.Author, error) {
	var authors []*models.Author
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&authors).Error
	return authors, err
}

func (r *authorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Author{}).Count(&count).Error
	return count, err
}
