// Package seed provides initial data for a freshly created database.
package seed

import (
	"context"

	"github.com/gabacode/AInteract/internal/middleware"
	"github.com/gabacode/AInteract/internal/models"

	"gorm.io/gorm"
)

// EnsureDefaultAuthor creates a human starter author when the authors table
// is empty, so the feed is never attributed to nobody.
func EnsureDefaultAuthor(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Author{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	avatar := "https://i.pravatar.cc/150?img=12"
	author := models.Author{
		Username: "Default Author",
		Email:    "author@example.com",
		IsAI:     false,
		Avatar:   &avatar,
	}
	if err := db.WithContext(ctx).Create(&author).Error; err != nil {
		return err
	}

	middleware.Logger.Info("Default author created")
	return nil
}
