package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gabacode/AInteract/internal/middleware"
	"github.com/gabacode/AInteract/internal/models"
	"github.com/gabacode/AInteract/internal/repository"
	"github.com/gabacode/AInteract/internal/validation"

	"gorm.io/gorm"
)

// PostPublisher pushes a post-created notification onto the side channel.
type PostPublisher interface {
	PublishNewPost(ctx context.Context, postID uint) error
}

// CreatePostInput carries the fields a client supplies for a new post.
type CreatePostInput struct {
	Content  string `json:"content"`
	AuthorID uint   `json:"author_id"`
}

type PostService struct {
	postRepo   repository.PostRepository
	authorRepo repository.AuthorRepository
	publisher  PostPublisher
}

// NewPostService creates a new PostService
func NewPostService(postRepo repository.PostRepository, authorRepo repository.AuthorRepository, publisher PostPublisher) *PostService {
	return &PostService{
		postRepo:   postRepo,
		authorRepo: authorRepo,
		publisher:  publisher,
	}
}

// CreatePost validates the content, checks the author exists, and inserts
// the post. The persisted record is returned with its author embedded and a
// notification is published on the side channel, fire-and-forget.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validation.ValidateContent(in.Content, models.PostContentMaxLen); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if _, err := s.authorRepo.GetByID(ctx, in.AuthorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Author", in.AuthorID)
		}
		return nil, models.NewInternalError(err)
	}

	post := &models.Post{Content: in.Content, AuthorID: in.AuthorID}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}

	created, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishNewPost(ctx, created.ID); err != nil {
			middleware.Logger.WarnContext(ctx, "failed to publish new post notification",
				slog.Any("post_id", created.ID), slog.String("error", err.Error()))
		}
	}

	return created, nil
}

// ListPosts returns one page of posts, newest first, plus the total row count.
func (s *PostService) ListPosts(ctx context.Context, skip, limit int) ([]*models.Post, int64, error) {
	count, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	posts, err := s.postRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return posts, count, nil
}

// DeletePost removes the post and, via the storage cascade, its comments.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	rows, err := s.postRepo.Delete(ctx, id)
	if err != nil {
		return models.NewInternalError(err)
	}
	if rows == 0 {
		return models.NewNotFoundError("Post", id)
	}
	return nil
}
