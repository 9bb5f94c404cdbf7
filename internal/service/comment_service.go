package service

import (
	"context"
	"errors"

	"github.com/gabacode/AInteract/internal/models"
	"github.com/gabacode/AInteract/internal/repository"
	"github.com/gabacode/AInteract/internal/validation"

	"gorm.io/gorm"
)

// CreateCommentInput carries the fields a client supplies for a new comment.
type CreateCommentInput struct {
	PostID   uint
	AuthorID uint
	Content  string
}

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	authorRepo  repository.AuthorRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	authorRepo repository.AuthorRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		authorRepo:  authorRepo,
	}
}

// CreateComment validates the content and both referenced entities before
// inserting. The persisted record is returned with its author embedded.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if err := validation.ValidateContent(in.Content, models.CommentContentMaxLen); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", in.PostID)
		}
		return nil, models.NewInternalError(err)
	}
	if _, err := s.authorRepo.GetByID(ctx, in.AuthorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Author", in.AuthorID)
		}
		return nil, models.NewInternalError(err)
	}

	comment := &models.Comment{Content: in.Content, PostID: in.PostID, AuthorID: in.AuthorID}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}

	created, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return created, nil
}

// ListComments returns all comments for an existing post, oldest first.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, models.NewInternalError(err)
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

// DeleteComment removes the comment only when it exists under that specific post.
func (s *CommentService) DeleteComment(ctx context.Context, postID, commentID uint) error {
	rows, err := s.commentRepo.DeleteByPostAndID(ctx, postID, commentID)
	if err != nil {
		return models.NewInternalError(err)
	}
	if rows == 0 {
		return models.NewNotFoundError("Comment", commentID)
	}
	return nil
}
