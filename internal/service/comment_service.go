package service

import (
	"context"
	"errors"
	"time"

	"inkwell/internal/auth"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"

	"gorm.io/gorm"
)

const maxCommentLen = 10000

// CommentService handles comment submission, listing and author-gated deletion.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	now         func() time.Time
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		now:         time.Now,
	}
}

// Create stores a comment on the given post, stamped with the submission
// time. Anonymous principals are rejected before anything is written.
func (s *CommentService) Create(ctx context.Context, principal *models.User, postID uint, content string) (*models.Comment, error) {
	if !auth.CanComment(principal) {
		return nil, models.NewUnauthorizedError("Please log in to comment")
	}

	form := validation.CommentForm{Content: content}
	if err := form.Validate(); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if len(content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("post", postID)
		}
		return nil, models.NewInternalError(err)
	}

	comment := &models.Comment{
		Content:    content,
		PostedTime: s.now(),
		UserID:     principal.ID,
		PostID:     postID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}

	return comment, nil
}

// ListForPost returns the post's comments, oldest first, authors loaded.
func (s *CommentService) ListForPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

// Delete removes a comment. Only its author may delete it.
func (s *CommentService) Delete(ctx context.Context, principal *models.User, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("comment", commentID)
	}
	if err != nil {
		return models.NewInternalError(err)
	}

	if !auth.IsCommentOwner(principal, comment) {
		return models.NewUnauthorizedError("You can only delete your own comments")
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
