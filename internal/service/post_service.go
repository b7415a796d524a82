package service

import (
	"context"
	"errors"
	"time"

	"inkwell/internal/auth"
	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"

	"gorm.io/gorm"
)

// displayDateLayout is the frozen byline format ("March 15, 2025").
const displayDateLayout = "January 2, 2006"

// PostService handles post listing and author-gated mutations.
type PostService struct {
	postRepo  repository.PostRepository
	postIndex *cache.PostIndex
	now       func() time.Time
}

// NewPostService creates a new PostService. postIndex may be nil when the
// cache is disabled.
func NewPostService(postRepo repository.PostRepository, postIndex *cache.PostIndex) *PostService {
	return &PostService{
		postRepo:  postRepo,
		postIndex: postIndex,
		now:       time.Now,
	}
}

// CreatePostInput carries the new-post form fields plus the author.
type CreatePostInput struct {
	Principal *models.User
	Title     string
	Subtitle  string
	ImageURL  string
	Body      string
}

// UpdatePostInput carries the edit-post form fields plus the acting principal.
type UpdatePostInput struct {
	Principal *models.User
	PostID    uint
	Title     string
	Subtitle  string
	ImageURL  string
	Body      string
}

// List returns every post, newest first, through the read cache when warm.
func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	if posts, ok := s.postIndex.Get(ctx); ok {
		return posts, nil
	}

	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	s.postIndex.Set(ctx, posts)
	return posts, nil
}

// Get returns a single post with its author loaded.
func (s *PostService) Get(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("post", id)
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

// Create stores a new post authored by the principal. The byline date is
// frozen at creation time.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if !auth.IsAuthenticated(in.Principal) {
		return nil, models.NewUnauthorizedError("Please log in to publish a post")
	}

	form := validation.PostForm{
		Title:    in.Title,
		Subtitle: in.Subtitle,
		ImageURL: in.ImageURL,
		Body:     in.Body,
	}
	if err := form.Validate(); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post := &models.Post{
		Title:    in.Title,
		Subtitle: in.Subtitle,
		Body:     in.Body,
		ImageURL: in.ImageURL,
		Date:     s.now().Format(displayDateLayout),
		UserID:   in.Principal.ID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("A post with that title already exists")
		}
		return nil, models.NewInternalError(err)
	}

	s.postIndex.Invalidate(ctx)
	return post, nil
}

// Update edits an existing post. Only the author may edit.
func (s *PostService) Update(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.Get(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if !auth.IsPostOwner(in.Principal, post) {
		return nil, models.NewUnauthorizedError("You can only edit your own posts")
	}

	form := validation.PostForm{
		Title:    in.Title,
		Subtitle: in.Subtitle,
		ImageURL: in.ImageURL,
		Body:     in.Body,
	}
	if err := form.Validate(); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post.Title = in.Title
	post.Subtitle = in.Subtitle
	post.ImageURL = in.ImageURL
	post.Body = in.Body

	if err := s.postRepo.Update(ctx, post); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("A post with that title already exists")
		}
		return nil, models.NewInternalError(err)
	}

	s.postIndex.Invalidate(ctx)
	return post, nil
}

// Delete removes a post. Ownership is checked against the post's author ID.
func (s *PostService) Delete(ctx context.Context, principal *models.User, postID uint) error {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}

	if !auth.IsPostOwner(principal, post) {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return models.NewInternalError(err)
	}

	s.postIndex.Invalidate(ctx)
	return nil
}
