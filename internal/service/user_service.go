package service

import (
	"context"
	"errors"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"

	"gorm.io/gorm"
)

// UserService backs the admin panel: listing accounts and editing profiles.
// Admin gating happens in the route guards; the service assumes an already
// authorized caller.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateUserInput carries the edit-user form fields.
type UpdateUserInput struct {
	UserID    uint
	Email     string
	Username  string
	FirstName string
	LastName  string
	IsAdmin   int
}

// List returns every registered account for the admin panel.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// Get returns a single account.
func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("user", id)
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return user, nil
}

// Update edits a user's profile and admin flag.
func (s *UserService) Update(ctx context.Context, in UpdateUserInput) (*models.User, error) {
	user, err := s.Get(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	form := validation.UserEditForm{
		Email:     in.Email,
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		IsAdmin:   in.IsAdmin,
	}
	if err := form.Validate(); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	user.Email = in.Email
	user.Username = in.Username
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.IsAdmin = in.IsAdmin

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("That email or username is already taken")
		}
		return nil, models.NewInternalError(err)
	}

	return user, nil
}
