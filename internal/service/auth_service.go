// Package service implements the application's domain rules on top of the
// repository layer. Services return *models.AppError values; handlers decide
// how each code renders.
package service

import (
	"context"
	"errors"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration and credential checks.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Email           string
	Username        string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
}

// LoginInput carries the login form fields.
type LoginInput struct {
	Email    string
	Password string
}

// Register validates the form, hashes the password and stores the account.
// A uniqueness violation on email or username surfaces as a conflict error
// with no partial write.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	form := validation.RegistrationForm{
		Email:           in.Email,
		Username:        in.Username,
		Password:        in.Password,
		PasswordConfirm: in.PasswordConfirm,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
	}
	if err := form.Validate(); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Email:     in.Email,
		Username:  in.Username,
		Password:  string(hashed),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		IsAdmin:   models.AdminFlagOff,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflictError("That user is already registered, please try and login")
		}
		return nil, models.NewInternalError(err)
	}

	return user, nil
}

// Login verifies credentials. An unknown email and a wrong password are
// distinct failures so the handlers can steer the visitor to the right page.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	form := validation.LoginForm{Email: in.Email, Password: in.Password}
	if err := form.Validate(); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if user == nil {
		return nil, models.NewNotFoundError("user", in.Email)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid username or password")
	}

	return user, nil
}
