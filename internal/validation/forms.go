// Package validation provides input validation for the application's forms.
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	return nil
}

// ValidateUsername checks if a username meets requirements
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}
	if len(username) > 30 {
		return fmt.Errorf("username must not exceed 30 characters")
	}
	if !regexp.MustCompile(`^[a-zA-Z0-9_-]+$`).MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, underscores, and hyphens")
	}
	return nil
}

// ValidatePassword checks minimum credential strength at registration.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}
	return nil
}

// ValidateImageURL checks the header-image field on the post form.
func ValidateImageURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("image URL must be a valid absolute URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("image URL must use http or https")
	}
	return nil
}

// RegistrationForm mirrors the fields submitted by the register page.
type RegistrationForm struct {
	Email           string
	Username        string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
}

// Validate reports the first problem with the registration form, if any.
func (f *RegistrationForm) Validate() error {
	if f.Email == "" || f.Username == "" || f.Password == "" ||
		f.FirstName == "" || f.LastName == "" {
		return fmt.Errorf("all fields are required")
	}
	if err := ValidateEmail(f.Email); err != nil {
		return err
	}
	if err := ValidateUsername(f.Username); err != nil {
		return err
	}
	if err := ValidatePassword(f.Password); err != nil {
		return err
	}
	if f.Password != f.PasswordConfirm {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}

// LoginForm mirrors the fields submitted by the login page.
type LoginForm struct {
	Email    string
	Password string
}

func (f *LoginForm) Validate() error {
	if f.Email == "" || f.Password == "" {
		return fmt.Errorf("email and password are required")
	}
	return nil
}

// PostForm mirrors the fields shared by the new-post and edit-post pages.
type PostForm struct {
	Title    string
	Subtitle string
	ImageURL string
	Body     string
}

func (f *PostForm) Validate() error {
	if f.Title == "" {
		return fmt.Errorf("title is required")
	}
	if f.Subtitle == "" {
		return fmt.Errorf("subtitle is required")
	}
	if strings.TrimSpace(f.Body) == "" {
		return fmt.Errorf("blog content is required")
	}
	if f.ImageURL == "" {
		return fmt.Errorf("image URL is required")
	}
	return ValidateImageURL(f.ImageURL)
}

// CommentForm mirrors the comment box on the post page.
type CommentForm struct {
	Content string
}

func (f *CommentForm) Validate() error {
	if strings.TrimSpace(f.Content) == "" {
		return fmt.Errorf("comment is required")
	}
	return nil
}

// UserEditForm mirrors the admin edit-user page.
type UserEditForm struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	IsAdmin   int
}

func (f *UserEditForm) Validate() error {
	if f.Email == "" || f.Username == "" || f.FirstName == "" || f.LastName == "" {
		return fmt.Errorf("all fields are required")
	}
	if err := ValidateEmail(f.Email); err != nil {
		return err
	}
	if err := ValidateUsername(f.Username); err != nil {
		return err
	}
	if f.IsAdmin != 0 && f.IsAdmin != 1 {
		return fmt.Errorf("admin flag must be 0 or 1")
	}
	return nil
}
