package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RegisterPage renders the registration form.
func (s *Server) RegisterPage(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusOK, "register", fiber.Map{
		"Title": "Register",
	})
}

// Register handles POST /register: create the account, sign the visitor in,
// and land them on the front page. A duplicate email or username flashes the
// already-registered message and points at the login page instead.
func (s *Server) Register(c *fiber.Ctx) error {
	in := service.RegisterInput{
		Email:           c.FormValue("email"),
		Username:        c.FormValue("username"),
		Password:        c.FormValue("password"),
		PasswordConfirm: c.FormValue("password_confirm"),
		FirstName:       c.FormValue("first_name"),
		LastName:        c.FormValue("last_name"),
	}

	user, err := s.authService.Register(c.UserContext(), in)
	if err != nil {
		switch models.ErrorCode(err) {
		case models.CodeValidation:
			return s.render(c, fiber.StatusBadRequest, "register", fiber.Map{
				"Title":     "Register",
				"FormError": err.Error(),
				"Form":      in,
			})
		case models.CodeConflict:
			s.sessions.Flash(c, "danger", "That user is already registered, please try and login")
			return c.Redirect("/login", fiber.StatusSeeOther)
		default:
			return s.renderError(c, statusForError(err), "Something went wrong")
		}
	}

	if err := s.sessions.SignIn(c, user.ID); err != nil {
		return s.renderError(c, fiber.StatusInternalServerError, "Something went wrong")
	}
	s.sessions.Flash(c, "info", "You have registered")
	return c.Redirect("/", fiber.StatusSeeOther)
}

// LoginPage renders the login form.
func (s *Server) LoginPage(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusOK, "login", fiber.Map{
		"Title": "Login",
		"Next":  c.Query("next"),
	})
}

// Login handles POST /login. Unknown emails are pointed at registration;
// bad passwords come back to the login form.
func (s *Server) Login(c *fiber.Ctx) error {
	in := service.LoginInput{
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}

	user, err := s.authService.Login(c.UserContext(), in)
	if err != nil {
		switch models.ErrorCode(err) {
		case models.CodeValidation:
			return s.render(c, fiber.StatusBadRequest, "login", fiber.Map{
				"Title":     "Login",
				"FormError": err.Error(),
			})
		case models.CodeNotFound:
			s.sessions.Flash(c, "danger", "That email does not exist, please register")
			return c.Redirect("/register", fiber.StatusSeeOther)
		case models.CodeUnauthorized:
			s.sessions.Flash(c, "danger", "Invalid username or password")
			return c.Redirect("/login", fiber.StatusSeeOther)
		default:
			return s.renderError(c, statusForError(err), "Something went wrong")
		}
	}

	if err := s.sessions.SignIn(c, user.ID); err != nil {
		return s.renderError(c, fiber.StatusInternalServerError, "Something went wrong")
	}
	s.sessions.Flash(c, "info", "You are now logged in")

	// Honor the next parameter for visitors bounced off a protected page,
	// but only for local paths.
	if next := c.FormValue("next"); next != "" && next[0] == '/' {
		return c.Redirect(next, fiber.StatusSeeOther)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Logout clears the session and returns to the front page.
func (s *Server) Logout(c *fiber.Ctx) error {
	if err := s.sessions.SignOut(c); err != nil {
		return s.renderError(c, fiber.StatusInternalServerError, "Something went wrong")
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
