package middleware

import (
	"inkwell/internal/auth"
	"inkwell/internal/observability"
	"inkwell/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// LoadUser resolves the session principal into a full user row and stores it
// in the request locals. A stale session pointing at a deleted account is
// treated as anonymous.
func LoadUser(sessions *SessionManager, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := sessions.UserID(c); ok {
			if user, err := users.GetByID(c.UserContext(), id); err == nil {
				c.Locals(currentUserLocal, user)
				c.SetUserContext(observability.WithUserID(c.UserContext(), user.ID))
			}
		}
		return c.Next()
	}
}

// RequireAuth turns anonymous requests away toward the login page, carrying
// the original path in the next parameter.
func RequireAuth(sessions *SessionManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !auth.IsAuthenticated(CurrentUser(c)) {
			sessions.Flash(c, "danger", "Please log in to continue")
			return c.Redirect("/login?next="+c.Path(), fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// RequireAdmin gates the admin panel. Anonymous visitors are sent to login;
// authenticated non-admins get a forbidden page.
func RequireAdmin(sessions *SessionManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := CurrentUser(c)
		if !auth.IsAuthenticated(principal) {
			sessions.Flash(c, "danger", "Please log in to continue")
			return c.Redirect("/login?next="+c.Path(), fiber.StatusSeeOther)
		}
		if !auth.IsAdmin(principal) {
			return c.Status(fiber.StatusForbidden).Render("error", fiber.Map{
				"Title":   "Forbidden",
				"Message": "You do not have access to this page",
			}, "layouts/main")
		}
		return c.Next()
	}
}

// RequireGuest sends already-signed-in visitors back to the front page.
// Used on the register and login routes.
func RequireGuest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if auth.IsAuthenticated(CurrentUser(c)) {
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
