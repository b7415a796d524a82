package server

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/timeago"

	"github.com/gofiber/fiber/v2"
)

// render draws a view with the shared page data attached: the current
// principal and any pending flash message.
func (s *Server) render(c *fiber.Ctx, status int, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["CurrentUser"] = middleware.CurrentUser(c)
	if flash, ok := s.sessions.PopFlash(c); ok {
		data["Flash"] = flash
	}
	return c.Status(status).Render(view, data)
}

// renderError draws the shared error page.
func (s *Server) renderError(c *fiber.Ctx, status int, message string) error {
	return s.render(c, status, "error", fiber.Map{
		"Title":   "Error",
		"Message": message,
	})
}

// parseID extracts a route parameter as a positive uint, rendering a 404 on
// garbage input. Callers should return nil when err is non-nil.
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		return 0, s.renderError(c, fiber.StatusNotFound, "Page not found")
	}
	return uint(id), nil
}

// timeagoFunc builds the template helper that annotates comments with their
// relative age.
func (s *Server) timeagoFunc() func(time.Time) string {
	return func(t time.Time) string {
		return timeago.Format(t, s.now())
	}
}

// gravatarURL returns the avatar image for a commenter's email, retro
// fallback, rated g, sized for the comment sidebar.
func gravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=100&d=retro&r=g"
}

// itoa renders a record ID for use in redirect paths.
func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// statusForError maps service error codes onto HTTP status codes for the
// cases where the handler responds with a page rather than a redirect.
func statusForError(err error) int {
	switch models.ErrorCode(err) {
	case models.CodeNotFound:
		return fiber.StatusNotFound
	case models.CodeValidation:
		return fiber.StatusBadRequest
	case models.CodeUnauthorized:
		return fiber.StatusForbidden
	case models.CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
