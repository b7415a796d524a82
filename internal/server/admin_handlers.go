package server

import (
	"strconv"

	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AdminPanel renders the user listing for administrators.
func (s *Server) AdminPanel(c *fiber.Ctx) error {
	users, err := s.userService.List(c.UserContext())
	if err != nil {
		return s.renderError(c, statusForError(err), "Something went wrong")
	}
	return s.render(c, fiber.StatusOK, "admin", fiber.Map{
		"Title": "Admin Panel",
		"Users": users,
	})
}

// EditUserPage renders the edit-user form pre-filled with the account's
// current values.
func (s *Server) EditUserPage(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.Get(c.UserContext(), userID)
	if err != nil {
		if models.ErrorCode(err) == models.CodeNotFound {
			return s.renderError(c, fiber.StatusNotFound, "User not found")
		}
		return s.renderError(c, statusForError(err), "Something went wrong")
	}

	return s.render(c, fiber.StatusOK, "edit-user", fiber.Map{
		"Title": "Edit User",
		"User":  user,
	})
}

// UpdateUser handles POST /edit-user/:id: profile fields plus the admin flag.
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	isAdmin, convErr := strconv.Atoi(c.FormValue("is_admin", "0"))
	if convErr != nil {
		isAdmin = -1
	}

	in := service.UpdateUserInput{
		UserID:    userID,
		Email:     c.FormValue("email"),
		Username:  c.FormValue("username"),
		FirstName: c.FormValue("first_name"),
		LastName:  c.FormValue("last_name"),
		IsAdmin:   isAdmin,
	}

	if _, err := s.userService.Update(c.UserContext(), in); err != nil {
		switch models.ErrorCode(err) {
		case models.CodeNotFound:
			return s.renderError(c, fiber.StatusNotFound, "User not found")
		case models.CodeValidation, models.CodeConflict:
			return s.render(c, statusForError(err), "edit-user", fiber.Map{
				"Title":     "Edit User",
				"FormError": err.Error(),
				"User": &models.User{
					ID:        userID,
					Email:     in.Email,
					Username:  in.Username,
					FirstName: in.FirstName,
					LastName:  in.LastName,
					IsAdmin:   isAdmin,
				},
			})
		default:
			return s.renderError(c, statusForError(err), "Something went wrong")
		}
	}

	return c.Redirect("/admin-panel", fiber.StatusSeeOther)
}
