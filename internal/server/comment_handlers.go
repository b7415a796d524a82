package server

import (
	"inkwell/internal/middleware"
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// DeleteComment handles GET /delete/comment/:commentId/:postId. Only the
// comment's author may delete it; success returns to the post page.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}
	if _, err := s.parseID(c, "postId"); err != nil {
		return nil
	}

	err = s.commentService.Delete(c.UserContext(), middleware.CurrentUser(c), commentID)
	if err != nil {
		switch models.ErrorCode(err) {
		case models.CodeUnauthorized:
			return s.renderError(c, fiber.StatusForbidden, "You can only delete your own comments")
		case models.CodeNotFound:
			return s.renderError(c, fiber.StatusNotFound, "Comment not found")
		default:
			return s.renderError(c, statusForError(err), "Something went wrong")
		}
	}

	return c.Redirect("/post/"+c.Params("postId"), fiber.StatusSeeOther)
}
