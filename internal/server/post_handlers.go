package server

import (
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/service"
	"inkwell/internal/timeago"

	"github.com/gofiber/fiber/v2"
)

// commentView pairs a comment with its rendered relative age for the post page.
type commentView struct {
	Comment *models.Comment
	TimeAgo string
}

// Index renders the front page with every post, newest first.
func (s *Server) Index(c *fiber.Ctx) error {
	posts, err := s.postService.List(c.UserContext())
	if err != nil {
		return s.renderError(c, statusForError(err), "Something went wrong")
	}
	return s.render(c, fiber.StatusOK, "index", fiber.Map{
		"Title": "All Posts",
		"Posts": posts,
	})
}

// ShowPost renders a post with its comments, each annotated with a
// relative-time string.
func (s *Server) ShowPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.Get(c.UserContext(), postID)
	if err != nil {
		if models.ErrorCode(err) == models.CodeNotFound {
			return s.renderError(c, fiber.StatusNotFound, "Post not found")
		}
		return s.renderError(c, statusForError(err), "Something went wrong")
	}

	comments, err := s.commentService.ListForPost(c.UserContext(), postID)
	if err != nil {
		return s.renderError(c, statusForError(err), "Something went wrong")
	}

	now := s.now()
	views := make([]commentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, commentView{
			Comment: comment,
			TimeAgo: timeago.Format(comment.PostedTime, now),
		})
	}

	return s.render(c, fiber.StatusOK, "post", fiber.Map{
		"Title":    post.Title,
		"Post":     post,
		"Comments": views,
	})
}

// AddComment handles comment submission on a post page. Anonymous submitters
// are flashed toward the login page; nothing is written.
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	principal := middleware.CurrentUser(c)
	_, err = s.commentService.Create(c.UserContext(), principal, postID, c.FormValue("comment"))
	if err != nil {
		switch models.ErrorCode(err) {
		case models.CodeUnauthorized:
			s.sessions.Flash(c, "danger", "Please log in to comment")
			return c.Redirect("/login", fiber.StatusSeeOther)
		case models.CodeValidation:
			s.sessions.Flash(c, "danger", err.Error())
			return c.Redirect("/post/"+c.Params("id"), fiber.StatusSeeOther)
		case models.CodeNotFound:
			return s.renderError(c, fiber.StatusNotFound, "Post not found")
		default:
			return s.renderError(c, statusForError(err), "Something went wrong")
		}
	}

	return c.Redirect("/post/"+c.Params("id"), fiber.StatusSeeOther)
}

// NewPostPage renders the empty post form.
func (s *Server) NewPostPage(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusOK, "make-post", fiber.Map{
		"Title":  "New Post",
		"IsEdit": false,
	})
}

// CreatePost handles POST /new-post.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	in := service.CreatePostInput{
		Principal: middleware.CurrentUser(c),
		Title:     c.FormValue("title"),
		Subtitle:  c.FormValue("subtitle"),
		ImageURL:  c.FormValue("img_url"),
		Body:      c.FormValue("body"),
	}

	_, err := s.postService.Create(c.UserContext(), in)
	if err != nil {
		switch models.ErrorCode(err) {
		case models.CodeValidation, models.CodeConflict:
			return s.render(c, statusForError(err), "make-post", fiber.Map{
				"Title":     "New Post",
				"IsEdit":    false,
				"FormError": err.Error(),
				"Form":      in,
			})
		default:
			return s.renderError(c, statusForError(err), "Something went wrong")
		}
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// EditPostPage renders the post form pre-filled. Non-owners are sent back to
// the front page.
func (s *Server) EditPostPage(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.Get(c.UserContext(), postID)
	if err != nil {
		if models.ErrorCode(err) == models.CodeNotFound {
			return s.renderError(c, fiber.StatusNotFound, "Post not found")
		}
		return s.renderError(c, statusForError(err), "Something went wrong")
	}

	principal := middleware.CurrentUser(c)
	if principal == nil || principal.ID != post.UserID {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	return s.render(c, fiber.StatusOK, "make-post", fiber.Map{
		"Title":  "Edit Post",
		"IsEdit": true,
		"PostID": post.ID,
		"Form": service.CreatePostInput{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			ImageURL: post.ImageURL,
			Body:     post.Body,
		},
	})
}

// UpdatePost handles POST /edit-post/:id.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	in := service.UpdatePostInput{
		Principal: middleware.CurrentUser(c),
		PostID:    postID,
		Title:     c.FormValue("title"),
		Subtitle:  c.FormValue("subtitle"),
		ImageURL:  c.FormValue("img_url"),
		Body:      c.FormValue("body"),
	}

	post, err := s.postService.Update(c.UserContext(), in)
	if err != nil {
		switch models.ErrorCode(err) {
		case models.CodeUnauthorized:
			return c.Redirect("/", fiber.StatusSeeOther)
		case models.CodeNotFound:
			return s.renderError(c, fiber.StatusNotFound, "Post not found")
		case models.CodeValidation, models.CodeConflict:
			return s.render(c, statusForError(err), "make-post", fiber.Map{
				"Title":     "Edit Post",
				"IsEdit":    true,
				"PostID":    postID,
				"FormError": err.Error(),
				"Form":      in,
			})
		default:
			return s.renderError(c, statusForError(err), "Something went wrong")
		}
	}

	return c.Redirect("/post/"+itoa(post.ID), fiber.StatusSeeOther)
}

// DeletePost handles GET /delete/:id. Only the author may delete; everyone
// lands back on the front page either way.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	err = s.postService.Delete(c.UserContext(), middleware.CurrentUser(c), postID)
	if err != nil {
		switch models.ErrorCode(err) {
		case models.CodeUnauthorized:
			return c.Redirect("/", fiber.StatusSeeOther)
		case models.CodeNotFound:
			return s.renderError(c, fiber.StatusNotFound, "Post not found")
		default:
			return s.renderError(c, statusForError(err), "Something went wrong")
		}
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}
