// Package auth holds the authorization predicates consulted by guard
// middleware and handlers. Every predicate treats a nil principal as an
// anonymous request and answers false; denial is always a routing decision
// for the caller, never an error.
package auth

import "inkwell/internal/models"

// IsAuthenticated reports whether the request carries a logged-in principal.
func IsAuthenticated(principal *models.User) bool {
	return principal != nil
}

// IsAdmin reports whether the principal may access the admin panel and the
// user-edit screens.
func IsAdmin(principal *models.User) bool {
	return principal != nil && principal.IsAdmin == models.AdminFlagOn
}

// IsPostOwner reports whether the principal authored the post. Gates
// edit-post and delete-post.
func IsPostOwner(principal *models.User, post *models.Post) bool {
	return principal != nil && post != nil && principal.ID == post.UserID
}

// IsCommentOwner reports whether the principal authored the comment. Gates
// delete-comment.
func IsCommentOwner(principal *models.User, comment *models.Comment) bool {
	return principal != nil && comment != nil && principal.ID == comment.UserID
}

// CanComment reports whether the principal may submit comments. Anonymous
// submissions are turned away toward the login page by the handler.
func CanComment(principal *models.User) bool {
	return IsAuthenticated(principal)
}
