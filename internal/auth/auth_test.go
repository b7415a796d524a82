package auth

import (
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestIsAdmin(t *testing.T) {
	t.Parallel()

	assert.False(t, IsAdmin(nil), "anonymous principal is never admin")
	assert.False(t, IsAdmin(&models.User{ID: 1, IsAdmin: models.AdminFlagOff}))
	assert.True(t, IsAdmin(&models.User{ID: 1, IsAdmin: models.AdminFlagOn}))
}

func TestIsPostOwner(t *testing.T) {
	t.Parallel()

	alice := &models.User{ID: 1}
	bob := &models.User{ID: 2}
	post := &models.Post{ID: 7, UserID: 2}

	assert.False(t, IsPostOwner(nil, post))
	assert.False(t, IsPostOwner(alice, post))
	assert.True(t, IsPostOwner(bob, post))
	assert.False(t, IsPostOwner(bob, nil))
}

func TestIsPostOwner_ComparesAuthorNotPostID(t *testing.T) {
	t.Parallel()

	// User ID happens to equal the post ID but not the author ID. The
	// predicate must still deny.
	user := &models.User{ID: 7}
	post := &models.Post{ID: 7, UserID: 2}
	assert.False(t, IsPostOwner(user, post))
}

func TestIsCommentOwner(t *testing.T) {
	t.Parallel()

	owner := &models.User{ID: 3}
	comment := &models.Comment{ID: 10, UserID: 3, PostID: 7}

	assert.True(t, IsCommentOwner(owner, comment))
	assert.False(t, IsCommentOwner(&models.User{ID: 4}, comment))
	assert.False(t, IsCommentOwner(nil, comment))
}

func TestCanComment(t *testing.T) {
	t.Parallel()

	assert.False(t, CanComment(nil))
	assert.True(t, CanComment(&models.User{ID: 1}))
}
