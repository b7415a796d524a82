package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRegistration() RegistrationForm {
	return RegistrationForm{
		Email:           "reader@example.com",
		Username:        "reader_1",
		Password:        "hunter2hunter2",
		PasswordConfirm: "hunter2hunter2",
		FirstName:       "Avery",
		LastName:        "Reed",
	}
}

func TestRegistrationForm_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		f := validRegistration()
		assert.NoError(t, f.Validate())
	})

	t.Run("missing field", func(t *testing.T) {
		t.Parallel()
		f := validRegistration()
		f.FirstName = ""
		assert.Error(t, f.Validate())
	})

	t.Run("bad email", func(t *testing.T) {
		t.Parallel()
		f := validRegistration()
		f.Email = "not-an-email"
		assert.Error(t, f.Validate())
	})

	t.Run("password mismatch", func(t *testing.T) {
		t.Parallel()
		f := validRegistration()
		f.PasswordConfirm = "different"
		assert.Error(t, f.Validate())
	})

	t.Run("short password", func(t *testing.T) {
		t.Parallel()
		f := validRegistration()
		f.Password = "short"
		f.PasswordConfirm = "short"
		assert.Error(t, f.Validate())
	})
}

func TestPostForm_Validate(t *testing.T) {
	t.Parallel()

	valid := PostForm{
		Title:    "First Light",
		Subtitle: "On starting over",
		ImageURL: "https://images.example.com/light.jpg",
		Body:     "<p>Some content</p>",
	}
	assert.NoError(t, valid.Validate())

	t.Run("relative image URL rejected", func(t *testing.T) {
		t.Parallel()
		f := valid
		f.ImageURL = "/static/light.jpg"
		assert.Error(t, f.Validate())
	})

	t.Run("non-http scheme rejected", func(t *testing.T) {
		t.Parallel()
		f := valid
		f.ImageURL = "ftp://images.example.com/light.jpg"
		assert.Error(t, f.Validate())
	})

	t.Run("whitespace body rejected", func(t *testing.T) {
		t.Parallel()
		f := valid
		f.Body = "   \n"
		assert.Error(t, f.Validate())
	})
}

func TestCommentForm_Validate(t *testing.T) {
	t.Parallel()

	assert.Error(t, (&CommentForm{Content: "  "}).Validate())
	assert.NoError(t, (&CommentForm{Content: "Great read"}).Validate())
}

func TestUserEditForm_Validate(t *testing.T) {
	t.Parallel()

	valid := UserEditForm{
		Email:     "admin@example.com",
		Username:  "admin",
		FirstName: "Sam",
		LastName:  "Okafor",
		IsAdmin:   1,
	}
	assert.NoError(t, valid.Validate())

	f := valid
	f.IsAdmin = 2
	assert.Error(t, f.Validate())
}

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateUsername("ink_well-9"))
	assert.Error(t, ValidateUsername("ab"))
	assert.Error(t, ValidateUsername("has space"))
}
