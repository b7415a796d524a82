// Package middleware provides session handling, route guards, and request
// logging for the application.
package middleware

import (
	"inkwell/internal/config"
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

// Session keys. The principal is identified by ID only; the full user row is
// loaded per request by LoadUser.
const (
	sessionUserIDKey   = "userID"
	sessionFlashMsgKey = "flash_message"
	sessionFlashCatKey = "flash_category"
)

// currentUserLocal is the fiber.Ctx locals key holding the loaded principal.
const currentUserLocal = "currentUser"

// Flash is a one-shot message stored in the session and shown on the next
// rendered page.
type Flash struct {
	Category string
	Message  string
}

// SessionManager wraps the cookie-backed session store.
type SessionManager struct {
	store *session.Store
}

// NewSessionManager builds the session store from configuration.
func NewSessionManager(cfg *config.Config) *SessionManager {
	store := session.New(session.Config{
		Expiration:     cfg.SessionTTL,
		KeyLookup:      "cookie:inkwell_session",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.SecureCookies,
		CookieSameSite: "Lax",
		KeyGenerator:   uuid.NewString,
	})
	return &SessionManager{store: store}
}

// SignIn associates the session with the given account.
func (m *SessionManager) SignIn(c *fiber.Ctx, userID uint) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(sessionUserIDKey, userID)
	return sess.Save()
}

// SignOut destroys the session, clearing the principal and any pending flash.
func (m *SessionManager) SignOut(c *fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// UserID returns the signed-in account ID, if any.
func (m *SessionManager) UserID(c *fiber.Ctx) (uint, bool) {
	sess, err := m.store.Get(c)
	if err != nil {
		return 0, false
	}
	id, ok := sess.Get(sessionUserIDKey).(uint)
	return id, ok
}

// Flash queues a one-shot message for the next rendered page.
func (m *SessionManager) Flash(c *fiber.Ctx, category, message string) {
	sess, err := m.store.Get(c)
	if err != nil {
		return
	}
	sess.Set(sessionFlashMsgKey, message)
	sess.Set(sessionFlashCatKey, category)
	_ = sess.Save()
}

// PopFlash returns and clears the pending flash message, if any.
func (m *SessionManager) PopFlash(c *fiber.Ctx) (Flash, bool) {
	sess, err := m.store.Get(c)
	if err != nil {
		return Flash{}, false
	}
	msg, ok := sess.Get(sessionFlashMsgKey).(string)
	if !ok || msg == "" {
		return Flash{}, false
	}
	cat, _ := sess.Get(sessionFlashCatKey).(string)
	sess.Delete(sessionFlashMsgKey)
	sess.Delete(sessionFlashCatKey)
	_ = sess.Save()
	return Flash{Category: cat, Message: msg}, true
}

// CurrentUser returns the principal loaded by LoadUser, or nil for anonymous
// requests.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserLocal).(*models.User)
	return user
}
