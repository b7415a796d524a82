package server

import (
	"github.com/gofiber/fiber/v2"
)

// Health reports liveness for load balancers and uptime checks.
func (s *Server) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// About renders the static about page.
func (s *Server) About(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusOK, "about", fiber.Map{
		"Title": "About Me",
	})
}

// Contact renders the static contact page.
func (s *Server) Contact(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusOK, "contact", fiber.Map{
		"Title": "Contact Me",
	})
}
