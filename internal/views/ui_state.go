package views

import "github.com/gofiber/fiber/v2"

const uiLocalsKey = "ui"

// UIState is the shell chrome shared by the auth gate, logout, and the layout.
type UIState struct {
	NavbarVisible bool
}

// UI returns the request's UIState, creating it hidden on first use.
func UI(c *fiber.Ctx) *UIState {
	if s, ok := c.Locals(uiLocalsKey).(*UIState); ok {
		return s
	}
	s := &UIState{}
	c.Locals(uiLocalsKey, s)
	return s
}
