package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postdeck/internal/gateway"
	"github.com/maheshrc27/postdeck/internal/service"
	"github.com/maheshrc27/postdeck/internal/session"
	"github.com/maheshrc27/postdeck/internal/views"
)

const MsgSignInIncomplete = "Sign-in did not complete."

type AuthHandler struct {
	gw      *gateway.Client
	cookies session.CookieOptions
	views   *views.Renderer
	s       service.CalendarService
}

func NewAuthHandler(gw *gateway.Client, cookies session.CookieOptions, renderer *views.Renderer, calendarService service.CalendarService) *AuthHandler {
	return &AuthHandler{gw: gw, cookies: cookies, views: renderer, s: calendarService}
}

// Login skips the login screen when the stored token still verifies.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	store := session.FromCtx(c, h.cookies)

	if _, ok := store.Get(); ok {
		result, err := h.gw.For(store).VerifySession(c.UserContext())
		if err != nil {
			slog.Error("Error verifying authentication", "error", err)
		} else if result.Authenticated {
			return c.Redirect("/")
		}
	}

	return h.views.Render(c, fiber.StatusOK, views.PageLogin, "Sign in", views.LoginData{
		LoginURL: h.gw.LoginURL(),
	})
}

// Callback stores the token handed back by the OAuth flow.
func (h *AuthHandler) Callback(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		slog.Error("No token found in URL")
		return h.views.Render(c, fiber.StatusOK, views.PageCallback, "Signing in", views.CallbackData{
			Message: MsgSignInIncomplete,
		})
	}

	session.FromCtx(c, h.cookies).Set(token)
	return c.Redirect("/")
}

// Logout only touches local state once the API has accepted it.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	store := session.FromCtx(c, h.cookies)

	if err := h.gw.For(store).Logout(c.UserContext()); err != nil {
		slog.Error("Error logging out", "error", err)
		return c.Redirect("/")
	}

	views.UI(c).NavbarVisible = false
	sessionID := store.SessionID()
	store.Clear()
	if err := h.s.Forget(c.UserContext(), sessionID); err != nil {
		slog.Error("Error dropping calendar view", "error", err)
	}

	return c.Redirect("/login")
}
