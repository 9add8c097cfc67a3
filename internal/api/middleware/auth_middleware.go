package middleware

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postdeck/internal/gateway"
	"github.com/maheshrc27/postdeck/internal/session"
	"github.com/maheshrc27/postdeck/internal/transfer"
	"github.com/maheshrc27/postdeck/internal/views"
)

type GateState int

const (
	Pending GateState = iota
	Authenticated
	Unauthenticated
)

func (s GateState) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "pending"
	}
}

type Verifier interface {
	VerifySession(ctx context.Context) (*transfer.VerifyResponse, error)
}

// Gate decides once whether a navigation may enter the guarded pages.
type Gate struct {
	state GateState
}

func NewGate() *Gate {
	return &Gate{state: Pending}
}

func (g *Gate) State() GateState { return g.state }

// Resolve leaves Pending exactly once and mirrors the result onto the navbar.
// A failed verification counts as unauthenticated.
func (g *Gate) Resolve(ctx context.Context, v Verifier, ui *views.UIState) GateState {
	if g.state != Pending {
		return g.state
	}

	result, err := v.VerifySession(ctx)
	switch {
	case err != nil:
		slog.Error("Error verifying authentication", "error", err)
		g.state = Unauthenticated
	case result != nil && result.Authenticated:
		g.state = Authenticated
	default:
		g.state = Unauthenticated
	}

	ui.NavbarVisible = g.state == Authenticated
	return g.state
}

type AuthMiddleware struct {
	gw      *gateway.Client
	cookies session.CookieOptions
	views   *views.Renderer
}

func NewAuthMiddleware(gw *gateway.Client, cookies session.CookieOptions, renderer *views.Renderer) *AuthMiddleware {
	return &AuthMiddleware{gw: gw, cookies: cookies, views: renderer}
}

func (m *AuthMiddleware) AuthGate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		store := session.FromCtx(c, m.cookies)
		gate := NewGate()

		switch gate.Resolve(c.UserContext(), m.gw.For(store), views.UI(c)) {
		case Authenticated:
			return c.Next()
		case Unauthenticated:
			return c.Redirect("/login")
		default:
			return m.views.Render(c, fiber.StatusOK, views.PageLoading, "", nil)
		}
	}
}
