package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postdeck/internal/gateway"
	"github.com/maheshrc27/postdeck/internal/session"
	"github.com/maheshrc27/postdeck/internal/transfer"
	"github.com/maheshrc27/postdeck/internal/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	result *transfer.VerifyResponse
	err    error
	calls  int
}

func (s *stubVerifier) VerifySession(ctx context.Context) (*transfer.VerifyResponse, error) {
	s.calls++
	return s.result, s.err
}

func TestGateResolve(t *testing.T) {
	cases := []struct {
		name   string
		v      *stubVerifier
		want   GateState
		navbar bool
	}{
		{"authenticated", &stubVerifier{result: &transfer.VerifyResponse{Authenticated: true}}, Authenticated, true},
		{"denied", &stubVerifier{result: &transfer.VerifyResponse{Authenticated: false}}, Unauthenticated, false},
		{"transport failure", &stubVerifier{err: errors.New("dial tcp: refused")}, Unauthenticated, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGate()
			assert.Equal(t, Pending, g.State())

			ui := &views.UIState{NavbarVisible: !tc.navbar}
			assert.Equal(t, tc.want, g.Resolve(context.Background(), tc.v, ui))
			assert.Equal(t, tc.navbar, ui.NavbarVisible)

			g.Resolve(context.Background(), tc.v, ui)
			assert.Equal(t, 1, tc.v.calls, "gate is evaluated once")
		})
	}
}

func newGatedApp(t *testing.T, apiStatus int, apiBody string) *fiber.App {
	t.Helper()
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(apiStatus)
		_, _ = w.Write([]byte(apiBody))
	}))
	t.Cleanup(api.Close)

	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	cookies := session.CookieOptions{Name: "authToken", SecretKey: "0123456789abcdef0123456789abcdef"}
	m := NewAuthMiddleware(gateway.NewClient(api.URL, nil), cookies, renderer)

	app := fiber.New()
	app.Get("/", m.AuthGate(), func(c *fiber.Ctx) error {
		if views.UI(c).NavbarVisible {
			return c.SendString("calendar with navbar")
		}
		return c.SendString("calendar")
	})
	return app
}

func TestAuthGateAllows(t *testing.T) {
	app := newGatedApp(t, http.StatusOK, `{"authenticated": true}`)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "calendar with navbar", string(body))
}

func TestAuthGateRedirects(t *testing.T) {
	for _, tc := range []struct {
		status int
		body   string
	}{
		{http.StatusOK, `{"authenticated": false}`},
		{http.StatusUnauthorized, `{"error": "expired"}`},
		{http.StatusBadGateway, ``},
	} {
		app := newGatedApp(t, tc.status, tc.body)
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
	}
}
