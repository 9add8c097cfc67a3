package session

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOpts = CookieOptions{Name: "authToken", SecretKey: "0123456789abcdef0123456789abcdef"}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(Middleware(testOpts))
	app.Get("/set", func(c *fiber.Ctx) error {
		s := FromCtx(c, testOpts)
		s.Set(c.Query("token"))
		token, _ := s.Get()
		return c.SendString(token)
	})
	app.Get("/get", func(c *fiber.Ctx) error {
		token, ok := FromCtx(c, testOpts).Get()
		if !ok {
			return c.SendString("<absent>")
		}
		return c.SendString(token)
	})
	app.Get("/clear", func(c *fiber.Ctx) error {
		FromCtx(c, testOpts).Clear()
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == testOpts.Name {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", testOpts.Name)
	return nil
}

func TestCookieStoreRoundTrip(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/set?token=abc123", nil))
	require.NoError(t, err)
	assert.Equal(t, "abc123", body(t, resp))

	cookie := sessionCookie(t, resp)
	assert.NotContains(t, cookie.Value, "abc123")
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc123", body(t, resp))
}

func TestCookieStoreAbsentAndTampered(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/get", nil))
	require.NoError(t, err)
	assert.Equal(t, "<absent>", body(t, resp))

	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	req.AddCookie(&http.Cookie{Name: testOpts.Name, Value: "not-a-jwt"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "<absent>", body(t, resp))
}

func TestCookieStoreClear(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/clear", nil))
	require.NoError(t, err)
	cookie := sessionCookie(t, resp)
	assert.Empty(t, cookie.Value)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore("")
	_, ok := s.Get()
	assert.False(t, ok)

	s.Set("first")
	s.Set("second")
	token, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, "second", token)

	s.Clear()
	_, ok = s.Get()
	assert.False(t, ok)
}

func TestAnonymousSessionIDs(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware(testOpts))
	app.Get("/sid", func(c *fiber.Ctx) error {
		s := FromCtx(c, testOpts)
		first, second := s.SessionID(), s.SessionID()
		if first != second {
			return c.SendString("<unstable>")
		}
		return c.SendString(first)
	})

	var ids []string
	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/sid", nil))
		require.NoError(t, err)
		assert.Empty(t, resp.Cookies(), "anonymous ids are not persisted")
		ids = append(ids, body(t, resp))
	}

	assert.NotEqual(t, "<unstable>", ids[0])
	assert.NotEmpty(t, ids[0])
	assert.NotEqual(t, ids[0], ids[1])
}
