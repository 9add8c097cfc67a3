package session

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postdeck/pkg/utils"
)

const (
	localsKey       = "session"
	anonymousPrefix = "anon:"
	sessionIDLength = 18
)

type CookieOptions struct {
	Name      string
	SecretKey string
	Secure    bool
}

// CookieStore is the TokenStore of one request. The token travels in a
// signed cookie with the bearer value encrypted inside it.
type CookieStore struct {
	c    *fiber.Ctx
	opts CookieOptions

	loaded      bool
	token       string
	sessionID   string
	anonymousID string
}

func NewCookieStore(c *fiber.Ctx, opts CookieOptions) *CookieStore {
	return &CookieStore{c: c, opts: opts}
}

// Middleware attaches a CookieStore to every request.
func Middleware(opts CookieOptions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(localsKey, NewCookieStore(c, opts))
		return c.Next()
	}
}

// FromCtx returns the request's CookieStore, creating one when Middleware did not run.
func FromCtx(c *fiber.Ctx, opts CookieOptions) *CookieStore {
	if s, ok := c.Locals(localsKey).(*CookieStore); ok {
		return s
	}
	s := NewCookieStore(c, opts)
	c.Locals(localsKey, s)
	return s
}

func (s *CookieStore) load() {
	if s.loaded {
		return
	}
	s.loaded = true

	raw := s.c.Cookies(s.opts.Name)
	if raw == "" {
		return
	}

	claims, err := utils.ValidateSessionToken(s.opts.SecretKey, raw)
	if err != nil {
		slog.Info("ignoring session cookie", "error", err.Error())
		return
	}

	token, err := utils.Decrypt(claims.Token, []byte(s.opts.SecretKey))
	if err != nil {
		slog.Info("ignoring session cookie", "error", err.Error())
		return
	}

	s.token = token
	s.sessionID = claims.SessionID
}

func (s *CookieStore) Get() (string, bool) {
	s.load()
	return s.token, s.token != ""
}

// Set overwrites any earlier token and starts a new session id.
func (s *CookieStore) Set(token string) {
	s.loaded = true

	sessionID, err := utils.GenerateSessionID(sessionIDLength)
	if err != nil {
		slog.Error("generating session id", "error", err)
		return
	}

	sealed, err := utils.Encrypt([]byte(token), []byte(s.opts.SecretKey))
	if err != nil {
		slog.Error("encrypting session token", "error", err)
		return
	}

	signed, err := utils.GenerateSessionToken(s.opts.SecretKey, sessionID, sealed)
	if err != nil {
		slog.Error("signing session cookie", "error", err)
		return
	}

	s.c.Cookie(&fiber.Cookie{
		Name:     s.opts.Name,
		Value:    signed,
		Path:     "/",
		HTTPOnly: true,
		Secure:   s.opts.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	s.token = token
	s.sessionID = sessionID
}

func (s *CookieStore) Clear() {
	s.loaded = true
	s.c.Cookie(&fiber.Cookie{
		Name:     s.opts.Name,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   s.opts.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1, // Delete cookie
	})
	s.token = ""
	s.sessionID = ""
}

// SessionID keys per-session view state. A request without a session gets a
// random id that is never written to the cookie, so it shares no state.
func (s *CookieStore) SessionID() string {
	s.load()
	if s.sessionID != "" {
		return s.sessionID
	}
	if s.anonymousID == "" {
		id, err := utils.GenerateSessionID(sessionIDLength)
		if err != nil {
			slog.Error("generating anonymous session id", "error", err)
			return ""
		}
		s.anonymousID = anonymousPrefix + id
	}
	return s.anonymousID
}
