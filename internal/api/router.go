package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	config "github.com/maheshrc27/postdeck/configs"
	"github.com/maheshrc27/postdeck/internal/api/handlers"
	"github.com/maheshrc27/postdeck/internal/api/middleware"
	"github.com/maheshrc27/postdeck/internal/gateway"
	"github.com/maheshrc27/postdeck/internal/service"
	"github.com/maheshrc27/postdeck/internal/session"
	"github.com/maheshrc27/postdeck/internal/views"
)

// uploadBodyLimit leaves room for the multipart envelope around a 10 MB image.
const uploadBodyLimit = 12 * 1024 * 1024

type Deps struct {
	Config   *config.Config
	Location *time.Location
	Gateway  *gateway.Client
	Views    *views.Renderer
	Calendar service.CalendarService
	Compose  service.ComposeService
}

func NewApp(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
		BodyLimit:    uploadBodyLimit,
		// Form values end up in the view cache, which outlives the request buffer.
		Immutable:    true,
		ErrorHandler: errorHandler(d.Views),
	})

	app.Use(recover.New())
	app.Use(logger.New())

	cookies := session.CookieOptions{
		Name:      d.Config.CookieName,
		SecretKey: d.Config.SecretKey,
		Secure:    d.Config.CookieSecure,
	}
	app.Use(session.Middleware(cookies))

	gate := middleware.NewAuthMiddleware(d.Gateway, cookies, d.Views).AuthGate()

	auth := handlers.NewAuthHandler(d.Gateway, cookies, d.Views, d.Calendar)
	app.Get("/login", auth.Login)
	app.Get("/auth/callback", auth.Callback)
	app.Post("/logout", gate, auth.Logout)

	cal := handlers.NewCalendarHandler(d.Gateway, cookies, d.Views, d.Calendar, d.Location, d.Config.GoogleMapsAPIKey)
	app.Get("/", gate, cal.Mount)
	app.Get("/calendar", gate, cal.Show)
	app.Get("/calendar.ics", gate, cal.Export)
	app.Post("/calendar/events/:id", gate, cal.Save)

	post := handlers.NewPostHandler(d.Gateway, cookies, d.Views, d.Compose)
	app.Get("/create-post", gate, post.New)
	app.Post("/create-post", gate, post.CreatePost)
	app.Get("/create-post/images", gate, post.SearchImages)

	app.Use(func(c *fiber.Ctx) error {
		return d.Views.Render(c, fiber.StatusNotFound, views.PageNotFound, "Not Found", nil)
	})

	return app
}

func errorHandler(renderer *views.Renderer) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		page := views.PageError
		if code == fiber.StatusNotFound {
			page = views.PageNotFound
		} else {
			slog.Error("request failed", "path", c.Path(), "error", err)
		}

		if rerr := renderer.Render(c, code, page, "Error", nil); rerr != nil {
			slog.Error(rerr.Error())
			return c.Status(code).SendString(err.Error())
		}
		return nil
	}
}
