package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postdeck/internal/calendar"
	"github.com/maheshrc27/postdeck/internal/gateway"
	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/service"
	"github.com/maheshrc27/postdeck/internal/session"
	"github.com/maheshrc27/postdeck/internal/views"
)

const (
	MsgUpdateFailed = "Failed to update post."

	errorUpdate = "update"
	modeEdit    = "edit"
)

type CalendarHandler struct {
	gw         *gateway.Client
	cookies    session.CookieOptions
	views      *views.Renderer
	s          service.CalendarService
	loc        *time.Location
	mapsAPIKey string
	now        func() time.Time
}

func NewCalendarHandler(gw *gateway.Client, cookies session.CookieOptions, renderer *views.Renderer, calendarService service.CalendarService, loc *time.Location, mapsAPIKey string) *CalendarHandler {
	return &CalendarHandler{
		gw:         gw,
		cookies:    cookies,
		views:      renderer,
		s:          calendarService,
		loc:        loc,
		mapsAPIKey: mapsAPIKey,
		now:        time.Now,
	}
}

// Mount fetches the posts again and shows the current month.
func (h *CalendarHandler) Mount(c *fiber.Ctx) error {
	store := session.FromCtx(c, h.cookies)

	view, err := h.s.Mount(c.UserContext(), h.gw.For(store), store.SessionID())
	if err != nil {
		return err
	}
	return h.render(c, view, nil)
}

// Show renders the cached calendar with the selected event, if any.
func (h *CalendarHandler) Show(c *fiber.Ctx) error {
	store := session.FromCtx(c, h.cookies)
	ctx := c.UserContext()
	sessionID := store.SessionID()

	view, err := h.s.View(ctx, h.gw.For(store), sessionID)
	if err != nil {
		return err
	}

	eventID, err := strconv.ParseInt(c.Query("event"), 10, 64)
	if err != nil {
		if err := h.s.ClearSelection(ctx, sessionID); err != nil {
			return err
		}
		return h.render(c, view, nil)
	}

	event, err := h.s.Select(ctx, sessionID, eventID)
	if errors.Is(err, service.ErrEventNotFound) {
		return h.render(c, view, nil)
	}
	if err != nil {
		return err
	}

	modal := views.NewModal(views.ModalProps{
		IsOpen:     true,
		Event:      *event,
		Location:   h.loc,
		MapsAPIKey: h.mapsAPIKey,
	})
	if c.Query("mode") == modeEdit {
		modal.Edit()
	}

	mv := modal.View()
	if c.Query("error") == errorUpdate {
		mv.Error = MsgUpdateFailed
	}
	return h.render(c, view, mv)
}

// Save applies the modal's edit form. The API is called once through the
// modal's save callback.
func (h *CalendarHandler) Save(c *fiber.Ctx) error {
	store := session.FromCtx(c, h.cookies)
	ctx := c.UserContext()
	sessionID := store.SessionID()
	month := c.Query("month")

	eventID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.ErrNotFound
	}

	event, err := h.s.Select(ctx, sessionID, eventID)
	if errors.Is(err, service.ErrEventNotFound) {
		return c.Redirect(calendarURL(month, ""))
	}
	if err != nil {
		return err
	}

	gw := h.gw.For(store)
	modal := views.NewModal(views.ModalProps{
		IsOpen:   true,
		Event:    *event,
		Location: h.loc,
		OnClose: func() {
			if err := h.s.ClearSelection(ctx, sessionID); err != nil {
				slog.Error("Error clearing selection", "error", err)
			}
		},
		OnSave: func(content, scheduledTime string) error {
			return h.s.Save(ctx, gw, sessionID, eventID, content, scheduledTime)
		},
	})
	modal.Edit()
	modal.SetContent(c.FormValue("content"))
	modal.SetScheduledTime(c.FormValue("scheduled_time"))

	if err := modal.Save(); err != nil {
		return c.Redirect(calendarURL(month, fmt.Sprintf("event=%d&error=%s", eventID, errorUpdate)))
	}

	modal.Close()
	return c.Redirect(calendarURL(month, ""))
}

// Export writes the session's events as an iCalendar file.
func (h *CalendarHandler) Export(c *fiber.Ctx) error {
	store := session.FromCtx(c, h.cookies)

	view, err := h.s.View(c.UserContext(), h.gw.For(store), store.SessionID())
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="postdeck.ics"`)
	return c.SendString(calendar.ExportICS(view.Events, h.now()))
}

func (h *CalendarHandler) render(c *fiber.Ctx, view *models.CalendarView, modal *views.ModalView) error {
	now := h.now()
	first := calendar.ParseMonth(c.Query("month"), now, h.loc)

	return h.views.Render(c, fiber.StatusOK, views.PageCalendar, "Calendar", views.CalendarData{
		Month: calendar.BuildMonth(first, view.Events, now),
		Modal: modal,
	})
}

func calendarURL(month, query string) string {
	url := "/calendar"
	sep := "?"
	if month != "" {
		url += sep + "month=" + month
		sep = "&"
	}
	if query != "" {
		url += sep + query
	}
	return url
}
