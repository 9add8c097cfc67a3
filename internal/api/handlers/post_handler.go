package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/postdeck/internal/gateway"
	"github.com/maheshrc27/postdeck/internal/service"
	"github.com/maheshrc27/postdeck/internal/session"
	"github.com/maheshrc27/postdeck/internal/views"
)

type PostHandler struct {
	gw      *gateway.Client
	cookies session.CookieOptions
	views   *views.Renderer
	s       service.ComposeService
}

func NewPostHandler(gw *gateway.Client, cookies session.CookieOptions, renderer *views.Renderer, composeService service.ComposeService) *PostHandler {
	return &PostHandler{gw: gw, cookies: cookies, views: renderer, s: composeService}
}

func (h *PostHandler) New(c *fiber.Ctx) error {
	return h.render(c, service.FormState{}, service.SearchState{})
}

// CreatePost attaches the uploaded image, if any, and schedules the draft.
func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	form := service.FormState{Draft: draftFrom(c.FormValue)}

	if file, err := c.FormFile("image"); err == nil && file.Size > 0 {
		if !h.s.AttachUpload(ctx, &form, file) {
			return h.render(c, form, service.SearchState{})
		}
	}

	store := session.FromCtx(c, h.cookies)
	h.s.Submit(ctx, h.gw.For(store), &form)
	return h.render(c, form, service.SearchState{})
}

// SearchImages keeps the draft carried in the query and shows the gallery.
func (h *PostHandler) SearchImages(c *fiber.Ctx) error {
	form := service.FormState{Draft: draftFrom(c.Query)}
	search := h.s.SearchImages(c.UserContext(), c.Query("q"))
	return h.render(c, form, search)
}

func (h *PostHandler) render(c *fiber.Ctx, form service.FormState, search service.SearchState) error {
	return h.views.Render(c, fiber.StatusOK, views.PageCreatePost, "Create Post", views.NewCreatePostData(form, search))
}
