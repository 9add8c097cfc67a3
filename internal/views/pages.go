package views

import (
	"github.com/maheshrc27/postdeck/internal/calendar"
	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/service"
)

type LoginData struct {
	LoginURL string
}

type CallbackData struct {
	Message string
}

type CalendarData struct {
	Month calendar.Month
	Modal *ModalView
}

type CreatePostData struct {
	Form   service.FormState
	Search service.SearchState
	// Gallery marks the search result that is the draft's image.
	Gallery []GalleryItem
	// Kept is the draft's image when the gallery does not contain it.
	Kept string
}

type GalleryItem struct {
	models.Image
	Selected bool
}

func NewCreatePostData(form service.FormState, search service.SearchState) CreatePostData {
	d := CreatePostData{Form: form, Search: search}
	found := false
	for _, img := range search.Images {
		selected := img.URL != "" && img.URL == form.Draft.ImageURL
		found = found || selected
		d.Gallery = append(d.Gallery, GalleryItem{Image: img, Selected: selected})
	}
	if len(d.Gallery) > 0 && !found {
		d.Kept = form.Draft.ImageURL
	}
	return d
}
