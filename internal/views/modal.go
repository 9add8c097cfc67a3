package views

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/maheshrc27/postdeck/internal/models"
)

const (
	defaultTitle  = "No Title"
	defaultStatus = "Unknown"

	displayTimeLayout = "Jan 2, 2006 3:04 PM"
	mapsEmbedURL      = "https://www.google.com/maps/embed/v1/view"
	mapsZoom          = 14
)

type ModalProps struct {
	IsOpen     bool
	Event      models.Event
	Location   *time.Location
	MapsAPIKey string
	OnClose    func()
	OnSave     func(content, scheduledTime string) error
}

// Modal is the detail dialog of one event. Edits live in a buffer that only
// reaches OnSave through Save.
type Modal struct {
	props   ModalProps
	open    bool
	editing bool

	content       string
	scheduledTime string
}

func NewModal(props ModalProps) *Modal {
	if props.Location == nil {
		props.Location = time.UTC
	}
	m := &Modal{props: props, open: props.IsOpen}
	m.resetBuffer()
	return m
}

func (m *Modal) resetBuffer() {
	m.content = m.props.Event.Title
	if m.content == "" {
		m.content = defaultTitle
	}
	m.scheduledTime = ""
	if !m.props.Event.End.IsZero() {
		m.scheduledTime = m.props.Event.End.In(m.props.Location).Format(models.InputTimeLayout)
	}
}

func (m *Modal) Open() bool    { return m.open }
func (m *Modal) Editing() bool { return m.open && m.editing }

// Edit switches to edit mode. A closed modal ignores it.
func (m *Modal) Edit() {
	if m.open {
		m.editing = true
	}
}

func (m *Modal) SetContent(content string) {
	if m.Editing() {
		m.content = content
	}
}

func (m *Modal) SetScheduledTime(value string) {
	if m.Editing() {
		m.scheduledTime = value
	}
}

// Save hands the buffer to OnSave once and returns to read mode.
func (m *Modal) Save() error {
	if !m.Editing() {
		return nil
	}
	var err error
	if m.props.OnSave != nil {
		err = m.props.OnSave(m.content, m.scheduledTime)
	}
	m.editing = false
	return err
}

// Cancel drops the buffer and returns to read mode without saving.
func (m *Modal) Cancel() {
	m.editing = false
	m.resetBuffer()
}

// Close hides the modal in either mode. Unsaved edits are dropped.
func (m *Modal) Close() {
	if !m.open {
		return
	}
	m.open = false
	m.editing = false
	m.resetBuffer()
	if m.props.OnClose != nil {
		m.props.OnClose()
	}
}

type ModalView struct {
	EventID            int64
	Editing            bool
	Title              string
	Status             string
	Color              string
	ScheduledTime      string
	ImageURL           string
	MapURL             string
	Content            string
	ScheduledTimeValue string
	Error              string
}

// View is nil while the modal is closed.
func (m *Modal) View() *ModalView {
	if !m.open {
		return nil
	}
	e := m.props.Event
	v := &ModalView{
		EventID:            e.ID,
		Editing:            m.editing,
		Title:              e.Title,
		Status:             e.Status,
		Color:              e.Color,
		ImageURL:           e.ImageURL,
		MapURL:             MapEmbedURL(m.props.MapsAPIKey, e),
		Content:            m.content,
		ScheduledTimeValue: m.scheduledTime,
	}
	if v.Title == "" {
		v.Title = defaultTitle
	}
	if v.Status == "" {
		v.Status = defaultStatus
	}
	if !e.End.IsZero() {
		v.ScheduledTime = e.End.In(m.props.Location).Format(displayTimeLayout)
	}
	return v
}

// MapEmbedURL is empty unless the key and both coordinates are present.
func MapEmbedURL(apiKey string, e models.Event) string {
	if apiKey == "" || !e.HasLocation() {
		return ""
	}
	center := strconv.FormatFloat(*e.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(*e.Longitude, 'f', -1, 64)
	return fmt.Sprintf("%s?key=%s&center=%s&zoom=%d", mapsEmbedURL, url.QueryEscape(apiKey), center, mapsZoom)
}
