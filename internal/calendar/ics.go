package calendar

import (
	"fmt"
	"strconv"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/maheshrc27/postdeck/internal/models"
)

// ExportICS renders events as an iCalendar feed.
func ExportICS(events []models.Event, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//postdeck//scheduled posts//EN")

	for _, e := range events {
		if e.Start.IsZero() {
			continue
		}
		ev := cal.AddEvent(fmt.Sprintf("post-%d@postdeck", e.ID))
		ev.SetDtStampTime(now)
		ev.SetStartAt(e.Start)
		ev.SetEndAt(e.End)
		ev.SetSummary(e.Title)
		if e.Status != "" {
			ev.SetProperty(ical.ComponentPropertyCategories, e.Status)
		}
		if e.Platform != "" {
			ev.SetDescription("Platform: " + e.Platform)
		}
		if e.ImageURL != "" {
			ev.SetURL(e.ImageURL)
		}
		if e.HasLocation() {
			ev.SetProperty(ical.ComponentPropertyGeo,
				strconv.FormatFloat(*e.Latitude, 'f', -1, 64)+";"+strconv.FormatFloat(*e.Longitude, 'f', -1, 64))
		}
	}

	return cal.Serialize()
}
