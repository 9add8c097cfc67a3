package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorFor(t *testing.T) {
	cases := map[string]string{
		"SCHEDULED": ColorScheduled,
		"POSTED":    ColorPosted,
		"FAILED":    ColorFailed,
		"":          ColorUnknown,
		"DRAFT":     ColorUnknown,
		"posted":    ColorUnknown,
	}
	for status, want := range cases {
		assert.Equal(t, want, ColorFor(status), "status %q", status)
	}
}

func TestProjectIsZeroDuration(t *testing.T) {
	lat, lng := 40.7, -74.0
	posts := []models.Post{
		{ID: 1, Content: "Hello", ScheduledTime: "2024-06-01T09:30:00.000Z", Status: "SCHEDULED", Latitude: &lat, Longitude: &lng},
		{ID: 2, Content: "Local", ScheduledTime: "2024-06-01T09:30", Status: "WHATEVER"},
		{ID: 3, Content: "Broken", ScheduledTime: "soon", Status: "FAILED"},
	}

	events := ProjectAll(posts, time.UTC)
	require.Len(t, events, 3)
	for _, e := range events {
		assert.True(t, e.Start.Equal(e.End), "event %d", e.ID)
		assert.False(t, e.AllDay)
	}

	assert.Equal(t, "Hello", events[0].Title)
	assert.Equal(t, time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC), events[0].Start)
	assert.Equal(t, ColorScheduled, events[0].Color)
	assert.True(t, events[0].HasLocation())

	assert.Equal(t, ColorUnknown, events[1].Color)
	assert.False(t, events[1].HasLocation())

	assert.True(t, events[2].Start.IsZero())
	assert.Equal(t, ColorFailed, events[2].Color)
}

func TestBuildMonth(t *testing.T) {
	first := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	events := []models.Event{
		{ID: 2, Title: "late", Start: time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)},
		{ID: 1, Title: "early", Start: time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)},
		{ID: 3, Title: "undated"},
	}

	m := BuildMonth(first, events, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "June 2024", m.Label)
	assert.Equal(t, "2024-05", m.Prev)
	assert.Equal(t, "2024-07", m.Next)

	// June 2024 starts on a Saturday: Mon 27 May .. Sun 30 June.
	require.Len(t, m.Weeks, 5)
	assert.Equal(t, 27, m.Weeks[0][0].Date.Day())
	assert.False(t, m.Weeks[0][0].InMonth)

	june1 := m.Weeks[0][5]
	assert.Equal(t, 1, june1.Date.Day())
	assert.True(t, june1.InMonth)
	require.Len(t, june1.Events, 2)
	assert.Equal(t, "early", june1.Events[0].Title)
	assert.Equal(t, "late", june1.Events[1].Title)

	assert.True(t, m.Weeks[2][5].Today)
}

func TestParseMonth(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), ParseMonth("2024-02", now, time.UTC))
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), ParseMonth("junk", now, time.UTC))
}

func TestExportICS(t *testing.T) {
	lat, lng := 40.7, -74.0
	events := ProjectAll([]models.Post{
		{ID: 1, Content: "Hello", ScheduledTime: "2024-06-01T09:30:00Z", Status: "SCHEDULED", Latitude: &lat, Longitude: &lng},
		{ID: 2, Content: "Bye", ScheduledTime: "2024-06-02T10:00:00Z", Status: "POSTED"},
	}, time.UTC)

	out := ExportICS(events, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "SUMMARY:Hello")
	assert.Contains(t, out, "post-1@postdeck")
	assert.Contains(t, out, "GEO:40.7")
}
