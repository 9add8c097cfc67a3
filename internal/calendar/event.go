// Package calendar projects posts onto calendar events and lays them out by month.
package calendar

import (
	"time"

	"github.com/maheshrc27/postdeck/internal/models"
)

const (
	ColorScheduled = "bg-blue-500"
	ColorPosted    = "bg-green-500"
	ColorFailed    = "bg-red-500"
	ColorUnknown   = "bg-gray-500"
)

// ColorFor maps a post status to its event color. Unknown statuses are gray.
func ColorFor(status string) string {
	switch status {
	case models.PostStatusScheduled:
		return ColorScheduled
	case models.PostStatusPosted:
		return ColorPosted
	case models.PostStatusFailed:
		return ColorFailed
	default:
		return ColorUnknown
	}
}

// Project turns a post into a zero-duration event. An unparseable scheduled
// time leaves Start and End zero, which keeps the event off every month grid.
func Project(post models.Post, loc *time.Location) models.Event {
	start, _ := models.ParseScheduledTime(post.ScheduledTime, loc)
	return models.Event{
		ID:        post.ID,
		Title:     post.Content,
		Start:     start,
		End:       start,
		AllDay:    false,
		Color:     ColorFor(post.Status),
		Status:    post.Status,
		Platform:  post.Platform,
		ImageURL:  post.ImageURL,
		Latitude:  post.Latitude,
		Longitude: post.Longitude,
	}
}

func ProjectAll(posts []models.Post, loc *time.Location) []models.Event {
	events := make([]models.Event, 0, len(posts))
	for _, p := range posts {
		events = append(events, Project(p, loc))
	}
	return events
}
