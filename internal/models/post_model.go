package models

import (
	"fmt"
	"time"
)

// Post is the subset of the server-owned post the client reads and writes.
type Post struct {
	ID            int64    `json:"id"`
	Content       string   `json:"content"`
	Platform      string   `json:"platform"`
	ScheduledTime string   `json:"scheduledTime"`
	Status        string   `json:"status"` // SCHEDULED, POSTED, FAILED, or anything the server adds
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
}

const (
	PostStatusScheduled = "SCHEDULED"
	PostStatusPosted    = "POSTED"
	PostStatusFailed    = "FAILED"
)

// InputTimeLayout is the datetime-local form of a scheduled time.
const InputTimeLayout = "2006-01-02T15:04"

var scheduledTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	InputTimeLayout,
}

// ParseScheduledTime accepts the timestamp shapes the API returns. Values
// without an offset are read in loc.
func ParseScheduledTime(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range scheduledTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized scheduled time %q", value)
}
