package models

import "strings"

// Draft is the working copy of the post creation form.
type Draft struct {
	Content       string
	ScheduledDate string
	ScheduledTime string
	Location      string
	ImageURL      string
}

// Complete reports whether every required field holds a value. ImageURL is optional.
func (d *Draft) Complete() bool {
	for _, v := range []string{d.Content, d.ScheduledDate, d.ScheduledTime, d.Location} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// Reset empties every field.
func (d *Draft) Reset() {
	*d = Draft{}
}

// Image is one image-search result.
type Image struct {
	ID           string
	ThumbnailURL string
	URL          string
	Description  string
}
