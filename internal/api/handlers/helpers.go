package handlers

import "github.com/maheshrc27/postdeck/internal/models"

// valueFunc matches both fiber.Ctx.Query and fiber.Ctx.FormValue.
type valueFunc func(key string, defaultValue ...string) string

func draftFrom(get valueFunc) models.Draft {
	return models.Draft{
		Content:       get("content"),
		ScheduledDate: get("scheduledDate"),
		ScheduledTime: get("scheduledTime"),
		Location:      get("location"),
		ImageURL:      get("imageUrl"),
	}
}
