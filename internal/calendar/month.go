package calendar

import (
	"sort"
	"time"

	"github.com/maheshrc27/postdeck/internal/models"
)

const MonthLayout = "2006-01"

type Day struct {
	Date    time.Time
	InMonth bool
	Today   bool
	Events  []models.Event
}

type Month struct {
	First time.Time
	Label string
	Prev  string
	Next  string
	Weeks [][]Day
}

// ParseMonth reads a YYYY-MM value in loc, falling back to the month of now.
func ParseMonth(value string, now time.Time, loc *time.Location) time.Time {
	if t, err := time.ParseInLocation(MonthLayout, value, loc); err == nil {
		return t
	}
	now = now.In(loc)
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
}

// BuildMonth lays out the weeks (Monday first) that cover the month of
// first and drops every event onto the day it starts.
func BuildMonth(first time.Time, events []models.Event, now time.Time) Month {
	loc := first.Location()
	first = time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, loc)
	now = now.In(loc)

	byDay := make(map[string][]models.Event)
	for _, e := range events {
		if e.Start.IsZero() {
			continue
		}
		key := e.Start.In(loc).Format(time.DateOnly)
		byDay[key] = append(byDay[key], e)
	}
	for _, list := range byDay {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Start.Before(list[j].Start) })
	}

	offset := (int(first.Weekday()) + 6) % 7
	cursor := first.AddDate(0, 0, -offset)
	last := first.AddDate(0, 1, -1)

	m := Month{
		First: first,
		Label: first.Format("January 2006"),
		Prev:  first.AddDate(0, -1, 0).Format(MonthLayout),
		Next:  first.AddDate(0, 1, 0).Format(MonthLayout),
	}
	for !cursor.After(last) {
		week := make([]Day, 7)
		for i := range week {
			key := cursor.Format(time.DateOnly)
			week[i] = Day{
				Date:    cursor,
				InMonth: cursor.Month() == first.Month(),
				Today:   key == now.Format(time.DateOnly),
				Events:  byDay[key],
			}
			cursor = cursor.AddDate(0, 0, 1)
		}
		m.Weeks = append(m.Weeks, week)
	}
	return m
}
