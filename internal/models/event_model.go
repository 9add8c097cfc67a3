package models

import "time"

// Event is the calendar projection of one Post. Events are rebuilt on every
// fetch and only patched in place after an edit.
type Event struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	AllDay    bool      `json:"allDay"`
	Color     string    `json:"color"`
	Status    string    `json:"status"`
	Platform  string    `json:"platform,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
}

// HasLocation reports whether both coordinates are known.
func (e Event) HasLocation() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// CalendarView is the per-session state of the calendar page.
type CalendarView struct {
	Events    []Event   `json:"events"`
	Selected  *int64    `json:"selected,omitempty"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Find returns the index of the event with id, or -1.
func (v *CalendarView) Find(id int64) int {
	for i := range v.Events {
		if v.Events[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone copies the view so callers can mutate it without aliasing a cache.
func (v *CalendarView) Clone() *CalendarView {
	out := &CalendarView{FetchedAt: v.FetchedAt}
	if v.Events != nil {
		out.Events = make([]Event, len(v.Events))
		copy(out.Events, v.Events)
	}
	if v.Selected != nil {
		id := *v.Selected
		out.Selected = &id
	}
	return out
}
