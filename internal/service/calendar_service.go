package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/maheshrc27/postdeck/internal/calendar"
	"github.com/maheshrc27/postdeck/internal/gateway"
	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/repository"
	"github.com/maheshrc27/postdeck/internal/transfer"
)

var ErrEventNotFound = errors.New("event is not on the calendar")

type CalendarService interface {
	// Mount fetches the posts and replaces the session's events wholesale.
	Mount(ctx context.Context, gw gateway.Gateway, sessionID string) (*models.CalendarView, error)
	// View returns the cached view, mounting when there is none.
	View(ctx context.Context, gw gateway.Gateway, sessionID string) (*models.CalendarView, error)
	Select(ctx context.Context, sessionID string, eventID int64) (*models.Event, error)
	ClearSelection(ctx context.Context, sessionID string) error
	Save(ctx context.Context, gw gateway.Gateway, sessionID string, eventID int64, content, scheduledTime string) error
	Forget(ctx context.Context, sessionID string) error
}

type calendarService struct {
	vr  repository.ViewRepository
	loc *time.Location
	now func() time.Time
}

func NewCalendarService(vr repository.ViewRepository, loc *time.Location) CalendarService {
	return &calendarService{vr: vr, loc: loc, now: time.Now}
}

func (s *calendarService) Mount(ctx context.Context, gw gateway.Gateway, sessionID string) (*models.CalendarView, error) {
	view := &models.CalendarView{Events: []models.Event{}, FetchedAt: s.now()}

	posts, err := gw.ListScheduledPosts(ctx)
	if err != nil {
		slog.Error("Error fetching posts", "error", err)
	} else {
		view.Events = calendar.ProjectAll(posts, s.loc)
	}

	if err := s.vr.Put(ctx, sessionID, view); err != nil {
		return nil, fmt.Errorf("storing calendar view: %w", err)
	}
	return view, nil
}

func (s *calendarService) View(ctx context.Context, gw gateway.Gateway, sessionID string) (*models.CalendarView, error) {
	view, ok, err := s.vr.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading calendar view: %w", err)
	}
	if !ok {
		return s.Mount(ctx, gw, sessionID)
	}
	return view, nil
}

// Select makes eventID the only selected event.
func (s *calendarService) Select(ctx context.Context, sessionID string, eventID int64) (*models.Event, error) {
	view, ok, err := s.vr.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading calendar view: %w", err)
	}
	if !ok {
		return nil, ErrEventNotFound
	}

	i := view.Find(eventID)
	if i < 0 {
		view.Selected = nil
		if err := s.vr.Put(ctx, sessionID, view); err != nil {
			return nil, err
		}
		return nil, ErrEventNotFound
	}

	view.Selected = &eventID
	if err := s.vr.Put(ctx, sessionID, view); err != nil {
		return nil, err
	}
	event := view.Events[i]
	return &event, nil
}

func (s *calendarService) ClearSelection(ctx context.Context, sessionID string) error {
	view, ok, err := s.vr.Get(ctx, sessionID)
	if err != nil || !ok || view.Selected == nil {
		return err
	}
	view.Selected = nil
	return s.vr.Put(ctx, sessionID, view)
}

// Save sends the edit to the API once and patches the cached event in place.
// Only events already on the calendar can be edited.
func (s *calendarService) Save(ctx context.Context, gw gateway.Gateway, sessionID string, eventID int64, content, scheduledTime string) error {
	view, ok, err := s.vr.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("loading calendar view: %w", err)
	}
	if !ok || view.Find(eventID) < 0 {
		return ErrEventNotFound
	}

	_, err = gw.UpdatePost(ctx, eventID, &transfer.PostUpdate{
		Content:       content,
		ScheduledTime: scheduledTime,
	})
	if err != nil {
		slog.Error("Error updating post", "post_id", eventID, "error", err)
		return err
	}

	// The view may have changed while the update was in flight.
	view, ok, err = s.vr.Get(ctx, sessionID)
	if err != nil || !ok {
		return err
	}
	i := view.Find(eventID)
	if i < 0 {
		return nil
	}

	event := &view.Events[i]
	event.Title = content
	if end, err := models.ParseScheduledTime(scheduledTime, s.loc); err == nil {
		event.End = end
	} else {
		slog.Info("keeping previous end time", "post_id", eventID, "error", err.Error())
	}
	event.Color = calendar.ColorFor(event.Status)

	return s.vr.Put(ctx, sessionID, view)
}

func (s *calendarService) Forget(ctx context.Context, sessionID string) error {
	return s.vr.Delete(ctx, sessionID)
}
