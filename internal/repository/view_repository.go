package repository

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/maheshrc27/postdeck/internal/models"
)

// ViewRepository keeps the calendar view state of each session.
type ViewRepository interface {
	Get(ctx context.Context, sessionID string) (*models.CalendarView, bool, error)
	Put(ctx context.Context, sessionID string, view *models.CalendarView) error
	Delete(ctx context.Context, sessionID string) error
}

type viewEntry struct {
	view      *models.CalendarView
	expiresAt time.Time
}

// MemoryViewRepository holds view state in process memory. Entries expire
// ttl after their last write and are dropped by Sweep.
type MemoryViewRepository struct {
	mu      sync.RWMutex
	entries map[string]viewEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryViewRepository(ttl time.Duration) *MemoryViewRepository {
	return &MemoryViewRepository{
		entries: make(map[string]viewEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (r *MemoryViewRepository) Get(ctx context.Context, sessionID string) (*models.CalendarView, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[sessionID]
	if !ok || r.now().After(entry.expiresAt) {
		return nil, false, nil
	}
	return entry.view.Clone(), true, nil
}

func (r *MemoryViewRepository) Put(ctx context.Context, sessionID string, view *models.CalendarView) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[sessionID] = viewEntry{view: view.Clone(), expiresAt: r.now().Add(r.ttl)}
	return nil
}

func (r *MemoryViewRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, sessionID)
	return nil
}

// Sweep drops every entry that expired before now and returns how many went.
func (r *MemoryViewRepository) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, entry := range r.entries {
		if now.After(entry.expiresAt) {
			delete(r.entries, id)
			removed++
		}
	}
	if removed > 0 {
		slog.Info("swept expired calendar views", "count", removed)
	}
	return removed
}
