package repository

import (
	"context"
	"testing"
	"time"

	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryViewRepositoryCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryViewRepository(time.Hour)

	view := &models.CalendarView{Events: []models.Event{{ID: 1, Title: "Hello"}}}
	require.NoError(t, repo.Put(ctx, "s1", view))
	view.Events[0].Title = "mutated after put"

	got, ok, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Hello", got.Events[0].Title)

	got.Events[0].Title = "mutated after get"
	again, _, _ := repo.Get(ctx, "s1")
	assert.Equal(t, "Hello", again.Events[0].Title)

	_, ok, err = repo.Get(ctx, "other")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryViewRepositoryExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := NewMemoryViewRepository(time.Hour)
	repo.now = func() time.Time { return now }

	require.NoError(t, repo.Put(ctx, "old", &models.CalendarView{}))
	now = now.Add(45 * time.Minute)
	require.NoError(t, repo.Put(ctx, "fresh", &models.CalendarView{}))
	now = now.Add(30 * time.Minute)

	_, ok, _ := repo.Get(ctx, "old")
	assert.False(t, ok)
	_, ok, _ = repo.Get(ctx, "fresh")
	assert.True(t, ok)

	assert.Equal(t, 1, repo.Sweep(now))
	assert.Equal(t, 0, repo.Sweep(now))
}

func TestMemoryViewRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryViewRepository(time.Hour)
	require.NoError(t, repo.Put(ctx, "s1", &models.CalendarView{}))
	require.NoError(t, repo.Delete(ctx, "s1"))

	_, ok, _ := repo.Get(ctx, "s1")
	assert.False(t, ok)
}
