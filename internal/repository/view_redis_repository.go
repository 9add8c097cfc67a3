package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/redis/go-redis/v9"
)

const viewKeyPrefix = "postdeck:view:"

type redisViewRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisViewRepository stores view state in Redis with ttl as the key expiry.
func NewRedisViewRepository(rdb *redis.Client, ttl time.Duration) ViewRepository {
	return &redisViewRepository{rdb: rdb, ttl: ttl}
}

func (r *redisViewRepository) Get(ctx context.Context, sessionID string) (*models.CalendarView, bool, error) {
	data, err := r.rdb.Get(ctx, viewKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}

	var view models.CalendarView
	if err := json.Unmarshal(data, &view); err != nil {
		slog.Info(err.Error())
		return nil, false, err
	}
	return &view, true, nil
}

func (r *redisViewRepository) Put(ctx context.Context, sessionID string, view *models.CalendarView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return err
	}

	if err := r.rdb.Set(ctx, viewKeyPrefix+sessionID, data, r.ttl).Err(); err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *redisViewRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.rdb.Del(ctx, viewKeyPrefix+sessionID).Err(); err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
