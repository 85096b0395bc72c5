package scores

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finlab/finance-engine/internal/game"
)

// CachedStore wraps a primary Store (PostgreSQL) with a Redis read-through
// cache. Score writes go to the primary and invalidate the cached value;
// reads check Redis first then fall back to the primary.
type CachedStore struct {
	primary Store
	rdb     *redis.Client
	ttl     time.Duration
}

// NewCachedStore creates a cached wrapper around a primary store.
func NewCachedStore(primary Store, rdb *redis.Client, ttl time.Duration) *CachedStore {
	return &CachedStore{primary: primary, rdb: rdb, ttl: ttl}
}

func (s *CachedStore) BestScore(ctx context.Context, kind game.Kind) (int64, error) {
	if val, err := s.rdb.Get(ctx, scoreKey(kind)).Result(); err == nil {
		if score, err := strconv.ParseInt(val, 10, 64); err == nil {
			return score, nil
		}
	}

	score, err := s.primary.BestScore(ctx, kind)
	if err != nil {
		return 0, err
	}
	s.rdb.Set(ctx, scoreKey(kind), strconv.FormatInt(score, 10), s.ttl)
	return score, nil
}

// BestScores is not cached; it backs a single summary view.
func (s *CachedStore) BestScores(ctx context.Context) (map[game.Kind]int64, error) {
	return s.primary.BestScores(ctx)
}

func (s *CachedStore) RecordScore(ctx context.Context, kind game.Kind, score int64) (bool, error) {
	improved, err := s.primary.RecordScore(ctx, kind, score)
	if err != nil {
		return false, err
	}
	if improved {
		// Invalidate; next read re-populates from the primary.
		s.rdb.Del(ctx, scoreKey(kind))
	}
	return improved, nil
}

func (s *CachedStore) Theme(ctx context.Context) (string, error) {
	if theme, err := s.rdb.Get(ctx, themeKey).Result(); err == nil && theme != "" {
		return theme, nil
	}

	theme, err := s.primary.Theme(ctx)
	if err != nil {
		return "", err
	}
	s.rdb.Set(ctx, themeKey, theme, s.ttl)
	return theme, nil
}

func (s *CachedStore) SetTheme(ctx context.Context, theme string) error {
	if err := s.primary.SetTheme(ctx, theme); err != nil {
		return err
	}
	s.rdb.Del(ctx, themeKey)
	return nil
}

const themeKey = "pref:theme"

func scoreKey(kind game.Kind) string { return fmt.Sprintf("best:%s", kind) }
