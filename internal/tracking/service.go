package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const (
	cacheKeyPrefix = "tracking:snapshot:"
	recentKey      = "tracking:recent"
	recentTTL      = 48 * time.Hour
)

// Tracker abstracts the carrier client for tests.
type Tracker interface {
	Track(ctx context.Context, trackingNumber string) (*Info, error)
}

// Service fronts the carrier client with a Redis cache and collapses
// concurrent lookups for the same number into one upstream call.
type Service struct {
	tracker Tracker
	cache   *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
	group   singleflight.Group
}

func NewService(tracker Tracker, cache *redis.Client, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{tracker: tracker, cache: cache, ttl: ttl, logger: logger}
}

// Lookup returns the tracking snapshot, from cache when fresh.
func (s *Service) Lookup(ctx context.Context, trackingNumber string) (*Info, error) {
	if s.cache != nil {
		payload, err := s.cache.Get(ctx, cacheKeyPrefix+trackingNumber).Bytes()
		if err == nil {
			var info Info
			if err := json.Unmarshal(payload, &info); err == nil {
				return &info, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("tracking cache read", slog.Any("error", err))
		}
	}

	ch := s.group.DoChan(trackingNumber, func() (interface{}, error) {
		return s.Refresh(context.WithoutCancel(ctx), trackingNumber)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Info), nil
	}
}

// Refresh fetches from the carrier unconditionally and rewrites the
// cached snapshot. The background refresh job uses this path too.
func (s *Service) Refresh(ctx context.Context, trackingNumber string) (*Info, error) {
	info, err := s.tracker.Track(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if payload, err := json.Marshal(info); err == nil {
			if err := s.cache.Set(ctx, cacheKeyPrefix+trackingNumber, payload, s.ttl).Err(); err != nil {
				s.logger.Warn("tracking cache write", slog.Any("error", err))
			}
		}
		// Remember in-flight shipments so the refresh job can re-warm them.
		if info.Status != "DELIVERED" {
			pipe := s.cache.Pipeline()
			pipe.SAdd(ctx, recentKey, trackingNumber)
			pipe.Expire(ctx, recentKey, recentTTL)
			if _, err := pipe.Exec(ctx); err != nil {
				s.logger.Warn("tracking recent set", slog.Any("error", err))
			}
		} else {
			if err := s.cache.SRem(ctx, recentKey, trackingNumber).Err(); err != nil {
				s.logger.Warn("tracking recent trim", slog.Any("error", err))
			}
		}
	}
	return info, nil
}

// Recent lists tracking numbers looked up lately that were not yet
// delivered, capped at limit.
func (s *Service) Recent(ctx context.Context, limit int) ([]string, error) {
	if s.cache == nil {
		return nil, nil
	}
	numbers, err := s.cache.SMembers(ctx, recentKey).Result()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(numbers) > limit {
		numbers = numbers[:limit]
	}
	return numbers, nil
}
