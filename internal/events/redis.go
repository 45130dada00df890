package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/saulo-duarte/chronos-quiz/internal/config"
)

const DefaultChannel = "quiz-events"

type redisPublisher struct {
	rdb     *redis.Client
	channel string
}

func NewRedisPublisher(rdb *redis.Client, channel string) Publisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &redisPublisher{rdb: rdb, channel: channel}
}

func (p *redisPublisher) Publish(ctx context.Context, e Event) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	if err := p.rdb.Publish(ctx, p.channel, raw).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}
	return nil
}

func (p *redisPublisher) Close() error {
	return p.rdb.Close()
}

// FromSettings connects to REDIS_ADDR, or returns a no-op publisher when it
// is unset.
func FromSettings(ctx context.Context, s config.Settings) (Publisher, error) {
	if s.RedisAddr == "" {
		config.Logger.Info("REDIS_ADDR not set, domain events disabled")
		return NewNoopPublisher(), nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        s.RedisAddr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	config.Logger.WithField("channel", s.RedisChannel).Info("Publishing domain events to redis")
	return NewRedisPublisher(rdb, s.RedisChannel), nil
}

// Emit publishes e and logs, rather than returns, any failure.
func Emit(ctx context.Context, p Publisher, e Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, e); err != nil {
		config.WithContext(ctx).WithError(err).WithField("event", e.Type).Warn("Failed to publish event")
	}
}
