package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// RedisDispatcher pushes JSON jobs onto per-kind Redis lists named
// "<prefix>:<kind>". Workers are expected to BRPOP from the other end.
type RedisDispatcher struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisDispatcher connects to Redis and verifies the connection with PING.
func NewRedisDispatcher(ctx context.Context, cfg RedisConfig) (*RedisDispatcher, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &RedisDispatcher{client: rdb, prefix: cfg.Prefix, now: time.Now}, nil
}

// QueueName returns the list key jobs of kind are pushed to.
func (d *RedisDispatcher) QueueName(kind Kind) string {
	return d.prefix + ":" + string(kind)
}

func (d *RedisDispatcher) Dispatch(ctx context.Context, kind Kind) (string, error) {
	job := Job{
		ID:          uuid.NewString(),
		Kind:        kind,
		RequestedAt: d.now().UTC(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		return "", err
	}

	if err := d.client.LPush(ctx, d.QueueName(kind), data).Err(); err != nil {
		return "", fmt.Errorf("enqueue %s job: %w", kind, err)
	}

	return job.ID, nil
}

func (d *RedisDispatcher) Close() error {
	return d.client.Close()
}
