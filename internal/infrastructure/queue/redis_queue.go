package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"storehub-server/internal/config"
	"storehub-server/internal/domain/media"
	"storehub-server/internal/infrastructure/metrics"
)

const consumePollInterval = 2 * time.Second

// RedisQueue is a Queue backend on top of a Redis list pair. Publishing is
// LPUSH onto the pending list; Consume moves the oldest envelope into the
// processing list with BRPOPLPUSH so a crash between consume and ack leaves
// the envelope recoverable; Ack removes it from the processing list.
type RedisQueue struct {
	client        *redis.Client
	pendingKey    string
	processingKey string
	log           zerolog.Logger
}

func NewRedisQueue(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*RedisQueue, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisQueue{
		client:        client,
		pendingKey:    cfg.RedisKey,
		processingKey: cfg.RedisKey + ":processing",
		log:           log.With().Str("component", "redis-queue").Logger(),
	}, nil
}

// RecoverPending moves envelopes left in the processing list by a previous
// crashed run back onto the pending list. Call once at startup, before the
// worker pool starts consuming.
func (q *RedisQueue) RecoverPending(ctx context.Context) (int, error) {
	recovered := 0
	for {
		err := q.client.RPopLPush(ctx, q.processingKey, q.pendingKey).Err()
		if errors.Is(err, redis.Nil) {
			break
		}
		if err != nil {
			return recovered, fmt.Errorf("recover pending envelope: %w", err)
		}
		recovered++
	}
	if recovered > 0 {
		q.log.Info().Int("count", recovered).Msg("requeued envelopes from previous run")
	}
	return recovered, nil
}

func (q *RedisQueue) PublishUpload(ctx context.Context, job media.UploadJob) error {
	return q.push(ctx, newUploadEnvelope(job))
}

func (q *RedisQueue) PublishDeletion(ctx context.Context, job media.DeletionJob) error {
	return q.push(ctx, newDeletionEnvelope(job))
}

func (q *RedisQueue) push(ctx context.Context, env *Envelope) error {
	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	if err := q.client.LPush(ctx, q.pendingKey, raw).Err(); err != nil {
		return fmt.Errorf("push envelope: %w", err)
	}
	if depth, err := q.client.LLen(ctx, q.pendingKey).Result(); err == nil {
		metrics.QueueDepth.Set(float64(depth))
	}
	return nil
}

func (q *RedisQueue) Consume(ctx context.Context) (*Envelope, error) {
	for {
		raw, err := q.client.BRPopLPush(ctx, q.pendingKey, q.processingKey, consumePollInterval).Result()
		if errors.Is(err, redis.Nil) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
				continue
			}
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("consume envelope: %w", err)
		}

		var env Envelope
		if err := json.Unmarshal([]byte(raw), &env); err != nil {
			// Drop poison entries so they do not wedge the list.
			q.client.LRem(ctx, q.processingKey, 1, raw)
			q.log.Error().Err(err).Msg("discarding undecodable envelope")
			continue
		}
		return &env, nil
	}
}

func (q *RedisQueue) Ack(ctx context.Context, env *Envelope) error {
	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	if err := q.client.LRem(ctx, q.processingKey, 1, raw).Err(); err != nil {
		return fmt.Errorf("ack envelope: %w", err)
	}
	return nil
}

func (q *RedisQueue) Depth(ctx context.Context) (int64, error) {
	depth, err := q.client.LLen(ctx, q.pendingKey).Result()
	if err != nil {
		return 0, fmt.Errorf("queue depth: %w", err)
	}
	return depth, nil
}

func (q *RedisQueue) Close() error {
	return q.client.Close()
}
