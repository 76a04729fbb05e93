package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// DLQPrefix namespaces the per-queue dead-letter lists ("dlq:jobs:alerts").
const DLQPrefix = "dlq:"

// DLQEntry preserves a job that ran out of attempts, with enough context to
// requeue it by hand once the underlying failure is fixed.
type DLQEntry struct {
	Queue    string    `json:"queue"`
	Job      Job       `json:"job"`
	Reason   string    `json:"reason"`
	FailedAt time.Time `json:"failed_at"`
}

func sendToDLQ(ctx context.Context, rdb *redis.Client, queue string, job Job, reason string) {
	entry := DLQEntry{
		Queue:    queue,
		Job:      job,
		Reason:   reason,
		FailedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: marshal entry")
		return
	}
	if err := rdb.LPush(ctx, DLQPrefix+queue, data).Err(); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: push failed")
		return
	}
	log.Warn().Str("queue", queue).Str("type", job.Type).Int("attempts", job.Attempts).
		Str("reason", reason).Msg("dlq: job gave up")
}

// DLQLength reports the size of a queue's dead-letter list, for monitoring.
func DLQLength(ctx context.Context, rdb *redis.Client, queue string) (int64, error) {
	return rdb.LLen(ctx, DLQPrefix+queue).Result()
}
