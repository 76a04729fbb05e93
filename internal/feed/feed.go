// Package feed carries per-table change notifications over Redis pub/sub.
// Every successful write publishes an event on "changes:<table>"; subscribers
// react by re-fetching the owning view-model's whole list. Events carry no row
// payload on purpose — the contract is "something changed, re-fetch", so
// multiple rapid events coalescing into one re-fetch race is fine.
package feed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const channelPrefix = "changes:"

// Operations mirrored from the store's notification feed.
const (
	OpInsert = "INSERT"
	OpUpdate = "UPDATE"
	OpDelete = "DELETE"
)

// Event is the wire shape of one change notification.
type Event struct {
	Table string    `json:"table"`
	Op    string    `json:"op"`
	RowID uuid.UUID `json:"row_id"`
	At    time.Time `json:"at"`
}

// Publisher emits change events after successful writes. Publishing is
// best-effort: a down feed never fails the write that triggered it.
type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher { return &Publisher{rdb: rdb} }

func (p *Publisher) Publish(ctx context.Context, table, op string, rowID uuid.UUID) {
	if p == nil || p.rdb == nil {
		return
	}
	ev := Event{Table: table, Op: op, RowID: rowID, At: time.Now().UTC()}
	data, err := json.Marshal(ev)
	if err != nil {
		log.Error().Err(err).Str("table", table).Msg("feed: marshal event")
		return
	}
	if err := p.rdb.Publish(ctx, channelPrefix+table, data).Err(); err != nil {
		log.Warn().Err(err).Str("table", table).Msg("feed: publish failed")
	}
}

// Reloader is the piece of a view-model the subscriber needs: an idempotent
// whole-list refresh.
type Reloader interface {
	Load(ctx context.Context) error
}

// Subscriber opens one long-lived subscription per watched table and triggers
// a full re-fetch on any event, regardless of which client made the change.
type Subscriber struct {
	rdb *redis.Client
}

func NewSubscriber(rdb *redis.Client) *Subscriber { return &Subscriber{rdb: rdb} }

// Watch subscribes to table's channel and re-runs r.Load on every event until
// ctx is cancelled. The last Load to complete wins the cache, which is
// acceptable because Load always replaces the whole list.
func (s *Subscriber) Watch(ctx context.Context, table string, r Reloader) {
	if s == nil || s.rdb == nil {
		return
	}
	sub := s.rdb.Subscribe(ctx, channelPrefix+table)
	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var ev Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					log.Warn().Err(err).Str("table", table).Msg("feed: bad event payload")
					continue
				}
				if err := r.Load(ctx); err != nil {
					log.Warn().Err(err).Str("table", table).Msg("feed: reload failed")
				}
			}
		}
	}()
}
