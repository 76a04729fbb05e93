package worker

// alert_worker.go
// Processes low-stock alert jobs from QueueAlerts. Each alert is emailed to
// the configured recipients at most once per item per day; the dedup window
// lives in Redis so restarts do not re-alert.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const alertDedupTTL = 24 * time.Hour

// AlertMailer sends the low-stock notification. Satisfied by infra.Mailer.
type AlertMailer interface {
	SendLowStockAlert(itemName, sku string, quantity, minQty int) error
}

// AlertWorker processes low-stock alert jobs from QueueAlerts.
type AlertWorker struct {
	mailer AlertMailer
	rdb    *redis.Client
}

func NewAlertWorker(mailer AlertMailer, rdb *redis.Client) *AlertWorker {
	return &AlertWorker{mailer: mailer, rdb: rdb}
}

// Process sends the alert email unless one already went out for this item
// today. The SETNX claim happens before sending, so a send failure inside
// the window is not retried for the same item; that beats double-alerting.
func (w *AlertWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload LowStockAlertPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alert_worker: invalid payload")
		return nil // malformed jobs are not retryable
	}

	dedupKey := fmt.Sprintf("alerted:%s:%s", payload.ItemID, time.Now().Format("2006-01-02"))
	claimed, err := w.rdb.SetNX(ctx, dedupKey, 1, alertDedupTTL).Result()
	if err != nil {
		return fmt.Errorf("alert_worker: dedup check: %w", err)
	}
	if !claimed {
		log.Debug().Str("item_id", payload.ItemID).Msg("alert_worker: already alerted today, skipping")
		return nil
	}

	if err := w.mailer.SendLowStockAlert(payload.ItemName, payload.SKU, payload.Quantity, payload.MinQty); err != nil {
		log.Error().Err(err).Str("item_id", payload.ItemID).Msg("alert_worker: failed to send alert")
		return nil
	}
	log.Info().Str("item_id", payload.ItemID).Str("sku", payload.SKU).
		Int("quantity", payload.Quantity).Msg("alert_worker: low-stock alert sent")
	return nil
}
