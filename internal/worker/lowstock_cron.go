package worker

// lowstock_cron.go
// Background goroutine that periodically sweeps the inventory for items at
// or below their minimum quantity and enqueues alert jobs for them. The
// alert worker's per-item-per-day dedup keeps the sweep from re-mailing;
// the sweep's job is catching items that went low while alerting was down
// or that were low at startup.

import (
	"context"
	"time"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/repository"

	"github.com/rs/zerolog/log"
)

const sweepInterval = 1 * time.Hour

// LowStockCronConfig holds the dependencies for the sweep goroutine.
type LowStockCronConfig struct {
	ItemRepo   repository.ItemRepository
	Dispatcher *Dispatcher
}

// StartLowStockCron launches a background goroutine that ticks every hour
// and enqueues a low-stock alert job per item under threshold.
// It respects the context for graceful shutdown.
func StartLowStockCron(ctx context.Context, cfg LowStockCronConfig) {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()

		log.Info().Msg("lowstock_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("lowstock_cron: shutting down")
				return
			case <-ticker.C:
				sweep(ctx, cfg)
			}
		}
	}()
}

func sweep(ctx context.Context, cfg LowStockCronConfig) {
	items, err := cfg.ItemRepo.ListAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("lowstock_cron: failed to list items")
		return
	}

	enqueued := 0
	for i := range items {
		item := &items[i]
		if !item.IsLowStock() {
			continue
		}
		err := cfg.Dispatcher.EnqueueLowStockAlert(ctx, LowStockAlertPayload{
			ItemID:   item.ID.String(),
			ItemName: item.Name,
			SKU:      item.SKU,
			Quantity: item.Quantity,
			MinQty:   item.MinQuantity,
		})
		if err != nil {
			log.Error().Err(err).Str("item_id", item.ID.String()).Msg("lowstock_cron: failed to enqueue alert")
			continue
		}
		enqueued++
	}

	if enqueued > 0 {
		log.Info().Int("count", enqueued).Msg("lowstock_cron: low-stock alerts enqueued")
	}
}
