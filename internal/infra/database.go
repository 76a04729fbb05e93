package infra

import (
	"fmt"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate
// to create / update all tables, then applies the idempotent SQL patches that
// GORM cannot express (partial indexes, CHECK constraints).
//
// TranslateError is on so unique-constraint violations surface as
// gorm.ErrDuplicatedKey; the order-number retry and SKU checks depend on it.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations applies AutoMigrate plus the schema patches.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Category{},
		&model.Supplier{},
		&model.UserProfile{},
		&model.InventoryItem{},
		&model.InventoryTransaction{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot fully handle
// on its own. Each statement uses IF NOT EXISTS semantics so re-running on an
// already-patched DB is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Partial index for the low-stock sweep and dashboard count.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_items_low_stock') THEN
		    CREATE INDEX idx_items_low_stock
		        ON inventory_items (quantity)
		        WHERE quantity <= min_quantity;
		  END IF;
		END $$`,
		// Audit rows never go negative on either side of a change.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_transactions_nonnegative') THEN
		    ALTER TABLE inventory_transactions
		      ADD CONSTRAINT chk_transactions_nonnegative
		      CHECK (previous_quantity >= 0 AND new_quantity >= 0);
		  END IF;
		END $$`,
		// Transaction list is always read newest-first with the item joined.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_transactions_created_at') THEN
		    CREATE INDEX idx_transactions_created_at
		        ON inventory_transactions (created_at DESC);
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
