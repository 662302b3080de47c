package postgres

import (
	"context"

	"bazaar/internal/errors"
	"bazaar/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Statements AutoMigrate cannot express through struct tags.
var postMigrationStatements = []string{
	// One default address per account.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_addresses_one_default ON addresses (user_id) WHERE is_default`,
	`CREATE INDEX IF NOT EXISTS idx_products_public ON products (created_at DESC) WHERE is_active`,
}

// Migrate creates or updates every table, index and constraint of the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	if err := tx.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate schema")
	}

	for _, stmt := range postMigrationStatements {
		if err := tx.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "failed to execute migration statement %q", stmt)
		}
	}

	return nil
}
