package postgres

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder keeps every statement GORM renders so dry runs can be inspected.
type sqlRecorder struct {
	logger.Interface

	mu         sync.Mutex
	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface {
	return r
}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.statements = append(r.statements, sql)
}

// statement returns the first recorded statement with the given prefix.
func (r *sqlRecorder) statement(t *testing.T, prefix string) string {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, sql := range r.statements {
		if strings.HasPrefix(sql, prefix) {
			return sql
		}
	}
	require.Failf(t, "statement not rendered", "no %q statement in %v", prefix, r.statements)

	return ""
}

func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()

	recorder := &sqlRecorder{Interface: logger.Discard}
	db, err := gorm.Open(
		gormpostgres.New(gormpostgres.Config{DSN: "host=localhost user=bazaar dbname=bazaar sslmode=disable"}),
		&gorm.Config{
			DryRun:                 true,
			DisableAutomaticPing:   true,
			SkipDefaultTransaction: true,
			Logger:                 recorder,
		},
	)
	require.NoError(t, err)

	return db, recorder
}

func TestCartRepository_Upsert_MergesOnLineKey(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewCartRepository(db)

	line := &entity.CartLine{UserID: uuid.New(), ProductID: uuid.New(), Size: "M", Quantity: 2}
	require.NoError(t, repo.Upsert(context.Background(), line))

	sql := recorder.statement(t, `INSERT INTO "cart_items"`)
	assert.Contains(t, sql, `ON CONFLICT ("user_id","product_id","size","color") DO UPDATE SET`)
	assert.Contains(t, sql, `"quantity"=cart_items.quantity + excluded.quantity`)
	assert.NotContains(t, sql, `"quantity"="excluded"."quantity"`, "a repeated add must sum, not overwrite")
}

func TestProductRepository_ListPublic_RequiresAllVisibilityFlags(t *testing.T) {
	shopID := uuid.New()

	tests := []struct {
		name   string
		filter repository.ProductFilter
		extra  []string
	}{
		{
			name:   "unfiltered",
			filter: repository.ProductFilter{},
		},
		{
			name:   "shop and category",
			filter: repository.ProductFilter{ShopID: &shopID, Category: "tops"},
			extra:  []string{"products.shop_id = '" + shopID.String() + "'", "products.category = 'tops'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, recorder := newDryRunDB(t)
			repo := NewProductRepository(db)

			_, err := repo.ListPublic(context.Background(), tt.filter)
			require.NoError(t, err)

			sql := recorder.statement(t, `SELECT "products"`)
			assert.Contains(t, sql, "JOIN shops ON shops.id = products.shop_id")
			assert.Contains(t, sql, "shops.is_active")
			assert.Contains(t, sql, "shops.approved")
			assert.Contains(t, sql, "products.is_active = true")
			assert.Contains(t, sql, "ORDER BY products.created_at DESC")
			for _, fragment := range tt.extra {
				assert.Contains(t, sql, fragment)
			}
		})
	}
}

func TestProductRepository_DecrementStock_GuardsAgainstOverselling(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewProductRepository(db)

	// A dry run affects no rows, which the repository reports as insufficient stock.
	err := repo.DecrementStock(context.Background(), uuid.New(), 3)
	assert.ErrorIs(t, err, repository.ErrInsufficientStock)

	sql := recorder.statement(t, `UPDATE "products"`)
	assert.Contains(t, sql, `"stock_quantity"=stock_quantity - 3`)
	assert.Contains(t, sql, "stock_quantity >= 3")
}
