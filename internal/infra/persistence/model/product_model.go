package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table. Variant and gallery lists are jsonb arrays.
type ProductModel struct {
	ID             uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ShopID         uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Name           string                      `gorm:"type:varchar(200);not null"`
	Description    string                      `gorm:"type:text;not null;default:''"`
	Price          decimal.Decimal             `gorm:"type:numeric(12,2);not null"`
	CompareAtPrice decimal.NullDecimal         `gorm:"type:numeric(12,2)"`
	Category       string                      `gorm:"type:varchar(80);not null;default:'';index"`
	ImageURL       string                      `gorm:"type:text;not null;default:''"`
	Images         datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	StockQuantity  int                         `gorm:"not null;default:0;check:stock_quantity >= 0"`
	IsActive       bool                        `gorm:"not null"`
	Sizes          datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	Colors         datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	Rating         float64                     `gorm:"type:decimal(3,2);not null;default:0"`
	TotalReviews   int                         `gorm:"not null;default:0"`
	CreatedAt      time.Time                   `gorm:"index"`
	UpdatedAt      time.Time

	Shop *ShopModel `gorm:"foreignKey:ShopID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
