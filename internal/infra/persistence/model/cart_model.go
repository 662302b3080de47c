package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItemModel mirrors the 'cart_items' table.
// product_id carries no foreign key so lines survive product deletion and show as unavailable.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_line,priority:1"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_line,priority:2"`
	Size      string    `gorm:"type:varchar(40);not null;default:'';uniqueIndex:idx_cart_items_line,priority:3"`
	Color     string    `gorm:"type:varchar(40);not null;default:'';uniqueIndex:idx_cart_items_line,priority:4"`
	Quantity  int       `gorm:"not null;check:quantity >= 1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
