package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. Delivery and customer columns are snapshots.
type OrderModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	ShopID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderNumber       string          `gorm:"type:varchar(40);not null;uniqueIndex"`
	Status            string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	Subtotal          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ShippingFee       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalAmount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMethod     string          `gorm:"type:varchar(20);not null"`
	PaymentStatus     string          `gorm:"type:varchar(20);not null;default:'pending'"`
	DeliveryName      string          `gorm:"type:varchar(120);not null"`
	DeliveryPhone     string          `gorm:"type:varchar(32);not null"`
	DeliveryAddress   string          `gorm:"type:text;not null"`
	DeliveryLatitude  *float64        `gorm:"type:decimal(10,8)"`
	DeliveryLongitude *float64        `gorm:"type:decimal(11,8)"`
	CustomerName      string          `gorm:"type:varchar(120);not null;default:''"`
	CustomerPhone     string          `gorm:"type:varchar(32);not null;default:''"`
	CustomerEmail     string          `gorm:"type:varchar(255);not null;default:''"`
	Notes             string          `gorm:"type:text;not null;default:''"`
	CreatedAt         time.Time       `gorm:"index"`
	UpdatedAt         time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Shop  *ShopModel       `gorm:"foreignKey:ShopID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Product fields are frozen at placement,
// so product_id carries no foreign key.
type OrderItemModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName  string          `gorm:"type:varchar(200);not null"`
	ProductImage string          `gorm:"type:text;not null;default:''"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity     int             `gorm:"not null;check:quantity >= 1"`
	Size         string          `gorm:"type:varchar(40);not null;default:''"`
	Color        string          `gorm:"type:varchar(40);not null;default:''"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
