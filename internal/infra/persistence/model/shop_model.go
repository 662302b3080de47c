package model

import (
	"time"

	"github.com/google/uuid"
)

// ShopModel mirrors the 'shops' table. owner_id is unique: one shop per owner.
type ShopModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(120);not null"`
	Description  string    `gorm:"type:text;not null;default:''"`
	LogoURL      string    `gorm:"type:text;not null;default:''"`
	BannerURL    string    `gorm:"type:text;not null;default:''"`
	Phone        string    `gorm:"type:varchar(32);not null;default:''"`
	Email        string    `gorm:"type:varchar(255);not null;default:''"`
	Address      string    `gorm:"type:text;not null;default:''"`
	Latitude     *float64  `gorm:"type:decimal(10,8)"`
	Longitude    *float64  `gorm:"type:decimal(11,8)"`
	IsActive     bool      `gorm:"not null;default:false;index:idx_shops_visibility"`
	Approved     bool      `gorm:"not null;default:false;index:idx_shops_visibility"`
	Rating       float64   `gorm:"type:decimal(3,2);not null;default:0"`
	TotalReviews int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}
