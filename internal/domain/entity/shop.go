package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShopState is the lifecycle state derived from a shop's approval and activity flags.
type ShopState string

const (
	// ShopStateCreated is a freshly inserted shop awaiting admin review.
	ShopStateCreated ShopState = "created"
	// ShopStateApproved is an approved, active shop whose products are publicly visible.
	ShopStateApproved ShopState = "approved"
	// ShopStateDeactivated is an approved shop an admin switched off.
	ShopStateDeactivated ShopState = "deactivated"
)

// Shop is a storefront owned by exactly one shop_owner account.
type Shop struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Description  string
	LogoURL      string
	BannerURL    string
	Phone        string
	Email        string
	Address      string
	Latitude     *float64
	Longitude    *float64
	IsActive     bool
	Approved     bool
	Rating       float64
	TotalReviews int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// State derives the lifecycle state from the stored flags.
func (s *Shop) State() ShopState {
	switch {
	case !s.Approved:
		return ShopStateCreated
	case s.IsActive:
		return ShopStateApproved
	default:
		return ShopStateDeactivated
	}
}

// IsPubliclyVisible reports whether the shop and its active products may appear in public listings.
func (s *Shop) IsPubliclyVisible() bool {
	return s.IsActive && s.Approved
}

// IsOwnedBy reports whether the given account owns the shop.
func (s *Shop) IsOwnedBy(userID uuid.UUID) bool {
	return s.OwnerID == userID
}

// CanBeManagedBy reports whether the actor may mutate the shop's catalog and orders.
func (s *Shop) CanBeManagedBy(actor Actor) bool {
	return actor.IsAdmin() || s.IsOwnedBy(actor.UserID)
}

// Approve sets both approval and activity. It reports whether anything changed,
// so approving an already approved, active shop is a no-op.
func (s *Shop) Approve() bool {
	if s.Approved && s.IsActive {
		return false
	}
	s.Approved = true
	s.IsActive = true

	return true
}

// Deactivate hides an approved shop without revoking its approval.
// It reports whether anything changed.
func (s *Shop) Deactivate() bool {
	if !s.IsActive {
		return false
	}
	s.IsActive = false

	return true
}

// HasLocation reports whether both coordinates are set.
func (s *Shop) HasLocation() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// ShopWithOwner is the admin read model: a shop joined with its owner's contact profile.
type ShopWithOwner struct {
	Shop
	OwnerName  string
	OwnerEmail string
	OwnerPhone string
}

// ShopStats aggregates the owner dashboard figures for one shop.
type ShopStats struct {
	ProductCount       int64
	ActiveProductCount int64
	OrderCount         int64
	OngoingOrderCount  int64
	DeliveredRevenue   Money
}
