package service

import "bazaar/internal/domain/entity"

// OrderMap is the map view of an order: a GeoJSON FeatureCollection plus the
// straight-line distance between shop and delivery point when both are known.
type OrderMap struct {
	GeoJSON    []byte
	DistanceKm *float64
}

// MapService builds map views for orders.
type MapService interface {
	// BuildOrderMap places the delivery marker and, when the shop has coordinates, the shop marker.
	// Returns nil when the order has no delivery coordinates.
	BuildOrderMap(order *entity.Order, shop *entity.Shop) (*OrderMap, error)
}
