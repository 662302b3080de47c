// Package geo renders order locations as GeoJSON using orb.
package geo

import (
	"math"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
)

// Marker kinds stored in the "kind" feature property.
const (
	MarkerDelivery = "delivery"
	MarkerShop     = "shop"
	RouteLine      = "route"
)

type mapService struct{}

// NewMapService creates the orb-backed map service.
func NewMapService() service.MapService {
	return &mapService{}
}

// BuildOrderMap returns a FeatureCollection with the delivery marker and, when the shop
// has coordinates, a shop marker plus a straight line between them.
func (s *mapService) BuildOrderMap(order *entity.Order, shop *entity.Shop) (*service.OrderMap, error) {
	if order == nil || !order.Delivery.HasLocation() {
		return nil, nil
	}

	delivery := orb.Point{*order.Delivery.Longitude, *order.Delivery.Latitude}
	if !validPoint(delivery) {
		return nil, errors.Errorf("delivery coordinates out of range: %v", delivery)
	}

	fc := geojson.NewFeatureCollection()

	deliveryFeature := geojson.NewFeature(delivery)
	deliveryFeature.Properties["kind"] = MarkerDelivery
	deliveryFeature.Properties["order_number"] = order.OrderNumber
	deliveryFeature.Properties["recipient"] = order.Delivery.RecipientName
	deliveryFeature.Properties["address"] = order.Delivery.Address
	fc.Append(deliveryFeature)

	result := &service.OrderMap{}

	if shop != nil && shop.HasLocation() {
		origin := orb.Point{*shop.Longitude, *shop.Latitude}
		if validPoint(origin) {
			shopFeature := geojson.NewFeature(origin)
			shopFeature.Properties["kind"] = MarkerShop
			shopFeature.Properties["name"] = shop.Name
			fc.Append(shopFeature)

			km := DistanceKm(origin, delivery)
			route := geojson.NewFeature(orb.LineString{origin, delivery})
			route.Properties["kind"] = RouteLine
			route.Properties["distance_km"] = km
			fc.Append(route)

			result.DistanceKm = &km
		}
	}

	bound := fc.Features[0].Geometry.Bound()
	for _, f := range fc.Features[1:] {
		bound = bound.Union(f.Geometry.Bound())
	}
	fc.BBox = geojson.NewBBox(bound)

	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal order map")
	}
	result.GeoJSON = data

	return result, nil
}

// DistanceKm returns the great-circle distance between two points, rounded to metres.
func DistanceKm(a, b orb.Point) float64 {
	return math.Round(geo.DistanceHaversine(a, b)) / 1000
}

func validPoint(p orb.Point) bool {
	return p.Lon() >= -180 && p.Lon() <= 180 && p.Lat() >= -90 && p.Lat() <= 90
}
