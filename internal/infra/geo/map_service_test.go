package geo

import (
	"testing"

	"bazaar/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func TestMapService_BuildOrderMap_DeliveryOnly(t *testing.T) {
	svc := NewMapService()
	order := &entity.Order{
		OrderNumber: "ORD-1",
		Delivery: entity.DeliverySnapshot{
			RecipientName: "Amit",
			Address:       "12 MG Road, Pune",
			Latitude:      ptr(18.52),
			Longitude:     ptr(73.85),
		},
	}

	result, err := svc.BuildOrderMap(order, &entity.Shop{Name: "No Coordinates"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Nil(t, result.DistanceKm)

	fc, err := geojson.UnmarshalFeatureCollection(result.GeoJSON)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, MarkerDelivery, fc.Features[0].Properties.MustString("kind"))
	assert.Equal(t, orb.Point{73.85, 18.52}, fc.Features[0].Geometry)
}

func TestMapService_BuildOrderMap_WithShop(t *testing.T) {
	svc := NewMapService()
	order := &entity.Order{
		Delivery: entity.DeliverySnapshot{Latitude: ptr(18.5204), Longitude: ptr(73.8567)},
	}
	shop := &entity.Shop{Name: "Mumbai Threads", Latitude: ptr(19.0760), Longitude: ptr(72.8777)}

	result, err := svc.BuildOrderMap(order, shop)
	require.NoError(t, err)
	require.NotNil(t, result.DistanceKm)
	// Mumbai to Pune is roughly 120 km as the crow flies.
	assert.InDelta(t, 120, *result.DistanceKm, 5)

	fc, err := geojson.UnmarshalFeatureCollection(result.GeoJSON)
	require.NoError(t, err)
	require.Len(t, fc.Features, 3)
	assert.Equal(t, MarkerShop, fc.Features[1].Properties.MustString("kind"))
	assert.Equal(t, RouteLine, fc.Features[2].Properties.MustString("kind"))
	assert.NotEmpty(t, fc.BBox)
}

func TestMapService_BuildOrderMap_NoLocation(t *testing.T) {
	result, err := NewMapService().BuildOrderMap(&entity.Order{}, nil)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestMapService_BuildOrderMap_InvalidCoordinates(t *testing.T) {
	order := &entity.Order{
		Delivery: entity.DeliverySnapshot{Latitude: ptr(123), Longitude: ptr(10)},
	}

	_, err := NewMapService().BuildOrderMap(order, nil)
	assert.Error(t, err)
}

func TestDistanceKm(t *testing.T) {
	p := orb.Point{121.5654, 25.0330}
	assert.Zero(t, DistanceKm(p, p))
}
