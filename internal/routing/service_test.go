package routing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGeocoder struct {
	places map[string]*GeocodedPlace
	err    error
}

func (s *stubGeocoder) Geocode(ctx context.Context, placeName string) (*GeocodedPlace, error) {
	if s.err != nil {
		return nil, s.err
	}
	place, ok := s.places[placeName]
	if !ok {
		return nil, errors.New("not found")
	}
	return place, nil
}

type stubRouteSource struct {
	data  *RouteData
	err   error
	calls int
}

func (s *stubRouteSource) FetchRoutes(ctx context.Context, origin, destination Coordinate) (*RouteData, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

func delhiGeocoder() *stubGeocoder {
	return &stubGeocoder{places: map[string]*GeocodedPlace{
		"Connaught Place, Delhi": {Query: "Connaught Place, Delhi", Latitude: 28.6315, Longitude: 77.2167},
		"India Gate, Delhi":      {Query: "India Gate, Delhi", Latitude: 28.6129, Longitude: 77.2295},
	}}
}

func newTestService(geocoder Geocoder, routes RouteSource) *Service {
	svc := NewService(geocoder, routes, nil)
	svc.SetHourFunc(func() int { return 12 })
	return svc
}

func TestOptimizeLivePath(t *testing.T) {
	svc := newTestService(delhiGeocoder(), &stubRouteSource{data: delhiRouteData()})

	resp, err := svc.Optimize(context.Background(), &OptimizeRequest{
		Origin:      "Connaught Place, Delhi",
		Destination: "India Gate, Delhi",
		VehicleType: "car",
		FuelType:    "petrol",
	})
	require.NoError(t, err)

	assert.Equal(t, DataSourceLive, resp.DataSource)
	assert.Empty(t, resp.Warning)
	require.Len(t, resp.Routes, 3)

	assert.InDelta(t, 5.6, resp.Routes[0].DistanceKm, 0.001)
	assert.InDelta(t, 4.6, resp.Routes[1].DistanceKm, 0.001)
	assert.InDelta(t, 5.0, resp.Routes[2].DistanceKm, 0.001)

	types := map[RouteType]bool{}
	for _, v := range resp.Routes {
		types[v.RouteType] = true
		assert.GreaterOrEqual(t, v.GreenScore, 0.0)
		assert.LessOrEqual(t, v.GreenScore, 100.0)
		assert.Greater(t, v.EmissionsKg, 0.0)
	}
	assert.Len(t, types, 3)

	// greenest variant never emits more than the longer fastest detour
	assert.LessOrEqual(t, resp.Routes[2].EmissionsKg, resp.Routes[0].EmissionsKg)

	// shortest has the lowest distance and light traffic, so it wins
	assert.Equal(t, 1, resp.Recommendation.GreenestRouteIndex)

	assert.Equal(t, "car", resp.VehicleInfo.Type)
	assert.Equal(t, "petrol", resp.VehicleInfo.FuelType)
	assert.Equal(t, 15.0, resp.VehicleInfo.Efficiency)
}

func TestOptimizeGeocodeFailureFallsBack(t *testing.T) {
	routes := &stubRouteSource{data: delhiRouteData()}
	svc := newTestService(&stubGeocoder{err: errors.New("upstream unreachable")}, routes)

	resp, err := svc.Optimize(context.Background(), &OptimizeRequest{
		Origin:      "Connaught Place, Delhi",
		Destination: "India Gate, Delhi",
	})
	require.NoError(t, err)

	assert.Equal(t, DataSourceFallback, resp.DataSource)
	assert.NotEmpty(t, resp.Warning)
	require.Len(t, resp.Routes, 3)

	assert.InDelta(t, 18.0, resp.Routes[0].DistanceKm, 0.001)
	assert.InDelta(t, 15.0, resp.Routes[1].DistanceKm, 0.001)
	assert.InDelta(t, 16.5, resp.Routes[2].DistanceKm, 0.001)

	// A failed geocode never reaches the route source
	assert.Equal(t, 0, routes.calls)
}

func TestOptimizeRouteFetchFailureFallsBack(t *testing.T) {
	svc := newTestService(delhiGeocoder(), &stubRouteSource{err: errors.New("osrm down")})

	resp, err := svc.Optimize(context.Background(), &OptimizeRequest{
		Origin:      "Connaught Place, Delhi",
		Destination: "India Gate, Delhi",
	})
	require.NoError(t, err)

	assert.Equal(t, DataSourceFallback, resp.DataSource)
	assert.NotEmpty(t, resp.Warning)
	assert.Len(t, resp.Routes, 3)
}

func TestOptimizeElectricPricing(t *testing.T) {
	svc := newTestService(&stubGeocoder{err: errors.New("unreachable")}, &stubRouteSource{})

	resp, err := svc.Optimize(context.Background(), &OptimizeRequest{
		Origin:      "A",
		Destination: "B",
		VehicleType: "electric_car",
		FuelType:    "electric",
	})
	require.NoError(t, err)

	// greenest fallback variant: 16.5 km at 6.5 km/kWh, light traffic,
	// priced at 10 per kWh rather than the petrol price
	greenest := resp.Routes[2]
	assert.InDelta(t, 2.538, greenest.FuelUsedLiters, 0.001)
	assert.InDelta(t, 25.38, greenest.Cost, 0.01)
}

func TestOptimizeMissingInput(t *testing.T) {
	svc := newTestService(delhiGeocoder(), &stubRouteSource{data: delhiRouteData()})

	_, err := svc.Optimize(context.Background(), &OptimizeRequest{Origin: "", Destination: "India Gate, Delhi"})
	assert.Error(t, err)

	_, err = svc.Optimize(context.Background(), &OptimizeRequest{Origin: "  ", Destination: "India Gate, Delhi"})
	assert.Error(t, err)
}

func TestOptimizeDefaultsVehicleProfile(t *testing.T) {
	svc := newTestService(delhiGeocoder(), &stubRouteSource{data: delhiRouteData()})

	resp, err := svc.Optimize(context.Background(), &OptimizeRequest{
		Origin:      "Connaught Place, Delhi",
		Destination: "India Gate, Delhi",
	})
	require.NoError(t, err)

	assert.Equal(t, "car", resp.VehicleInfo.Type)
	assert.Equal(t, "petrol", resp.VehicleInfo.FuelType)
}

func TestOptimizeIsDeterministic(t *testing.T) {
	svc := newTestService(delhiGeocoder(), &stubRouteSource{data: delhiRouteData()})

	req := &OptimizeRequest{
		Origin:      "Connaught Place, Delhi",
		Destination: "India Gate, Delhi",
		VehicleType: "car",
		FuelType:    "diesel",
	}

	first, err := svc.Optimize(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Optimize(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
