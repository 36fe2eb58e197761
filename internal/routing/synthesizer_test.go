package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func delhiRouteData() *RouteData {
	// 5 km / 10 min primary route with 4 stops
	return &RouteData{
		Routes: []BaseRoute{
			{DistanceMeters: 5000, DurationSeconds: 600, Geometry: "primary_poly"},
			{DistanceMeters: 5200, DurationSeconds: 640, Geometry: "alternative_poly"},
		},
		StopCount:  4,
		HasHighway: true,
	}
}

func TestSynthesizeVariantsTransforms(t *testing.T) {
	variants := SynthesizeVariants(delhiRouteData(), 12)
	require.Len(t, variants, 3)

	fastest, shortest, greenest := variants[0], variants[1], variants[2]

	assert.Equal(t, RouteFastest, fastest.RouteType)
	assert.InDelta(t, 5.6, fastest.DistanceKm, 0.001)
	assert.InDelta(t, 10.0, fastest.DurationMinutes, 0.001)
	assert.Equal(t, TrafficLight, fastest.TrafficLevel)
	assert.Equal(t, 2, fastest.NumberOfStops)
	assert.Equal(t, 20.0, fastest.ElevationGainMeters)
	assert.Equal(t, RoadExcellent, fastest.RoadQuality)
	assert.True(t, fastest.IsHighway)

	assert.Equal(t, RouteShortest, shortest.RouteType)
	assert.InDelta(t, 4.6, shortest.DistanceKm, 0.001)
	assert.InDelta(t, 11.8, shortest.DurationMinutes, 0.001)
	assert.Equal(t, TrafficLight, shortest.TrafficLevel)
	assert.Equal(t, 6, shortest.NumberOfStops)
	assert.Equal(t, 45.0, shortest.ElevationGainMeters)
	assert.Equal(t, RoadGood, shortest.RoadQuality)
	assert.False(t, shortest.IsHighway)

	assert.Equal(t, RouteGreenest, greenest.RouteType)
	assert.InDelta(t, 5.0, greenest.DistanceKm, 0.001)
	assert.InDelta(t, 10.6, greenest.DurationMinutes, 0.001)
	assert.Equal(t, TrafficLight, greenest.TrafficLevel)
	assert.Equal(t, 2, greenest.NumberOfStops)
	assert.Equal(t, 15.0, greenest.ElevationGainMeters)
	assert.Equal(t, RoadExcellent, greenest.RoadQuality)
	assert.False(t, greenest.IsHighway)
}

func TestSynthesizeVariantsRushHourTraffic(t *testing.T) {
	rushHours := []int{8, 9, 10, 17, 18, 19}
	for _, hour := range rushHours {
		variants := SynthesizeVariants(delhiRouteData(), hour)
		assert.Equal(t, TrafficModerate, variants[0].TrafficLevel, "hour %d", hour)
	}

	offPeakHours := []int{0, 7, 11, 16, 20, 23}
	for _, hour := range offPeakHours {
		variants := SynthesizeVariants(delhiRouteData(), hour)
		assert.Equal(t, TrafficLight, variants[0].TrafficLevel, "hour %d", hour)
	}
}

func TestSynthesizeVariantsGeometrySharing(t *testing.T) {
	variants := SynthesizeVariants(delhiRouteData(), 12)

	// shortest takes the second alternative's geometry; the other two
	// share the primary path
	assert.Equal(t, "primary_poly", variants[0].Geometry)
	assert.Equal(t, "alternative_poly", variants[1].Geometry)
	assert.Equal(t, "primary_poly", variants[2].Geometry)

	single := &RouteData{
		Routes:    []BaseRoute{{DistanceMeters: 5000, DurationSeconds: 600, Geometry: "only_poly"}},
		StopCount: 4,
	}
	variants = SynthesizeVariants(single, 12)
	assert.Equal(t, "only_poly", variants[1].Geometry)
}

func TestSynthesizeVariantsZeroStops(t *testing.T) {
	data := &RouteData{
		Routes:    []BaseRoute{{DistanceMeters: 1000, DurationSeconds: 120}},
		StopCount: 0,
	}
	for _, v := range SynthesizeVariants(data, 12) {
		assert.Equal(t, 0, v.NumberOfStops)
	}
}

func TestFallbackVariantsLiterals(t *testing.T) {
	variants := FallbackVariants()
	require.Len(t, variants, 3)

	fastest, shortest, greenest := variants[0], variants[1], variants[2]

	assert.Equal(t, RouteFastest, fastest.RouteType)
	assert.InDelta(t, 18.0, fastest.DistanceKm, 0.001)
	assert.Equal(t, 22.0, fastest.DurationMinutes)
	assert.Equal(t, TrafficModerate, fastest.TrafficLevel)
	assert.Equal(t, 8, fastest.NumberOfStops)
	assert.Equal(t, 50.0, fastest.ElevationGainMeters)
	assert.Equal(t, RoadGood, fastest.RoadQuality)
	assert.True(t, fastest.IsHighway)

	assert.Equal(t, RouteShortest, shortest.RouteType)
	assert.InDelta(t, 15.0, shortest.DistanceKm, 0.001)
	assert.Equal(t, 28.0, shortest.DurationMinutes)
	assert.Equal(t, TrafficLight, shortest.TrafficLevel)
	assert.Equal(t, 12, shortest.NumberOfStops)
	assert.Equal(t, 80.0, shortest.ElevationGainMeters)
	assert.Equal(t, RoadAverage, shortest.RoadQuality)
	assert.False(t, shortest.IsHighway)

	assert.Equal(t, RouteGreenest, greenest.RouteType)
	assert.InDelta(t, 16.5, greenest.DistanceKm, 0.001)
	assert.Equal(t, 26.0, greenest.DurationMinutes)
	assert.Equal(t, TrafficLight, greenest.TrafficLevel)
	assert.Equal(t, 6, greenest.NumberOfStops)
	assert.Equal(t, 30.0, greenest.ElevationGainMeters)
	assert.Equal(t, RoadExcellent, greenest.RoadQuality)
	assert.True(t, greenest.IsHighway)
}

func TestFallbackVariantsReturnsCopy(t *testing.T) {
	first := FallbackVariants()
	first[0].EmissionsKg = 99
	first[0].DistanceKm = 1

	second := FallbackVariants()
	assert.Equal(t, 0.0, second[0].EmissionsKg)
	assert.InDelta(t, 18.0, second[0].DistanceKm, 0.001)
}
