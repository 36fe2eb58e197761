package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreenScoreBounds(t *testing.T) {
	worst := RouteVariant{
		TrafficLevel:        TrafficHeavy,
		ElevationGainMeters: 5000,
		NumberOfStops:       100,
		RoadQuality:         RoadPoor,
	}
	assert.Equal(t, 30.0, GreenScore(&worst))

	best := RouteVariant{
		TrafficLevel: "",
		RoadQuality:  RoadExcellent,
		IsHighway:    true,
	}
	assert.Equal(t, 100.0, GreenScore(&best))
}

func TestGreenScoreTrafficMonotonicity(t *testing.T) {
	variant := func(level TrafficLevel) *RouteVariant {
		return &RouteVariant{
			TrafficLevel:        level,
			ElevationGainMeters: 100,
			NumberOfStops:       3,
			RoadQuality:         RoadAverage,
		}
	}

	light := GreenScore(variant(TrafficLight))
	moderate := GreenScore(variant(TrafficModerate))
	heavy := GreenScore(variant(TrafficHeavy))

	assert.Greater(t, light, moderate)
	assert.Greater(t, moderate, heavy)
}

func TestGreenScoreStopsMonotonicity(t *testing.T) {
	variant := func(stops int) *RouteVariant {
		return &RouteVariant{TrafficLevel: TrafficLight, NumberOfStops: stops}
	}

	assert.Greater(t, GreenScore(variant(0)), GreenScore(variant(3)))
	assert.Greater(t, GreenScore(variant(3)), GreenScore(variant(6)))

	// Stop penalty caps at 15
	assert.Equal(t, GreenScore(variant(8)), GreenScore(variant(50)))
}

func TestGreenScoreElevationPenaltyCaps(t *testing.T) {
	variant := func(gain float64) *RouteVariant {
		return &RouteVariant{TrafficLevel: TrafficLight, ElevationGainMeters: gain}
	}

	assert.InDelta(t, 94.0, GreenScore(variant(50)), 0.001)
	assert.InDelta(t, 85.0, GreenScore(variant(500)), 0.001)
	assert.Equal(t, GreenScore(variant(1000)), GreenScore(variant(10000)))
}

func TestGreenScoreRoadAndHighwayBonuses(t *testing.T) {
	base := RouteVariant{TrafficLevel: TrafficModerate, NumberOfStops: 5}

	excellent := base
	excellent.RoadQuality = RoadExcellent
	good := base
	good.RoadQuality = RoadGood
	average := base
	average.RoadQuality = RoadAverage
	poor := base
	poor.RoadQuality = RoadPoor

	assert.Equal(t, GreenScore(&average)+10, GreenScore(&excellent))
	assert.Equal(t, GreenScore(&average)+5, GreenScore(&good))
	assert.Equal(t, GreenScore(&average)-5, GreenScore(&poor))

	highway := base
	highway.IsHighway = true
	assert.Equal(t, GreenScore(&base)+15, GreenScore(&highway))
}

func TestGreenScoreAlwaysInRange(t *testing.T) {
	variants := []RouteVariant{
		{TrafficLevel: TrafficHeavy, NumberOfStops: 40, ElevationGainMeters: 3000, RoadQuality: RoadPoor},
		{TrafficLevel: TrafficLight, RoadQuality: RoadExcellent, IsHighway: true},
		{},
	}
	for _, v := range variants {
		score := GreenScore(&v)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}
