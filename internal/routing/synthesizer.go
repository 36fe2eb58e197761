package routing

import "math"

// Variant transform policy constants. These are fixed policy, not derived
// from route data; keeping them in one place keeps the behavior auditable.
const (
	fastestDistanceFactor = 1.12 // highway detour
	fastestStopFactor     = 0.5
	fastestElevationGain  = 20.0

	shortestDistanceFactor = 0.92
	shortestDurationFactor = 1.18
	shortestStopFactor     = 1.6
	shortestElevationGain  = 45.0

	greenestDurationFactor = 1.06
	greenestStopFactor     = 0.6
	greenestElevationGain  = 15.0
)

// Morning and evening rush-hour windows (inclusive), local hour of day.
const (
	morningRushStart = 8
	morningRushEnd   = 10
	eveningRushStart = 17
	eveningRushEnd   = 19
)

// Fallback synthesis literals used when live route data is unavailable.
const fallbackBaseDistanceKm = 15.0

var fallbackVariants = []RouteVariant{
	{
		RouteType:           RouteFastest,
		DistanceKm:          fallbackBaseDistanceKm * 1.2,
		DurationMinutes:     22,
		TrafficLevel:        TrafficModerate,
		NumberOfStops:       8,
		ElevationGainMeters: 50,
		RoadQuality:         RoadGood,
		IsHighway:           true,
	},
	{
		RouteType:           RouteShortest,
		DistanceKm:          fallbackBaseDistanceKm,
		DurationMinutes:     28,
		TrafficLevel:        TrafficLight,
		NumberOfStops:       12,
		ElevationGainMeters: 80,
		RoadQuality:         RoadAverage,
		IsHighway:           false,
	},
	{
		RouteType:           RouteGreenest,
		DistanceKm:          fallbackBaseDistanceKm * 1.1,
		DurationMinutes:     26,
		TrafficLevel:        TrafficLight,
		NumberOfStops:       6,
		ElevationGainMeters: 30,
		RoadQuality:         RoadExcellent,
		IsHighway:           true,
	},
}

// isRushHour reports whether the local hour falls in a commute window.
func isRushHour(hour int) bool {
	return (hour >= morningRushStart && hour <= morningRushEnd) ||
		(hour >= eveningRushStart && hour <= eveningRushEnd)
}

// SynthesizeVariants derives the three labeled variants from live route
// data. The transforms are fixed policy; the three variants share the
// primary route's geometry except that shortest uses the second
// alternative's geometry when one exists.
func SynthesizeVariants(data *RouteData, hour int) []RouteVariant {
	base := data.Routes[0]
	baseDistanceKm := base.DistanceMeters / 1000
	baseDurationMin := base.DurationSeconds / 60
	baseStops := data.StopCount

	fastestTraffic := TrafficLight
	if isRushHour(hour) {
		fastestTraffic = TrafficModerate
	}

	shortestGeometry := base.Geometry
	if len(data.Routes) > 1 {
		shortestGeometry = data.Routes[1].Geometry
	}

	return []RouteVariant{
		{
			RouteType:           RouteFastest,
			DistanceKm:          roundTo(baseDistanceKm*fastestDistanceFactor, 2),
			DurationMinutes:     roundTo(baseDurationMin, 1),
			TrafficLevel:        fastestTraffic,
			NumberOfStops:       scaleStops(baseStops, fastestStopFactor),
			ElevationGainMeters: fastestElevationGain,
			RoadQuality:         RoadExcellent,
			IsHighway:           true,
			Geometry:            base.Geometry,
		},
		{
			RouteType:           RouteShortest,
			DistanceKm:          roundTo(baseDistanceKm*shortestDistanceFactor, 2),
			DurationMinutes:     roundTo(baseDurationMin*shortestDurationFactor, 1),
			TrafficLevel:        TrafficLight,
			NumberOfStops:       scaleStops(baseStops, shortestStopFactor),
			ElevationGainMeters: shortestElevationGain,
			RoadQuality:         RoadGood,
			IsHighway:           false,
			Geometry:            shortestGeometry,
		},
		{
			RouteType:           RouteGreenest,
			DistanceKm:          roundTo(baseDistanceKm, 2),
			DurationMinutes:     roundTo(baseDurationMin*greenestDurationFactor, 1),
			TrafficLevel:        TrafficLight,
			NumberOfStops:       scaleStops(baseStops, greenestStopFactor),
			ElevationGainMeters: greenestElevationGain,
			RoadQuality:         RoadExcellent,
			IsHighway:           false,
			Geometry:            base.Geometry,
		},
	}
}

// FallbackVariants returns the fixed synthetic variant set used when
// either upstream adapter is unavailable.
func FallbackVariants() []RouteVariant {
	variants := make([]RouteVariant, len(fallbackVariants))
	copy(variants, fallbackVariants)
	return variants
}

func scaleStops(stops int, factor float64) int {
	scaled := int(math.Round(float64(stops) * factor))
	if scaled < 0 {
		return 0
	}
	return scaled
}
