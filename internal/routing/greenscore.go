package routing

import "math"

// Green score tuning constants. The score starts at 100 and each factor
// adds or subtracts a bounded amount before clamping to [0,100].
const (
	trafficPenaltyHeavy    = 30
	trafficPenaltyModerate = 15
	trafficPenaltyLight    = 5

	elevationDivisor   = 50.0
	elevationPenaltyCap = 20.0

	stopPenaltyPerStop = 2.0
	stopPenaltyCap     = 15.0

	roadBonusExcellent = 10
	roadBonusGood      = 5
	roadPenaltyPoor    = 5

	highwayBonus = 15
)

// GreenScore rates a route variant 0-100 for fuel-efficiency friendliness.
// Pure function of the variant's traffic, elevation, stops, road quality
// and highway fields.
func GreenScore(variant *RouteVariant) float64 {
	score := 100.0

	switch variant.TrafficLevel {
	case TrafficHeavy:
		score -= trafficPenaltyHeavy
	case TrafficModerate:
		score -= trafficPenaltyModerate
	case TrafficLight:
		score -= trafficPenaltyLight
	}

	score -= math.Min(variant.ElevationGainMeters/elevationDivisor, elevationPenaltyCap)
	score -= math.Min(float64(variant.NumberOfStops)*stopPenaltyPerStop, stopPenaltyCap)

	switch variant.RoadQuality {
	case RoadExcellent:
		score += roadBonusExcellent
	case RoadGood:
		score += roadBonusGood
	case RoadPoor:
		score -= roadPenaltyPoor
	}

	if variant.IsHighway {
		score += highwayBonus
	}

	return math.Max(0, math.Min(100, score))
}
