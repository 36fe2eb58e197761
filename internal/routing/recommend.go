package routing

import (
	"fmt"
	"strconv"
)

const similarRoutesMessage = "All routes have similar emissions. Pick whichever suits your schedule."

// SelectRecommendation picks the variant with the lowest emissions and
// quantifies the savings against the baseline, which is always the first
// variant in the list. Ties keep the earliest variant.
func SelectRecommendation(variants []RouteVariant) Recommendation {
	chosenIndex := 0
	for i := 1; i < len(variants); i++ {
		if variants[i].EmissionsKg < variants[chosenIndex].EmissionsKg {
			chosenIndex = i
		}
	}

	baseline := variants[0]
	chosen := variants[chosenIndex]

	emissionsSaved := roundTo(baseline.EmissionsKg-chosen.EmissionsKg, 3)
	costSaved := roundTo(baseline.Cost-chosen.Cost, 2)

	rec := Recommendation{
		GreenestRouteIndex: chosenIndex,
		EmissionsSaved:     formatSaved(emissionsSaved, 3),
		CostSaved:          formatSaved(costSaved, 2),
	}

	if emissionsSaved > 0 {
		rec.Message = fmt.Sprintf(
			"Take the %s route to save %s kg of CO2 and %s in fuel cost.",
			chosen.RouteType, rec.EmissionsSaved, rec.CostSaved,
		)
	} else {
		rec.Message = similarRoutesMessage
	}

	return rec
}

// formatSaved renders a clamped savings amount; non-positive values read
// as the literal "0".
func formatSaved(value float64, places int) string {
	if value <= 0 {
		return "0"
	}
	return strconv.FormatFloat(value, 'f', places, 64)
}
