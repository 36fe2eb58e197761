package footprint

// Savings thresholds (kg CO2 saved) for the tiered badges.
const (
	ecoStarterThreshold     = 10
	greenCommuterThreshold  = 25
	carbonCutterThreshold   = 50
	planetGuardianThreshold = 100
)

// BadgesForSummary awards badges from a user's summary. Pure function;
// every threshold reached stays awarded.
func BadgesForSummary(summary *Summary) []Badge {
	var badges []Badge

	if summary.RecordCount >= 1 {
		badges = append(badges, Badge{
			Name:        "first_trip",
			Description: "Logged your first emission record",
		})
	}
	if summary.SavedKg >= ecoStarterThreshold {
		badges = append(badges, Badge{
			Name:        "eco_starter",
			Description: "Saved 10 kg of CO2",
		})
	}
	if summary.SavedKg >= greenCommuterThreshold {
		badges = append(badges, Badge{
			Name:        "green_commuter",
			Description: "Saved 25 kg of CO2",
		})
	}
	if summary.SavedKg >= carbonCutterThreshold {
		badges = append(badges, Badge{
			Name:        "carbon_cutter",
			Description: "Saved 50 kg of CO2",
		})
	}
	if summary.SavedKg >= planetGuardianThreshold {
		badges = append(badges, Badge{
			Name:        "planet_guardian",
			Description: "Saved 100 kg of CO2",
		})
	}

	return badges
}

// Suggestion tips per category, most impactful first.
var categoryTips = map[Category][]string{
	CategoryTransport: {
		"Try cycling or public transport for trips under 5 km.",
		"Combine errands into a single trip to cut cold starts.",
		"Keep tyres inflated; under-inflation raises fuel use.",
	},
	CategoryEnergy: {
		"Switch to LED lighting in your most-used rooms.",
		"Lower your water heater temperature by a few degrees.",
		"Unplug chargers and standby devices overnight.",
	},
	CategoryFood: {
		"Swap one meat-based meal a week for a plant-based one.",
		"Buy seasonal, locally grown produce when possible.",
		"Plan portions to reduce food waste.",
	},
	CategoryWaste: {
		"Separate recyclables from general waste.",
		"Compost food scraps instead of binning them.",
		"Choose products with minimal packaging.",
	},
}

// SuggestionsForSummary returns reduction tips ordered by the user's
// highest-emitting categories. Users with no records get the transport
// tips as a starting point.
func SuggestionsForSummary(summary *Summary) []Suggestion {
	ordered := orderedCategories(summary.CategoryTotals)
	if len(ordered) == 0 {
		ordered = []Category{CategoryTransport}
	}

	var suggestions []Suggestion
	for _, category := range ordered {
		for _, tip := range categoryTips[category] {
			suggestions = append(suggestions, Suggestion{Category: category, Tip: tip})
		}
	}

	return suggestions
}

// orderedCategories sorts categories by descending total with a stable
// insertion sort; the category set is tiny.
func orderedCategories(totals map[Category]float64) []Category {
	var ordered []Category
	for category, total := range totals {
		if total <= 0 {
			continue
		}
		inserted := false
		for i, existing := range ordered {
			if total > totals[existing] {
				ordered = append(ordered[:i], append([]Category{category}, ordered[i:]...)...)
				inserted = true
				break
			}
		}
		if !inserted {
			ordered = append(ordered, category)
		}
	}
	return ordered
}
