package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func badgeNames(badges []Badge) []string {
	var names []string
	for _, b := range badges {
		names = append(names, b.Name)
	}
	return names
}

func TestBadgesForSummaryThresholds(t *testing.T) {
	tests := []struct {
		name     string
		summary  *Summary
		expected []string
	}{
		{
			name:     "no records no badges",
			summary:  &Summary{},
			expected: nil,
		},
		{
			name:     "first record only",
			summary:  &Summary{RecordCount: 1, SavedKg: 4},
			expected: []string{"first_trip"},
		},
		{
			name:     "eco starter at exactly 10",
			summary:  &Summary{RecordCount: 3, SavedKg: 10},
			expected: []string{"first_trip", "eco_starter"},
		},
		{
			name:     "green commuter at 25",
			summary:  &Summary{RecordCount: 5, SavedKg: 25},
			expected: []string{"first_trip", "eco_starter", "green_commuter"},
		},
		{
			name:     "all badges at 100",
			summary:  &Summary{RecordCount: 20, SavedKg: 130},
			expected: []string{"first_trip", "eco_starter", "green_commuter", "carbon_cutter", "planet_guardian"},
		},
		{
			name:     "just below a tier",
			summary:  &Summary{RecordCount: 8, SavedKg: 49.9},
			expected: []string{"first_trip", "eco_starter", "green_commuter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			badges := BadgesForSummary(tt.summary)
			assert.Equal(t, tt.expected, badgeNames(badges))
		})
	}
}

func TestBadgesHaveDescriptions(t *testing.T) {
	badges := BadgesForSummary(&Summary{RecordCount: 10, SavedKg: 200})
	for _, b := range badges {
		assert.NotEmpty(t, b.Description, "badge %s should have a description", b.Name)
	}
}

func TestSuggestionsOrderedByWorstCategory(t *testing.T) {
	summary := &Summary{
		CategoryTotals: map[Category]float64{
			CategoryTransport: 12.5,
			CategoryEnergy:    40.0,
			CategoryFood:      3.2,
		},
	}

	suggestions := SuggestionsForSummary(summary)
	assert.Len(t, suggestions, 9)

	assert.Equal(t, CategoryEnergy, suggestions[0].Category)
	assert.Equal(t, CategoryTransport, suggestions[3].Category)
	assert.Equal(t, CategoryFood, suggestions[6].Category)
}

func TestSuggestionsSkipZeroCategories(t *testing.T) {
	summary := &Summary{
		CategoryTotals: map[Category]float64{
			CategoryTransport: 5.0,
			CategoryWaste:     0,
		},
	}

	suggestions := SuggestionsForSummary(summary)
	for _, s := range suggestions {
		assert.Equal(t, CategoryTransport, s.Category)
	}
}

func TestSuggestionsForEmptySummaryDefaultToTransport(t *testing.T) {
	suggestions := SuggestionsForSummary(&Summary{CategoryTotals: map[Category]float64{}})

	assert.NotEmpty(t, suggestions)
	for _, s := range suggestions {
		assert.Equal(t, CategoryTransport, s.Category)
		assert.NotEmpty(t, s.Tip)
	}
}
