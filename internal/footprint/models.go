package footprint

import (
	"time"

	"github.com/google/uuid"
)

// Category groups emission records by activity domain
type Category string

const (
	CategoryTransport Category = "transport"
	CategoryEnergy    Category = "energy"
	CategoryFood      Category = "food"
	CategoryWaste     Category = "waste"
)

// ValidCategories lists the accepted record categories.
var ValidCategories = map[Category]bool{
	CategoryTransport: true,
	CategoryEnergy:    true,
	CategoryFood:      true,
	CategoryWaste:     true,
}

// EmissionRecord is one logged emission activity
type EmissionRecord struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"user_id"`
	Category    Category  `json:"category"`
	Activity    string    `json:"activity"`
	DistanceKm  float64   `json:"distance_km,omitempty"`
	EmissionsKg float64   `json:"emissions_kg"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateRecordRequest is the input for logging a record. For transport
// records, origin/destination coordinates may be supplied instead of a
// distance; the distance is then derived.
type CreateRecordRequest struct {
	UserID      string   `json:"user_id" binding:"required"`
	Category    Category `json:"category" binding:"required"`
	Activity    string   `json:"activity" binding:"required"`
	DistanceKm  float64  `json:"distance_km" binding:"omitempty,gte=0"`
	EmissionsKg float64  `json:"emissions_kg" binding:"required,gte=0"`

	OriginLatitude       *float64 `json:"origin_latitude,omitempty"`
	OriginLongitude      *float64 `json:"origin_longitude,omitempty"`
	DestinationLatitude  *float64 `json:"destination_latitude,omitempty"`
	DestinationLongitude *float64 `json:"destination_longitude,omitempty"`
}

// Summary aggregates a user's records
type Summary struct {
	UserID           string               `json:"user_id"`
	RecordCount      int                  `json:"record_count"`
	TotalEmissionsKg float64              `json:"total_emissions_kg"`
	SavedKg          float64              `json:"saved_kg"`
	CategoryTotals   map[Category]float64 `json:"category_totals"`
}

// LeaderboardEntry is one ranked user
type LeaderboardEntry struct {
	Rank    int     `json:"rank"`
	UserID  string  `json:"user_id"`
	SavedKg float64 `json:"saved_kg"`
}

// Badge is a gamification award derived from a user's summary
type Badge struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Suggestion is a rule-based reduction tip
type Suggestion struct {
	Category Category `json:"category"`
	Tip      string   `json:"tip"`
}
