package routing

// TrafficLevel indicates congestion along a route variant
type TrafficLevel string

const (
	TrafficLight    TrafficLevel = "light"
	TrafficModerate TrafficLevel = "moderate"
	TrafficHeavy    TrafficLevel = "heavy"
)

// RoadQuality describes the dominant surface quality of a variant
type RoadQuality string

const (
	RoadExcellent RoadQuality = "excellent"
	RoadGood      RoadQuality = "good"
	RoadAverage   RoadQuality = "average"
	RoadPoor      RoadQuality = "poor"
)

// RouteType labels the three synthesized variants
type RouteType string

const (
	RouteFastest  RouteType = "fastest"
	RouteShortest RouteType = "shortest"
	RouteGreenest RouteType = "greenest"
)

// Data sources reported in the optimize response
const (
	DataSourceLive     = "osrm_api"
	DataSourceFallback = "fallback_sample_data"
)

// Coordinate represents a geographic point
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeocodedPlace is a resolved free-text place name
type GeocodedPlace struct {
	Query       string  `json:"query"`
	DisplayName string  `json:"display_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	H3Cell      string  `json:"h3_cell,omitempty"`
}

// Coordinate returns the place's location.
func (p *GeocodedPlace) Coordinate() Coordinate {
	return Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
}

// BaseRoute is one candidate path returned by the route source.
// It lives for a single optimization request and is never persisted.
type BaseRoute struct {
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
	Geometry        string  `json:"geometry"`
}

// RouteData is the route source adapter's full answer: the candidate
// paths plus auxiliary signals derived from the primary path's steps.
type RouteData struct {
	Routes     []BaseRoute
	StopCount  int
	HasHighway bool
}

// RouteVariant is one of the three synthesized route alternatives
type RouteVariant struct {
	RouteType           RouteType    `json:"route_type"`
	DistanceKm          float64      `json:"distance_km"`
	DurationMinutes     float64      `json:"duration_minutes"`
	TrafficLevel        TrafficLevel `json:"traffic_level"`
	NumberOfStops       int          `json:"number_of_stops"`
	ElevationGainMeters float64      `json:"elevation_gain_meters"`
	RoadQuality         RoadQuality  `json:"road_quality"`
	IsHighway           bool         `json:"is_highway"`
	FuelUsedLiters      float64      `json:"fuel_used_liters"`
	EmissionsKg         float64      `json:"emissions_kg"`
	Cost                float64      `json:"cost"`
	GreenScore          float64      `json:"green_score"`
	Geometry            string       `json:"geometry,omitempty"`
}

// Recommendation points at the lowest-emission variant and quantifies
// the savings against the baseline (first) variant. Saved amounts are
// rendered as strings so a zero reads as the literal "0".
type Recommendation struct {
	GreenestRouteIndex int    `json:"greenest_route_index"`
	EmissionsSaved     string `json:"emissions_saved"`
	CostSaved          string `json:"cost_saved"`
	Message            string `json:"message"`
}

// VehicleInfo echoes the effective vehicle profile back to the client
type VehicleInfo struct {
	Type       string  `json:"type"`
	FuelType   string  `json:"fuel_type"`
	Efficiency float64 `json:"efficiency"`
}

// OptimizeRequest is the input to the route optimization engine
type OptimizeRequest struct {
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	VehicleType string `json:"vehicle_type" binding:"omitempty,vehicletype"`
	FuelType    string `json:"fuel_type" binding:"omitempty,fueltype"`
}

// OptimizeResponse is the full optimization result
type OptimizeResponse struct {
	Routes         []RouteVariant `json:"routes"`
	Recommendation Recommendation `json:"recommendation"`
	VehicleInfo    VehicleInfo    `json:"vehicle_info"`
	DataSource     string         `json:"data_source"`
	Warning        string         `json:"warning,omitempty"`
}

// VehicleOption is one supported vehicle/fuel combination
type VehicleOption struct {
	VehicleType string  `json:"vehicle_type"`
	FuelType    string  `json:"fuel_type"`
	Efficiency  float64 `json:"efficiency"`
	FuelUnit    string  `json:"fuel_unit"`
}
