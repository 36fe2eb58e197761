package routing

import "math"

// Fuel emission factors in kg CO2 per liter burned (per kWh for electric).
var fuelEmissionFactors = map[string]float64{
	"petrol":   2.31,
	"diesel":   2.68,
	"cng":      2.21,
	"electric": 0.82,
}

// Fuel efficiency in km per liter (km per kWh for electric), keyed by
// vehicle+fuel. Unknown combinations fall back to the car+petrol row,
// which is a documented default rather than an error.
var fuelEfficiency = map[string]float64{
	"car:petrol":             15,
	"car:diesel":             18,
	"car:cng":                20,
	"suv:petrol":             10,
	"suv:diesel":             12,
	"bike:petrol":            45,
	"electric_car:electric":  6.5,
	"electric_bike:electric": 40,
}

// Fuel price per liter (per kWh for electric), in currency units.
var fuelPrices = map[string]float64{
	"petrol":   100,
	"diesel":   90,
	"cng":      60,
	"electric": 10,
}

// Traffic multipliers applied to fuel burned and emissions.
var trafficMultipliers = map[TrafficLevel]float64{
	TrafficHeavy:    1.4,
	TrafficModerate: 1.2,
	TrafficLight:    1.0,
}

const (
	defaultVehicleType = "car"
	defaultFuelType    = "petrol"
)

// VehicleEfficiency returns the km-per-unit-fuel figure for the given
// profile, falling back to car+petrol for unknown combinations.
func VehicleEfficiency(vehicleType, fuelType string) float64 {
	if eff, ok := fuelEfficiency[vehicleType+":"+fuelType]; ok {
		return eff
	}
	return fuelEfficiency[defaultVehicleType+":"+defaultFuelType]
}

// CalculateBaseEmissions converts a distance and vehicle profile into fuel
// burned and CO2 emitted, before any traffic adjustment. It never fails:
// unknown combinations use the default factors.
func CalculateBaseEmissions(distanceKm float64, vehicleType, fuelType string) (fuelUsed, emissionsKg float64) {
	efficiency := VehicleEfficiency(vehicleType, fuelType)

	factor, ok := fuelEmissionFactors[fuelType]
	if !ok {
		factor = fuelEmissionFactors[defaultFuelType]
	}

	fuelUsed = distanceKm / efficiency
	emissionsKg = fuelUsed * factor
	return fuelUsed, emissionsKg
}

// FuelPrice returns the per-unit fuel price, defaulting to petrol for
// unknown fuel types.
func FuelPrice(fuelType string) float64 {
	if price, ok := fuelPrices[fuelType]; ok {
		return price
	}
	return fuelPrices[defaultFuelType]
}

// TrafficMultiplier returns the fuel/emissions multiplier for a traffic level.
func TrafficMultiplier(level TrafficLevel) float64 {
	if m, ok := trafficMultipliers[level]; ok {
		return m
	}
	return 1.0
}

// PriceVariant populates the variant's fuel, emissions and cost fields from
// its distance, traffic level and the vehicle profile. Fuel and emissions
// are rounded to 3 decimal places, cost to 2; the precision is part of the
// output contract.
func PriceVariant(variant *RouteVariant, vehicleType, fuelType string) {
	fuelUsed, emissions := CalculateBaseEmissions(variant.DistanceKm, vehicleType, fuelType)

	multiplier := TrafficMultiplier(variant.TrafficLevel)
	fuelUsed *= multiplier
	emissions *= multiplier

	variant.FuelUsedLiters = roundTo(fuelUsed, 3)
	variant.EmissionsKg = roundTo(emissions, 3)
	variant.Cost = roundTo(fuelUsed*FuelPrice(fuelType), 2)
}

// SupportedVehicles lists every vehicle/fuel combination in the efficiency
// table, for the vehicles endpoint.
func SupportedVehicles() []VehicleOption {
	// Fixed order so the endpoint output is stable
	keys := []string{
		"car:petrol", "car:diesel", "car:cng",
		"suv:petrol", "suv:diesel",
		"bike:petrol",
		"electric_car:electric", "electric_bike:electric",
	}

	options := make([]VehicleOption, 0, len(keys))
	for _, key := range keys {
		vehicle, fuel := splitProfileKey(key)
		unit := "liter"
		if fuel == "electric" {
			unit = "kWh"
		}
		options = append(options, VehicleOption{
			VehicleType: vehicle,
			FuelType:    fuel,
			Efficiency:  fuelEfficiency[key],
			FuelUnit:    unit,
		})
	}
	return options
}

func splitProfileKey(key string) (vehicle, fuel string) {
	for i := 0; i < len(key); i++ {
		if key[i] == ':' {
			return key[:i], key[i+1:]
		}
	}
	return key, ""
}

func roundTo(value float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(value*shift) / shift
}
