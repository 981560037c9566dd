package dataset

import (
	"sort"
	"strings"
)

// ============================================================================
// VEHICLE-TYPE NORMALIZER
// ============================================================================
// Raw vehicle-type strings are noisy ("Sedan", "SEDAN", "4 dr sedan", ...).
// At load time every value is mapped onto a fixed allow-list; anything else
// becomes the sentinel OtherVehicle. The secondary field additionally keeps
// the NoSecondVehicle sentinel, which is also substituted for empty input.
// Pure function of the input value — record order never matters.
// ============================================================================

// Sentinel categories.
const (
	OtherVehicle    = "OTHER"
	NoSecondVehicle = "NO SECOND VEHICLE"
)

// vehicleAllowList is the fixed set of recognized vehicle categories.
var vehicleAllowList = map[string]bool{
	"SEDAN":                                    true,
	"STATION WAGON/SPORT UTILITY VEHICLE":      true,
	"TAXI":                                     true,
	"PICK-UP TRUCK":                            true,
	"BOX TRUCK":                                true,
	"BUS":                                      true,
	"SCHOOL BUS":                               true,
	"BICYCLE":                                  true,
	"E-BIKE":                                   true,
	"E-SCOOTER":                                true,
	"MOTORCYCLE":                               true,
	"MOTORSCOOTER":                             true,
	"MOPED":                                    true,
	"VAN":                                      true,
	"AMBULANCE":                                true,
	"FIRE TRUCK":                               true,
	"TOW TRUCK / WRECKER":                      true,
	"TRACTOR TRUCK DIESEL":                     true,
	"TRACTOR TRUCK GASOLINE":                   true,
	"GARBAGE OR REFUSE":                        true,
	"DUMP":                                     true,
	"FLAT BED":                                 true,
	"TANKER":                                   true,
	"CARRY ALL":                                true,
	"CONVERTIBLE":                              true,
	"CHASSIS CAB":                              true,
	"LIVERY VEHICLE":                           true,
	"LIMOUSINE":                                true,
	"ARMORED TRUCK":                            true,
	"PK":                                       true,
}

// VehicleCategories returns the allow-list in a stable sorted order.
// Used by the presentation layer to populate the vehicle-type dropdown.
func VehicleCategories() []string {
	out := make([]string, 0, len(vehicleAllowList))
	for v := range vehicleAllowList {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// NormalizeVehicleType maps a raw vehicle-type value onto the allow-list.
// Unrecognized values become OtherVehicle. For the secondary vehicle field
// (secondary=true) an empty value means no second vehicle was involved and
// the NoSecondVehicle sentinel is kept.
func NormalizeVehicleType(raw string, secondary bool) string {
	v := strings.ToUpper(strings.TrimSpace(raw))
	if secondary && (v == "" || v == NoSecondVehicle) {
		return NoSecondVehicle
	}
	if vehicleAllowList[v] {
		return v
	}
	return OtherVehicle
}
