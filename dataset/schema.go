package dataset

import (
	"fmt"
	"strings"
)

// ============================================================================
// SCHEMA — Fixed column layout of the cleaned collision CSV
// ============================================================================
// The dataset is pre-cleaned and its schema is fixed. Columns are resolved
// from the header by snake_case key, so "NUMBER OF PERSONS INJURED" and
// "number_of_persons_injured" both map to the same key. A missing required
// column is a startup error — there is no recovery path.
// ============================================================================

// Canonical column keys.
const (
	colCollisionID     = "collision_id"
	colCrashDate       = "crash_date_dt"
	colBorough         = "borough"
	colLatitude        = "latitude"
	colLongitude       = "longitude"
	colVehicleType1    = "vehicle_type_1"
	colVehicleType2    = "vehicle_type_2"
	colFactor1         = "contributing_factor_1"
	colFactor2         = "contributing_factor_2"
	colPersonType      = "person_type"
	colPersonInjury    = "person_injury"
	colPersonSex       = "person_sex"
	colSafetyEquipment = "safety_equipment"

	colPersonsInjured     = "number_of_persons_injured"
	colPersonsKilled      = "number_of_persons_killed"
	colPedestriansInjured = "number_of_pedestrians_injured"
	colPedestriansKilled  = "number_of_pedestrians_killed"
	colCyclistsInjured    = "number_of_cyclist_injured"
	colCyclistsKilled     = "number_of_cyclist_killed"
	colMotoristsInjured   = "number_of_motorist_injured"
	colMotoristsKilled    = "number_of_motorist_killed"
)

// requiredColumns must all be present in the header.
var requiredColumns = []string{
	colCollisionID,
	colCrashDate,
	colBorough,
	colLatitude,
	colLongitude,
	colVehicleType1,
	colVehicleType2,
	colFactor1,
	colFactor2,
	colPersonType,
	colPersonInjury,
	colPersonSex,
	colSafetyEquipment,
	colPersonsInjured,
	colPersonsKilled,
	colPedestriansInjured,
	colPedestriansKilled,
	colCyclistsInjured,
	colCyclistsKilled,
	colMotoristsInjured,
	colMotoristsKilled,
}

// columnAliases maps raw NYC Open Data headers onto canonical keys.
var columnAliases = map[string]string{
	"vehicle_type_code_1":           colVehicleType1,
	"vehicle_type_code_2":           colVehicleType2,
	"contributing_factor_vehicle_1": colFactor1,
	"contributing_factor_vehicle_2": colFactor2,
	"crash_date":                    colCrashDate,
}

// columnIndex maps canonical column keys to their position in the header.
type columnIndex map[string]int

// resolveHeader builds a columnIndex from a CSV header row.
// Returns an error naming every required column that is absent.
func resolveHeader(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, h := range header {
		key := toSnakeCase(strings.TrimSpace(h))
		if canonical, ok := columnAliases[key]; ok {
			key = canonical
		}
		if _, seen := idx[key]; !seen {
			idx[key] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset is missing required columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

// toSnakeCase converts "Column Name" → "column_name".
func toSnakeCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
