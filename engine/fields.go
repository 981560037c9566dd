package engine

import (
	"fmt"

	"github.com/yousemazhar/crashboard/dataset"
)

// ============================================================================
// FIELDS — Named grouping keys and measures for configurable charts
// ============================================================================
// The presentation layer picks chart axes by name; this registry resolves
// names to typed accessors. Temporal keys carry a natural sort order so the
// aggregation layer can sort "by the value itself" without re-parsing labels.
// ============================================================================

// GroupKey is the bucket identity produced by a KeyFunc: a display label
// plus the key's position in natural order (year number, month index, ...).
// For plain categorical keys Order is unused and buckets keep first-seen
// order under SortNatural.
type GroupKey struct {
	Label string
	Order int
}

// KeyFunc extracts a grouping key from a record.
type KeyFunc func(*dataset.Record) GroupKey

// ValueFunc extracts a numeric value from a record. A nil ValueFunc means
// "count records".
type ValueFunc func(*dataset.Record) float64

var dayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// DayName returns the Monday-first name for a day index 0..6.
func DayName(day int) string {
	if day < 0 || day > 6 {
		return "Unknown"
	}
	return dayNames[day]
}

func categorical(label string) GroupKey { return GroupKey{Label: label} }

// groupFields maps field names to key accessors.
var groupFields = map[string]KeyFunc{
	"borough":             func(r *dataset.Record) GroupKey { return categorical(r.Borough) },
	"vehicle_type":        func(r *dataset.Record) GroupKey { return categorical(r.VehicleType1) },
	"person_type":         func(r *dataset.Record) GroupKey { return categorical(r.PersonType) },
	"person_injury":       func(r *dataset.Record) GroupKey { return categorical(r.PersonInjury) },
	"person_sex":          func(r *dataset.Record) GroupKey { return categorical(r.PersonSex) },
	"safety_equipment":    func(r *dataset.Record) GroupKey { return categorical(r.SafetyEquipment) },
	"contributing_factor": func(r *dataset.Record) GroupKey { return categorical(r.Factor1) },
	"year": func(r *dataset.Record) GroupKey {
		return GroupKey{Label: fmt.Sprintf("%d", r.Year), Order: r.Year}
	},
	"month": func(r *dataset.Record) GroupKey {
		return GroupKey{Label: monthNames[r.Month-1], Order: r.Month}
	},
	"day": func(r *dataset.Record) GroupKey {
		return GroupKey{Label: DayName(r.Day), Order: r.Day}
	},
	"hour": func(r *dataset.Record) GroupKey {
		return GroupKey{Label: fmt.Sprintf("%02d:00", r.Hour), Order: r.Hour}
	},
}

// measureFields maps measure names to value accessors. "records" is the
// synthetic row-count measure and maps to nil.
var measureFields = map[string]ValueFunc{
	"records":             nil,
	"persons_injured":     func(r *dataset.Record) float64 { return float64(r.PersonsInjured) },
	"persons_killed":      func(r *dataset.Record) float64 { return float64(r.PersonsKilled) },
	"pedestrians_injured": func(r *dataset.Record) float64 { return float64(r.PedestriansInjured) },
	"cyclists_injured":    func(r *dataset.Record) float64 { return float64(r.CyclistsInjured) },
	"motorists_injured":   func(r *dataset.Record) float64 { return float64(r.MotoristsInjured) },
}

// GroupField resolves a grouping field name.
func GroupField(name string) (KeyFunc, bool) {
	fn, ok := groupFields[name]
	return fn, ok
}

// MeasureField resolves a measure name. ok is false for unknown names;
// a nil ValueFunc with ok=true means record count.
func MeasureField(name string) (ValueFunc, bool) {
	if name == "" {
		return nil, true
	}
	fn, ok := measureFields[name]
	return fn, ok
}

// FieldLabel returns a display label for a field or measure name.
func FieldLabel(name string) string {
	switch name {
	case "", "records":
		return "Crashes"
	case "borough":
		return "Borough"
	case "vehicle_type":
		return "Vehicle Type"
	case "person_type":
		return "Person Type"
	case "person_injury":
		return "Injury Status"
	case "person_sex":
		return "Sex"
	case "safety_equipment":
		return "Safety Equipment"
	case "contributing_factor":
		return "Contributing Factor"
	case "year":
		return "Year"
	case "month":
		return "Month"
	case "day":
		return "Day of Week"
	case "hour":
		return "Hour"
	case "persons_injured":
		return "Persons Injured"
	case "persons_killed":
		return "Persons Killed"
	case "pedestrians_injured":
		return "Pedestrians Injured"
	case "cyclists_injured":
		return "Cyclists Injured"
	case "motorists_injured":
		return "Motorists Injured"
	}
	return name
}
