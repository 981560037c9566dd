package engine

import (
	"strings"

	"github.com/yousemazhar/crashboard/dataset"
)

// ============================================================================
// FILTERS — Conjunctive Criteria Matching
// ============================================================================
// Single-pass filter: every active constraint is checked per record in one
// loop (logical AND across constraints). Returns an order-preserving
// sub-view — zero data copy. Given the same base view and criteria, the
// result is always identical.
// ============================================================================

// Apply returns the view of records matching every active constraint in c.
// Inactive constraints ("All"/zero values) impose nothing; empty criteria
// return the original view.
func Apply(view View, c Criteria) View {
	if c.IsEmpty() {
		return view
	}

	match := buildMatcher(c)

	n := view.Len()
	positions := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if match(view.At(i)) {
			positions = append(positions, i)
		}
	}
	return view.subset(positions)
}

// buildMatcher compiles criteria into a single predicate. Normalization
// (uppercasing, day-set lookup) happens once here, not per record.
func buildMatcher(c Criteria) func(*dataset.Record) bool {
	type check func(*dataset.Record) bool
	var checks []check

	eq := func(want string, get func(*dataset.Record) string) {
		if !isSet(want) {
			return
		}
		w := strings.ToUpper(strings.TrimSpace(want))
		checks = append(checks, func(r *dataset.Record) bool { return get(r) == w })
	}

	eq(c.Borough, func(r *dataset.Record) string { return r.Borough })
	eq(c.VehicleType, func(r *dataset.Record) string { return r.VehicleType1 })
	eq(c.PersonType, func(r *dataset.Record) string { return r.PersonType })
	eq(c.PersonInjury, func(r *dataset.Record) string { return r.PersonInjury })
	eq(c.Gender, func(r *dataset.Record) string { return r.PersonSex })
	eq(c.SafetyEquipment, func(r *dataset.Record) string { return r.SafetyEquipment })

	if c.Year != 0 {
		year := c.Year
		checks = append(checks, func(r *dataset.Record) bool { return r.Year == year })
	}
	if c.Month != 0 {
		month := c.Month
		checks = append(checks, func(r *dataset.Record) bool { return r.Month == month })
	}

	if len(c.Days) > 0 {
		daySet := make(map[int]bool, len(c.Days))
		for _, d := range c.Days {
			daySet[d] = true
		}
		checks = append(checks, func(r *dataset.Record) bool { return daySet[r.Day] })
	}

	if c.hourRangeActive() {
		lo, hi := c.HourMin, c.HourMax
		checks = append(checks, func(r *dataset.Record) bool { return r.Hour >= lo && r.Hour <= hi })
	}

	if c.FreeText != "" {
		needle := strings.ToLower(strings.TrimSpace(c.FreeText))
		if needle != "" {
			checks = append(checks, func(r *dataset.Record) bool {
				return strings.Contains(strings.ToLower(r.Borough), needle) ||
					strings.Contains(strings.ToLower(r.VehicleType1), needle) ||
					strings.Contains(strings.ToLower(r.Factor1), needle)
			})
		}
	}

	return func(r *dataset.Record) bool {
		for _, ck := range checks {
			if !ck(r) {
				return false
			}
		}
		return true
	}
}
