package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yousemazhar/crashboard/engine"
)

// ============================================================================
// QUERY PARSER — Free text → filter criteria
// ============================================================================
// Maps phrases like "Brooklyn 2022 pedestrian" to discrete filter values.
// The parser is an ordered table of independent keyword scans over the
// lower-cased input; within a category the FIRST match wins, so the order
// of each keyword table is part of the contract. No scan depends on
// another's result. Unmatched categories are simply left unconstrained.
// ============================================================================

// Result is a successful parse: the criteria plus a human-readable list of
// the filters that were detected, in scan order. The list is user feedback
// only — the criteria object is the machine contract.
type Result struct {
	Criteria engine.Criteria `json:"criteria"`
	Applied  []string        `json:"applied"`
}

// Parse scans text and returns the detected criteria. ok is false when the
// input is empty or no category matched at all — the caller must treat that
// as "do nothing", not as "clear all filters".
func Parse(text string) (*Result, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}

	lower := strings.ToLower(text)
	res := &Result{Criteria: engine.DefaultCriteria()}

	for _, scan := range scans {
		if desc, ok := scan(text, lower, &res.Criteria); ok {
			res.Applied = append(res.Applied, desc)
		}
	}

	if len(res.Applied) == 0 {
		return nil, false
	}
	return res, true
}

// scanFunc inspects the input and may set exactly one criteria field.
// It receives both the original text (for the year regexp) and the
// lower-cased text (for everything else).
type scanFunc func(original, lower string, c *engine.Criteria) (string, bool)

// scans run in this exact order; the Applied list follows it.
var scans = []scanFunc{
	scanBorough,
	scanYear,
	scanMonth,
	scanDays,
	scanTimeOfDay,
	scanVehicle,
	scanPersonType,
	scanInjury,
	scanGender,
}

// ============================================================================
// CATEGORY SCANS
// ============================================================================

// boroughs in fixed iteration order.
var boroughs = []string{"manhattan", "brooklyn", "queens", "bronx", "staten island"}

func scanBorough(_, lower string, c *engine.Criteria) (string, bool) {
	for _, b := range boroughs {
		if strings.Contains(lower, b) {
			c.Borough = strings.ToUpper(b)
			return "Borough: " + titleCase(b), true
		}
	}
	return "", false
}

var yearPattern = regexp.MustCompile(`20[1-2][0-9]`)

// scanYear matches the first 4-digit year in the ORIGINAL text.
func scanYear(original, _ string, c *engine.Criteria) (string, bool) {
	m := yearPattern.FindString(original)
	if m == "" {
		return "", false
	}
	year, _ := strconv.Atoi(m)
	c.Year = year
	return "Year: " + m, true
}

// monthTable pairs each token with its month number; full names come before
// abbreviations, in calendar order.
var monthTable = []struct {
	token string
	month int
}{
	{"january", 1}, {"jan", 1},
	{"february", 2}, {"feb", 2},
	{"march", 3}, {"mar", 3},
	{"april", 4}, {"apr", 4},
	{"may", 5},
	{"june", 6}, {"jun", 6},
	{"july", 7}, {"jul", 7},
	{"august", 8}, {"aug", 8},
	{"september", 9}, {"sep", 9},
	{"october", 10}, {"oct", 10},
	{"november", 11}, {"nov", 11},
	{"december", 12}, {"dec", 12},
}

var fullMonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func scanMonth(_, lower string, c *engine.Criteria) (string, bool) {
	for _, e := range monthTable {
		if strings.Contains(lower, e.token) {
			c.Month = e.month
			return "Month: " + fullMonthNames[e.month-1], true
		}
	}
	return "", false
}

// dayTable maps tokens to day-of-week index sets (0=Monday..6=Sunday).
// "weekday" and "weekend" are synthetic tokens; they come after the day
// names, first table match wins.
var dayTable = []struct {
	token string
	days  []int
}{
	{"monday", []int{0}}, {"mon", []int{0}},
	{"tuesday", []int{1}}, {"tue", []int{1}},
	{"wednesday", []int{2}}, {"wed", []int{2}},
	{"thursday", []int{3}}, {"thu", []int{3}},
	{"friday", []int{4}}, {"fri", []int{4}},
	{"saturday", []int{5}}, {"sat", []int{5}},
	{"sunday", []int{6}}, {"sun", []int{6}},
	{"weekday", []int{0, 1, 2, 3, 4}},
	{"weekend", []int{5, 6}},
}

func scanDays(_, lower string, c *engine.Criteria) (string, bool) {
	for _, e := range dayTable {
		if strings.Contains(lower, e.token) {
			c.Days = append([]int(nil), e.days...)
			names := make([]string, len(e.days))
			for i, d := range e.days {
				names[i] = engine.DayName(d)
			}
			return "Days: " + strings.Join(names, ", "), true
		}
	}
	return "", false
}

// timeTable is checked in this exact priority order; only one branch fires.
// "late night" and "midnight" both contain "night" as a substring and must
// come before it, otherwise the [0,5] range could never fire.
var timeTable = []struct {
	token    string
	min, max int
}{
	{"morning", 6, 10},
	{"afternoon", 12, 17},
	{"evening", 17, 20},
	{"late night", 0, 5},
	{"midnight", 0, 5},
	{"night", 20, 23},
}

func scanTimeOfDay(_, lower string, c *engine.Criteria) (string, bool) {
	for _, e := range timeTable {
		if strings.Contains(lower, e.token) {
			c.HourMin, c.HourMax = e.min, e.max
			return fmt.Sprintf("Hours: %02d:00–%02d:00", e.min, e.max), true
		}
	}
	return "", false
}

// vehicleTable maps common words to normalized vehicle categories.
var vehicleTable = []struct {
	token    string
	category string
}{
	{"sedan", "SEDAN"},
	{"suv", "STATION WAGON/SPORT UTILITY VEHICLE"},
	{"taxi", "TAXI"},
	{"truck", "PICK-UP TRUCK"},
	{"bus", "BUS"},
	{"motorcycle", "MOTORCYCLE"},
	{"bike", "BICYCLE"},
	{"scooter", "E-SCOOTER"},
	{"van", "VAN"},
	{"ambulance", "AMBULANCE"},
	{"moped", "MOPED"},
}

func scanVehicle(_, lower string, c *engine.Criteria) (string, bool) {
	for _, e := range vehicleTable {
		if strings.Contains(lower, e.token) {
			c.VehicleType = e.category
			return "Vehicle: " + e.category, true
		}
	}
	return "", false
}

func scanPersonType(_, lower string, c *engine.Criteria) (string, bool) {
	switch {
	case strings.Contains(lower, "pedestrian"):
		c.PersonType = "PEDESTRIAN"
	case strings.Contains(lower, "cyclist"):
		c.PersonType = "CYCLIST"
	case strings.Contains(lower, "occupant") || strings.Contains(lower, "driver"):
		c.PersonType = "OCCUPANT"
	default:
		return "", false
	}
	return "Person: " + titleCase(strings.ToLower(c.PersonType)), true
}

func scanInjury(_, lower string, c *engine.Criteria) (string, bool) {
	switch {
	case strings.Contains(lower, "fatal"), strings.Contains(lower, "death"), strings.Contains(lower, "killed"):
		c.PersonInjury = "KILLED"
		return "Injury: Killed", true
	case strings.Contains(lower, "injured"), strings.Contains(lower, "injury"):
		c.PersonInjury = "INJURED"
		return "Injury: Injured", true
	}
	return "", false
}

// scanGender: "female" contains "male" as a substring, so the male branch
// only fires when "female" is absent.
func scanGender(_, lower string, c *engine.Criteria) (string, bool) {
	male := strings.Contains(lower, "male")
	female := strings.Contains(lower, "female")
	switch {
	case male && !female:
		c.Gender = "M"
		return "Gender: M", true
	case female:
		c.Gender = "F"
		return "Gender: F", true
	}
	return "", false
}

// titleCase upper-cases the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
