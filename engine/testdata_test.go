package engine

import (
	"github.com/yousemazhar/crashboard/dataset"
)

// ============================================================================
// TEST FIXTURE — small hand-built collision table
// ============================================================================

type recSpec struct {
	id      string
	year    int
	month   int
	day     int // 0=Monday..6=Sunday
	hour    int
	borough string
	vt1     string
	ptype   string
	injury  string
	sex     string
	injured int
	killed  int
	lat     float64
	lon     float64
	factor1 string
	factor2 string
}

func buildTable(specs []recSpec) *dataset.Table {
	records := make([]dataset.Record, len(specs))
	for i, s := range specs {
		records[i] = dataset.Record{
			CollisionID:    s.id,
			Year:           s.year,
			Month:          s.month,
			Day:            s.day,
			Hour:           s.hour,
			Borough:        s.borough,
			VehicleType1:   s.vt1,
			VehicleType2:   dataset.NoSecondVehicle,
			PersonType:     s.ptype,
			PersonInjury:   s.injury,
			PersonSex:      s.sex,
			Factor1:        s.factor1,
			Factor2:        s.factor2,
			Latitude:       s.lat,
			Longitude:      s.lon,
			PersonsInjured: s.injured,
			PersonsKilled:  s.killed,
		}
	}
	return dataset.NewTable(records)
}

// testTable is the base-table scenario used across engine tests: 10 records,
// 3 in Brooklyn with years 2020/2021/2022, one of which carries 2 injuries.
func testTable() *dataset.Table {
	return buildTable([]recSpec{
		{"c1", 2020, 1, 0, 8, "BROOKLYN", "SEDAN", "OCCUPANT", "UNSPECIFIED", "M", 0, 0, 40.65, -73.95, "DRIVER INATTENTION/DISTRACTION", "UNSPECIFIED"},
		{"c2", 2021, 6, 2, 17, "BROOKLYN", "TAXI", "OCCUPANT", "INJURED", "F", 2, 0, 40.68, -73.94, "FOLLOWING TOO CLOSELY", "DRIVER INEXPERIENCE"},
		{"c3", 2022, 7, 5, 22, "BROOKLYN", "BICYCLE", "CYCLIST", "INJURED", "M", 1, 0, 40.70, -73.93, "UNSAFE SPEED", "UNSPECIFIED"},
		{"c4", 2021, 3, 1, 9, "MANHATTAN", "SEDAN", "PEDESTRIAN", "KILLED", "F", 0, 1, 40.75, -73.99, "FAILURE TO YIELD RIGHT-OF-WAY", ""},
		{"c5", 2021, 3, 6, 14, "MANHATTAN", "TAXI", "OCCUPANT", "UNSPECIFIED", "M", 0, 0, 40.76, -73.98, "UNSPECIFIED", "UNSPECIFIED"},
		{"c6", 2022, 11, 4, 2, "QUEENS", "SEDAN", "OCCUPANT", "INJURED", "F", 1, 0, 40.73, -73.80, "ALCOHOL INVOLVEMENT", "UNSPECIFIED"},
		{"c7", 2020, 9, 3, 12, "QUEENS", "BUS", "OCCUPANT", "UNSPECIFIED", "M", 0, 0, 0, 0, "UNSPECIFIED", ""},
		{"c8", 2022, 5, 5, 19, "BRONX", "MOTORCYCLE", "OCCUPANT", "INJURED", "M", 1, 0, 40.85, -73.88, "UNSAFE LANE CHANGING", "UNSPECIFIED"},
		{"c9", 2023, 2, 6, 23, "BRONX", "SEDAN", "OCCUPANT", "UNSPECIFIED", "F", 0, 0, 40.86, -73.87, "UNSPECIFIED", ""},
		{"c10", 2023, 8, 0, 7, "STATEN ISLAND", "PICK-UP TRUCK", "OCCUPANT", "UNSPECIFIED", "M", 0, 0, 40.58, -74.15, "DRIVER INATTENTION/DISTRACTION", "UNSPECIFIED"},
	})
}

func testView() View { return NewView(testTable()) }

// ids extracts the collision IDs of a view in order.
func ids(v View) []string {
	out := make([]string, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = v.At(i).CollisionID
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
