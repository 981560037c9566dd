package engine

import "testing"

// ============================================================================
// FILTER TESTS
// ============================================================================

func TestApplyEmptyCriteriaReturnsAll(t *testing.T) {
	v := testView()
	got := Apply(v, DefaultCriteria())
	if got.Len() != v.Len() {
		t.Fatalf("Len = %d, want %d", got.Len(), v.Len())
	}
}

func TestApplyConjunctionIsIntersection(t *testing.T) {
	v := testView()
	c1 := Criteria{Borough: "BROOKLYN"}
	c2 := Criteria{Year: 2021}
	both := Criteria{Borough: "BROOKLYN", Year: 2021}

	inC2 := make(map[string]bool)
	for _, id := range ids(Apply(v, c2)) {
		inC2[id] = true
	}
	var intersection []string
	for _, id := range ids(Apply(v, c1)) {
		if inC2[id] {
			intersection = append(intersection, id)
		}
	}

	if got := ids(Apply(v, both)); !equalStrings(got, intersection) {
		t.Errorf("conjunction %v != intersection %v", got, intersection)
	}
}

func TestApplyIdempotence(t *testing.T) {
	v := testView()
	c := Criteria{Borough: "QUEENS"}
	once := Apply(v, c)
	twice := Apply(once, c)
	if !equalStrings(ids(once), ids(twice)) {
		t.Errorf("re-filtering changed the subset: %v vs %v", ids(once), ids(twice))
	}
}

func TestApplyDeterministicAndOrderPreserving(t *testing.T) {
	v := testView()
	c := Criteria{PersonInjury: "INJURED"}
	want := []string{"c2", "c3", "c6", "c8"}
	for i := 0; i < 3; i++ {
		if got := ids(Apply(v, c)); !equalStrings(got, want) {
			t.Fatalf("run %d: got %v, want %v", i, got, want)
		}
	}
}

// Concrete scenario: borough=Brooklyn, year=2021 matches exactly one record
// and the injury sum over that subset equals that record's count.
func TestBrooklyn2021Scenario(t *testing.T) {
	v := testView()
	sub := Apply(v, Criteria{Borough: "BROOKLYN", Year: 2021})
	if sub.Len() != 1 {
		t.Fatalf("Len = %d, want 1", sub.Len())
	}
	if sub.At(0).CollisionID != "c2" {
		t.Errorf("matched %q, want c2", sub.At(0).CollisionID)
	}
	if s := Summarize(sub); s.PersonsInjured != 2 {
		t.Errorf("PersonsInjured = %d, want 2", s.PersonsInjured)
	}
}

func TestApplyDaySetAndHourRange(t *testing.T) {
	v := testView()

	weekend := Apply(v, Criteria{Days: []int{5, 6}})
	want := []string{"c3", "c5", "c8", "c9"}
	if got := ids(weekend); !equalStrings(got, want) {
		t.Errorf("weekend = %v, want %v", got, want)
	}

	evening := Apply(v, Criteria{HourMin: 17, HourMax: 20})
	want = []string{"c2", "c8"}
	if got := ids(evening); !equalStrings(got, want) {
		t.Errorf("evening = %v, want %v", got, want)
	}

	// (0,0) hour range is the zero value and must not constrain.
	all := Apply(v, Criteria{HourMin: 0, HourMax: 0})
	if all.Len() != v.Len() {
		t.Errorf("zero hour range filtered records: %d of %d", all.Len(), v.Len())
	}
}

func TestApplyFreeTextLegacyFilter(t *testing.T) {
	v := testView()

	// Matches the vehicle-type field.
	if got := ids(Apply(v, Criteria{FreeText: "taxi"})); !equalStrings(got, []string{"c2", "c5"}) {
		t.Errorf("taxi = %v", got)
	}

	// Matches the borough field, case-insensitively.
	if got := Apply(v, Criteria{FreeText: "Brook"}); got.Len() != 3 {
		t.Errorf("Brook matched %d records, want 3", got.Len())
	}

	// Matches the primary contributing factor.
	if got := ids(Apply(v, Criteria{FreeText: "inattention"})); !equalStrings(got, []string{"c1", "c10"}) {
		t.Errorf("inattention = %v", got)
	}

	// Combined with a structured constraint (AND semantics).
	if got := ids(Apply(v, Criteria{FreeText: "inattention", Borough: "BROOKLYN"})); !equalStrings(got, []string{"c1"}) {
		t.Errorf("inattention+brooklyn = %v", got)
	}
}

func TestApplyGenderAndVehicle(t *testing.T) {
	v := testView()

	if got := ids(Apply(v, Criteria{Gender: "F", VehicleType: "SEDAN"})); !equalStrings(got, []string{"c4", "c6", "c9"}) {
		t.Errorf("F+SEDAN = %v", got)
	}

	// "All" is equivalent to unset.
	if got := Apply(v, Criteria{Borough: All}); got.Len() != v.Len() {
		t.Errorf("Borough=All filtered records")
	}
}
