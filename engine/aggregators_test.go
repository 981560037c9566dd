package engine

import "testing"

// ============================================================================
// AGGREGATOR TESTS
// ============================================================================

func TestGroupByNaturalOrder(t *testing.T) {
	v := testView()
	key, _ := GroupField("year")
	groups := GroupBy(v, key, nil, SortNatural, 0)

	want := []string{"2020", "2021", "2022", "2023"}
	if len(groups) != len(want) {
		t.Fatalf("got %d groups, want %d", len(groups), len(want))
	}
	for i, g := range groups {
		if g.Label != want[i] {
			t.Errorf("group %d = %q, want %q", i, g.Label, want[i])
		}
	}
	// 2021 has c2, c4, c5.
	if groups[1].Value != 3 || groups[1].Count != 3 {
		t.Errorf("2021 value/count = %v/%d, want 3/3", groups[1].Value, groups[1].Count)
	}
}

func TestGroupByValueDescWithTopN(t *testing.T) {
	v := testView()
	key, _ := GroupField("borough")
	groups := GroupBy(v, key, nil, SortValueDesc, 2)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Label != "BROOKLYN" || groups[0].Value != 3 {
		t.Errorf("top group = %q/%v, want BROOKLYN/3", groups[0].Label, groups[0].Value)
	}
	if groups[1].Value > groups[0].Value {
		t.Error("groups not sorted by value descending")
	}
}

func TestGroupBySumMeasure(t *testing.T) {
	v := testView()
	key, _ := GroupField("borough")
	value, _ := MeasureField("persons_injured")
	groups := GroupBy(v, key, value, SortValueDesc, 0)

	if groups[0].Label != "BROOKLYN" || groups[0].Value != 3 {
		t.Errorf("top injuries = %q/%v, want BROOKLYN/3", groups[0].Label, groups[0].Value)
	}
}

func TestGroupByEmptyView(t *testing.T) {
	var empty View
	key, _ := GroupField("year")
	if groups := GroupBy(empty, key, nil, SortNatural, 0); groups != nil {
		t.Errorf("GroupBy on empty view = %v, want nil", groups)
	}
}

func TestCompareRatesSortsByInjuryRate(t *testing.T) {
	v := testView()
	key, _ := GroupField("borough")
	groups := CompareRates(v, key, SortValueDesc, 15)

	for i := 1; i < len(groups); i++ {
		if groups[i].InjuryRate > groups[i-1].InjuryRate {
			t.Errorf("groups not sorted by injury rate: %v before %v", groups[i-1], groups[i])
		}
	}

	// BROOKLYN: 3 injuries over 3 records → 100 per 100 records.
	for _, g := range groups {
		if g.Label == "BROOKLYN" && g.InjuryRate != 100 {
			t.Errorf("BROOKLYN injury rate = %v, want 100", g.InjuryRate)
		}
	}
}

// The comparison aggregation keeps Monday→Sunday order when grouping by
// day-of-week, even though every other grouping sorts by injury rate.
func TestCompareRatesDayOfWeekNaturalOrder(t *testing.T) {
	v := testView()
	key, _ := GroupField("day")
	groups := CompareRates(v, key, SortNatural, 15)

	for i := 1; i < len(groups); i++ {
		if groups[i].Order <= groups[i-1].Order {
			t.Fatalf("day groups out of natural order: %v", groups)
		}
	}
	if groups[0].Label != "Monday" {
		t.Errorf("first day group = %q, want Monday", groups[0].Label)
	}
}

func TestDayHourGridDense(t *testing.T) {
	v := testView()
	grid := DayHourGrid(v)

	if len(grid.Values) != 7 {
		t.Fatalf("rows = %d, want 7", len(grid.Values))
	}
	for d, row := range grid.Values {
		if len(row) != 24 {
			t.Fatalf("row %d has %d cols, want 24", d, len(row))
		}
	}
	if grid.Rows[0] != "Monday" || grid.Rows[6] != "Sunday" {
		t.Errorf("row labels = %v", grid.Rows)
	}

	// c1 is Monday 08:00, c10 is Monday 07:00.
	if grid.Values[0][8] != 1 || grid.Values[0][7] != 1 {
		t.Errorf("Monday cells = %v/%v, want 1/1", grid.Values[0][8], grid.Values[0][7])
	}

	// Missing combinations are zero, not omitted.
	var total float64
	for _, row := range grid.Values {
		for _, cell := range row {
			total += cell
		}
	}
	if total != float64(v.Len()) {
		t.Errorf("grid total = %v, want %d", total, v.Len())
	}
}

func TestSummarize(t *testing.T) {
	v := testView()
	s := Summarize(v)

	if s.TotalRecords != 10 {
		t.Errorf("TotalRecords = %d", s.TotalRecords)
	}
	if s.PersonsInjured != 5 || s.PersonsKilled != 1 {
		t.Errorf("injured/killed = %d/%d, want 5/1", s.PersonsInjured, s.PersonsKilled)
	}
	if s.InjuryRate != 50 {
		t.Errorf("InjuryRate = %v, want 50", s.InjuryRate)
	}
}

func TestFormatInt(t *testing.T) {
	cases := map[int]string{0: "0", 999: "999", 1000: "1,000", 1234567: "1,234,567", -4200: "-4,200"}
	for n, want := range cases {
		if got := FormatInt(n); got != want {
			t.Errorf("FormatInt(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestExtremesInsight(t *testing.T) {
	groups := []Group{
		{Label: "BROOKLYN", Value: 300},
		{Label: "QUEENS", Value: 120},
		{Label: "BRONX", Value: 45},
	}
	got := ExtremesInsight(groups, "crashes")
	want := "BROOKLYN has the most crashes (300); BRONX has the fewest (45)."
	if got != want {
		t.Errorf("insight = %q, want %q", got, want)
	}
}
