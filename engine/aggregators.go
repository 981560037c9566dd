package engine

import (
	"fmt"
	"sort"

	"github.com/yousemazhar/crashboard/dataset"
)

// ============================================================================
// AGGREGATORS — Grouping, Aggregation, and Sorting over Views
// ============================================================================
// One parameterized pipeline serves every chart: group → aggregate → sort →
// limit. The sort policy and top-N are explicit parameters, so the
// day-of-week ordering exception of the comparison chart is a caller choice
// instead of a branch buried in chart code.
// ============================================================================

// SortPolicy selects how grouped results are ordered.
type SortPolicy int

const (
	// SortNatural orders buckets by the key's natural order (years
	// ascending, Monday→Sunday, ...). Plain categorical keys keep
	// first-seen order.
	SortNatural SortPolicy = iota
	// SortValueDesc orders buckets by aggregated value, largest first.
	SortValueDesc
)

// GroupBy groups a view by key, aggregates value per bucket (record count
// when value is nil), sorts by policy, and truncates to topN (0 = all).
func GroupBy(view View, key KeyFunc, value ValueFunc, policy SortPolicy, topN int) []Group {
	if view.Len() == 0 {
		return nil
	}

	buckets := make(map[string]*Group)
	order := make([]string, 0)

	for i := 0; i < view.Len(); i++ {
		r := view.At(i)
		k := key(r)
		g, ok := buckets[k.Label]
		if !ok {
			g = &Group{Label: k.Label, Order: k.Order}
			buckets[k.Label] = g
			order = append(order, k.Label)
		}
		g.Count++
		if value == nil {
			g.Value++
		} else {
			g.Value += value(r)
		}
	}

	groups := make([]Group, 0, len(order))
	for _, label := range order {
		groups = append(groups, *buckets[label])
	}

	sortGroups(groups, policy)

	if topN > 0 && len(groups) > topN {
		groups = groups[:topN]
	}
	return groups
}

func sortGroups(groups []Group, policy SortPolicy) {
	switch policy {
	case SortValueDesc:
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value > groups[j].Value })
	default:
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Order < groups[j].Order })
	}
}

// ============================================================================
// COMPARISON AGGREGATION — per-group injury and fatality rates
// ============================================================================

// CompareRates groups a view by key and computes per-group rates:
// injuries (or fatalities) per 100 records. Policy SortValueDesc orders by
// injury rate descending; SortNatural keeps the key's natural order — the
// day-of-week comparison chart uses SortNatural so rows always read
// Monday→Sunday.
func CompareRates(view View, key KeyFunc, policy SortPolicy, topN int) []RateGroup {
	if view.Len() == 0 {
		return nil
	}

	type bucket struct {
		order           int
		count           int
		injured, killed float64
	}
	buckets := make(map[string]*bucket)
	order := make([]string, 0)

	for i := 0; i < view.Len(); i++ {
		r := view.At(i)
		k := key(r)
		b, ok := buckets[k.Label]
		if !ok {
			b = &bucket{order: k.Order}
			buckets[k.Label] = b
			order = append(order, k.Label)
		}
		b.count++
		b.injured += float64(r.PersonsInjured)
		b.killed += float64(r.PersonsKilled)
	}

	groups := make([]RateGroup, 0, len(order))
	for _, label := range order {
		b := buckets[label]
		groups = append(groups, RateGroup{
			Label:        label,
			Order:        b.order,
			Count:        b.count,
			InjuryRate:   b.injured / float64(b.count) * 100,
			FatalityRate: b.killed / float64(b.count) * 100,
		})
	}

	switch policy {
	case SortValueDesc:
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].InjuryRate > groups[j].InjuryRate })
	default:
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Order < groups[j].Order })
	}

	if topN > 0 && len(groups) > topN {
		groups = groups[:topN]
	}
	return groups
}

// ============================================================================
// DAY × HOUR GRID — dense heatmap matrix
// ============================================================================

// DayHourGrid counts records per (day-of-week, hour) combination and returns
// a dense 7×24 grid: rows Monday..Sunday, columns 00:00..23:00, missing
// combinations zero.
func DayHourGrid(view View) *HeatmapGrid {
	values := make([][]float64, 7)
	for d := range values {
		values[d] = make([]float64, 24)
	}

	for i := 0; i < view.Len(); i++ {
		r := view.At(i)
		if r.Day >= 0 && r.Day < 7 && r.Hour >= 0 && r.Hour < 24 {
			values[r.Day][r.Hour]++
		}
	}

	cols := make([]string, 24)
	for h := range cols {
		cols[h] = fmt.Sprintf("%02d", h)
	}

	rows := make([]string, 7)
	copy(rows, dayNames)

	return &HeatmapGrid{Rows: rows, Cols: cols, Values: values}
}

// ============================================================================
// SUMMARY
// ============================================================================

// Summarize computes the headline statistics over a view. Rates are
// per 100 records; callers guarantee a non-empty view (the report layer
// short-circuits empty subsets before aggregation).
func Summarize(view View) SummaryStats {
	var s SummaryStats
	s.TotalRecords = view.Len()

	for i := 0; i < view.Len(); i++ {
		r := view.At(i)
		s.PersonsInjured += r.PersonsInjured
		s.PersonsKilled += r.PersonsKilled
		s.PedestriansInjured += r.PedestriansInjured
		s.PedestriansKilled += r.PedestriansKilled
		s.CyclistsInjured += r.CyclistsInjured
		s.CyclistsKilled += r.CyclistsKilled
		s.MotoristsInjured += r.MotoristsInjured
		s.MotoristsKilled += r.MotoristsKilled
	}

	if s.TotalRecords > 0 {
		s.InjuryRate = float64(s.PersonsInjured) / float64(s.TotalRecords) * 100
		s.FatalityRate = float64(s.PersonsKilled) / float64(s.TotalRecords) * 100
	}
	return s
}

// SumField sums a measure over a view. A nil ValueFunc counts records.
func SumField(view View, value ValueFunc) float64 {
	if value == nil {
		return float64(view.Len())
	}
	var total float64
	for i := 0; i < view.Len(); i++ {
		total += value(view.At(i))
	}
	return total
}

// FilterRecords applies a predicate and returns the matching sub-view.
// Used by the sampler for coordinate validity.
func FilterRecords(view View, keep func(*dataset.Record) bool) View {
	positions := make([]int, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		if keep(view.At(i)) {
			positions = append(positions, i)
		}
	}
	return view.subset(positions)
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}

// FormatValue renders an aggregated value: whole numbers without decimals,
// fractional values with one.
func FormatValue(v float64) string {
	if v == float64(int64(v)) {
		return FormatInt(int(v))
	}
	return fmt.Sprintf("%.1f", v)
}
