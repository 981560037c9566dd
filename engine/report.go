package engine

import (
	"fmt"
	"log"

	"github.com/yousemazhar/crashboard/dataset"
)

// ============================================================================
// REPORT — The single report entry point
// ============================================================================
// Pipeline:
//   1. Apply criteria → sub-view (zero-copy)
//   2. Empty subset → NoData short-circuit, no aggregation runs
//   3. Summary statistics
//   4. Charts in fixed positional order, each with one insight line
//   5. Return everything atomically
//
// The chart positions are part of the contract with the presentation layer:
//   0 crashes over time, 1 injury-status pie, 2 generic bar A,
//   3 generic bar B, 4 secondary contributing factors, 5 day×hour heatmap,
//   6 injury/fatality comparison, 7 geographic sample.
// ============================================================================

// factor sentinels excluded from the secondary contributing-factor chart.
var excludedFactors = map[string]bool{
	"":                      true,
	"UNSPECIFIED":           true,
	dataset.NoSecondVehicle: true,
}

// temporalFields group by a key with a natural value order; their charts
// sort ascending by that order instead of by value.
var temporalFields = map[string]bool{
	"year": true, "month": true, "day": true, "hour": true,
}

// BuildReport filters the view by criteria and computes the full dashboard
// output. On an empty filtered subset it returns a NoData report without
// running any aggregation.
func BuildReport(view View, criteria Criteria, opts ReportOptions, engineOpts ...Option) *Report {
	cfg := applyOptions(engineOpts)
	opts = normalizeOptions(opts, cfg)

	filtered := Apply(view, criteria)
	log.Printf("report: %d records after filtering (from %d)", filtered.Len(), view.Len())

	if filtered.Len() == 0 {
		return &Report{
			NoData:  true,
			Message: "No records match the selected filters. Try broadening your selection.",
		}
	}

	summary := Summarize(filtered)

	charts := make([]*ChartConfig, 0, 8)
	insights := make([]string, 0, 8)
	add := func(c *ChartConfig, insight string) {
		charts = append(charts, c)
		insights = append(insights, insight)
	}

	// 0: crashes over time
	yearKey, _ := GroupField("year")
	years := GroupBy(filtered, yearKey, nil, SortNatural, 0)
	add(BuildSeriesChart("line", "Crashes Over Time", "Year", "Crashes", years),
		ExtremesInsight(years, "crashes"))

	// 1: injury-status distribution
	injuryKey, _ := GroupField("person_injury")
	injuries := GroupBy(filtered, injuryKey, nil, SortValueDesc, 0)
	add(BuildSeriesChart("pie", "Injury Status Distribution", "", "Records", injuries),
		ExtremesInsight(injuries, "records"))

	// 2 + 3: configurable bar charts
	add(buildGenericChart(filtered, opts.GroupField1, opts.Measure1, opts.TopN))
	add(buildGenericChart(filtered, opts.GroupField2, opts.Measure2, opts.TopN))

	// 4: secondary contributing factors (degenerate-safe)
	add(buildSecondaryFactorChart(filtered, opts.TopN))

	// 5: day×hour heatmap
	grid := DayHourGrid(filtered)
	add(BuildHeatmapChart("Crashes by Day and Hour", grid), HeatmapInsight(grid))

	// 6: comparison rates; day-of-week grouping keeps Monday→Sunday order
	compareKey, ok := GroupField(opts.CompareField)
	if !ok {
		compareKey, _ = GroupField("vehicle_type")
		opts.CompareField = "vehicle_type"
	}
	policy := SortValueDesc
	if opts.CompareField == "day" {
		policy = SortNatural
	}
	rates := CompareRates(filtered, compareKey, policy, cfg.CompareTopN)
	add(BuildRatesChart("Injury and Fatality Rates by "+FieldLabel(opts.CompareField), FieldLabel(opts.CompareField), rates),
		RatesInsight(rates, FieldLabel(opts.CompareField)))

	// 7: geographic sample
	points, eligible := SampleCoordinates(filtered, cfg.SampleCap, cfg.SampleSeed)
	add(BuildMapChart("Crash Locations", points), SampleInsight(len(points), eligible))

	return &Report{
		Summary:      summary,
		SummaryTable: BuildSummaryTable(summary),
		Charts:       charts,
		Insights:     insights,
	}
}

// buildGenericChart renders one configurable chart: temporal fields sort by
// natural key order without truncation, categorical fields sort by value
// descending and keep the top N.
func buildGenericChart(view View, field, measure string, topN int) (*ChartConfig, string) {
	key, ok := GroupField(field)
	if !ok {
		return BuildPlaceholderChart("bar", "Unknown Field",
				fmt.Sprintf("Unknown grouping field %q.", field)),
			"No data to summarize."
	}
	value, ok := MeasureField(measure)
	if !ok {
		return BuildPlaceholderChart("bar", FieldLabel(field),
				fmt.Sprintf("Unknown measure %q.", measure)),
			"No data to summarize."
	}

	policy, limit := SortValueDesc, topN
	if temporalFields[field] {
		policy, limit = SortNatural, 0
	}

	groups := GroupBy(view, key, value, policy, limit)
	title := FieldLabel(measure) + " by " + FieldLabel(field)
	chartType := "bar"
	if temporalFields[field] {
		chartType = "line"
	}

	return BuildSeriesChart(chartType, title, FieldLabel(field), FieldLabel(measure), groups),
		ExtremesInsight(groups, subjectFor(measure))
}

// buildSecondaryFactorChart charts secondary contributing factors. After the
// sentinel exclusions the selection can legitimately have zero groups; that
// degrades to a placeholder chart, never an error.
func buildSecondaryFactorChart(view View, topN int) (*ChartConfig, string) {
	withFactor := FilterRecords(view, func(r *dataset.Record) bool {
		return !excludedFactors[r.Factor2]
	})

	if withFactor.Len() == 0 {
		return BuildPlaceholderChart("bar", "Secondary Contributing Factors",
				"No secondary contributing factors recorded for this selection."),
			"No secondary contributing factors recorded."
	}

	key := func(r *dataset.Record) GroupKey { return GroupKey{Label: r.Factor2} }
	groups := GroupBy(withFactor, key, nil, SortValueDesc, topN)

	return BuildSeriesChart("bar", "Secondary Contributing Factors", "Factor", "Crashes", groups),
		ExtremesInsight(groups, "crashes")
}

// subjectFor phrases a measure for insight text.
func subjectFor(measure string) string {
	if measure == "" || measure == "records" {
		return "crashes"
	}
	return FieldLabel(measure)
}

// normalizeOptions fills defaults and enforces the top-N floor.
func normalizeOptions(opts ReportOptions, cfg *config) ReportOptions {
	if opts.GroupField1 == "" {
		opts.GroupField1 = "borough"
	}
	if opts.GroupField2 == "" {
		opts.GroupField2 = "vehicle_type"
	}
	if opts.CompareField == "" {
		opts.CompareField = "vehicle_type"
	}
	if opts.TopN < 5 {
		opts.TopN = cfg.DefaultTopN
	}
	return opts
}
