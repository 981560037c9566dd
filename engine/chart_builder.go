package engine

// ============================================================================
// CHART BUILDER — Produces ChartConfig from aggregated groups
// ============================================================================

// Default color palette for chart series.
var defaultColors = []string{
	"#3498db", "#2ecc71", "#f39c12", "#e74c3c", "#9b59b6",
	"#1abc9c", "#e67e22", "#34495e", "#f1c40f", "#7f8c8d",
}

// BuildSeriesChart produces a single-series chart of a grouped result.
func BuildSeriesChart(chartType, title, xAxis, yAxis string, groups []Group) *ChartConfig {
	config := &ChartConfig{
		ChartType:  chartType,
		Title:      title,
		XAxis:      xAxis,
		YAxis:      yAxis,
		ShowLegend: chartType == "pie",
		ShowGrid:   chartType != "pie",
	}

	if len(groups) == 0 {
		config.Placeholder = "No data for this chart."
		return config
	}

	points := make([]ChartPoint, 0, len(groups))
	for _, g := range groups {
		points = append(points, ChartPoint{Label: g.Label, Value: g.Value})
	}

	config.Series = []ChartSeries{{Name: yAxis, Data: points, Color: defaultColors[0]}}
	config.Colors = assignColors(len(points))
	return config
}

// BuildRatesChart produces the two-series comparison chart: injury rate and
// fatality rate per group.
func BuildRatesChart(title, xAxis string, groups []RateGroup) *ChartConfig {
	config := &ChartConfig{
		ChartType:  "bar",
		Title:      title,
		XAxis:      xAxis,
		YAxis:      "Rate per 100 records",
		ShowLegend: true,
		ShowGrid:   true,
	}

	if len(groups) == 0 {
		config.Placeholder = "No data for this chart."
		return config
	}

	injury := make([]ChartPoint, 0, len(groups))
	fatality := make([]ChartPoint, 0, len(groups))
	for _, g := range groups {
		injury = append(injury, ChartPoint{Label: g.Label, Value: g.InjuryRate})
		fatality = append(fatality, ChartPoint{Label: g.Label, Value: g.FatalityRate})
	}

	config.Series = []ChartSeries{
		{Name: "Injury rate", Data: injury, Color: defaultColors[2]},
		{Name: "Fatality rate", Data: fatality, Color: defaultColors[3]},
	}
	config.Colors = []string{defaultColors[2], defaultColors[3]}
	return config
}

// BuildHeatmapChart wraps a day×hour grid as a chart.
func BuildHeatmapChart(title string, grid *HeatmapGrid) *ChartConfig {
	return &ChartConfig{
		ChartType: "heatmap",
		Title:     title,
		XAxis:     "Hour",
		YAxis:     "Day of Week",
		Heatmap:   grid,
		ShowGrid:  true,
	}
}

// BuildMapChart wraps sampled coordinates as a chart.
func BuildMapChart(title string, points []MapPoint) *ChartConfig {
	config := &ChartConfig{
		ChartType: "map",
		Title:     title,
		Points:    points,
	}
	if len(points) == 0 {
		config.Placeholder = "No located crashes in this selection."
	}
	return config
}

// BuildPlaceholderChart produces an empty chart with an explanatory note.
// Used when a degenerate selection (e.g. no secondary contributing factors)
// leaves zero groups.
func BuildPlaceholderChart(chartType, title, note string) *ChartConfig {
	return &ChartConfig{
		ChartType:   chartType,
		Title:       title,
		Placeholder: note,
	}
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}
