package engine

// ============================================================================
// ENGINE TYPES — Collision Analytics
// ============================================================================
// Criteria describe which records to include; Report is the render-ready
// output for one dashboard request. The engine has no external dependencies
// beyond the dataset package.
// ============================================================================

// All is the presentation layer's "no constraint" dropdown value.
// An empty string means the same thing.
const All = "All"

// ============================================================================
// CRITERIA — Contract between presentation/query layers and the engine
// ============================================================================

// Criteria is the complete set of named filter constraints for one report.
// Zero values impose no constraint. HourMin/HourMax of (0,0) is treated as
// the full range — the dashboard never filters down to midnight alone.
type Criteria struct {
	Borough         string `json:"borough,omitempty"`
	Year            int    `json:"year,omitempty"`
	Month           int    `json:"month,omitempty"` // 1..12
	VehicleType     string `json:"vehicleType,omitempty"`
	PersonType      string `json:"personType,omitempty"`
	PersonInjury    string `json:"personInjury,omitempty"`
	Gender          string `json:"gender,omitempty"`
	SafetyEquipment string `json:"safetyEquipment,omitempty"`

	// Days is a set of day-of-week indices, 0=Monday..6=Sunday. Empty = all.
	Days []int `json:"days,omitempty"`

	// Inclusive hour-of-day range.
	HourMin int `json:"hourMin,omitempty"`
	HourMax int `json:"hourMax,omitempty"`

	// FreeText is the legacy substring filter: a record passes when the
	// text appears (case-insensitively) in its borough, primary vehicle
	// type, or primary contributing factor.
	FreeText string `json:"freeText,omitempty"`
}

// DefaultCriteria returns the reset state: every constraint at "All" and
// the hour range at its full span.
func DefaultCriteria() Criteria {
	return Criteria{HourMin: 0, HourMax: 23}
}

// IsEmpty reports whether no constraint is active.
func (c Criteria) IsEmpty() bool {
	return !isSet(c.Borough) && c.Year == 0 && c.Month == 0 &&
		!isSet(c.VehicleType) && !isSet(c.PersonType) && !isSet(c.PersonInjury) &&
		!isSet(c.Gender) && !isSet(c.SafetyEquipment) &&
		len(c.Days) == 0 && !c.hourRangeActive() && c.FreeText == ""
}

// ============================================================================
// REPORT — Render-ready output for one request
// ============================================================================

// ReportOptions are the chart-configuration choices of one request.
type ReportOptions struct {
	// GroupField1/Measure1 configure the first generic bar chart; likewise
	// GroupField2/Measure2. Field names are resolved via GroupField and
	// MeasureField in fields.go.
	GroupField1 string `json:"groupField1,omitempty"`
	Measure1    string `json:"measure1,omitempty"`
	GroupField2 string `json:"groupField2,omitempty"`
	Measure2    string `json:"measure2,omitempty"`

	// TopN caps categorical bar charts. Values below 5 fall back to the
	// engine default.
	TopN int `json:"topN,omitempty"`

	// CompareField is the grouping field for the injury/fatality rate chart.
	CompareField string `json:"compareField,omitempty"`
}

// Report is the full output of one dashboard request, returned atomically.
// Charts and Insights are positionally aligned and always the same length.
type Report struct {
	NoData  bool   `json:"noData"`
	Message string `json:"message,omitempty"`

	Summary      SummaryStats `json:"summary"`
	SummaryTable *TableData   `json:"summaryTable,omitempty"`

	Charts   []*ChartConfig `json:"charts"`
	Insights []string       `json:"insights"`
}

// SummaryStats are the headline numbers over the filtered subset.
// Rates are per 100 records and only computed on a non-empty subset.
type SummaryStats struct {
	TotalRecords int `json:"totalRecords"`

	PersonsInjured     int `json:"personsInjured"`
	PersonsKilled      int `json:"personsKilled"`
	PedestriansInjured int `json:"pedestriansInjured"`
	PedestriansKilled  int `json:"pedestriansKilled"`
	CyclistsInjured    int `json:"cyclistsInjured"`
	CyclistsKilled     int `json:"cyclistsKilled"`
	MotoristsInjured   int `json:"motoristsInjured"`
	MotoristsKilled    int `json:"motoristsKilled"`

	InjuryRate   float64 `json:"injuryRate"`
	FatalityRate float64 `json:"fatalityRate"`
}

// ============================================================================
// GROUP — Intermediate aggregation result
// ============================================================================

// Group is one grouped/aggregated bucket.
type Group struct {
	Label string  `json:"label"`
	Order int     `json:"order"` // natural sort position of the key
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// RateGroup is one bucket of the comparison aggregation.
type RateGroup struct {
	Label        string  `json:"label"`
	Order        int     `json:"order"`
	Count        int     `json:"count"`
	InjuryRate   float64 `json:"injuryRate"`   // injuries per 100 records
	FatalityRate float64 `json:"fatalityRate"` // fatalities per 100 records
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartConfig defines how to render one chart. Exactly one of Series,
// Heatmap, or Points is populated, matching ChartType.
type ChartConfig struct {
	ChartType  string        `json:"chartType"` // "line", "pie", "bar", "heatmap", "map"
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series,omitempty"`
	Heatmap    *HeatmapGrid  `json:"heatmap,omitempty"`
	Points     []MapPoint    `json:"points,omitempty"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`

	// Placeholder is set when a degenerate selection left nothing to chart.
	Placeholder string `json:"placeholder,omitempty"`
}

// ChartSeries is one data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint is a single labeled value.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// HeatmapGrid is a dense day×hour frequency matrix: 7 rows Monday..Sunday,
// 24 columns 0..23, missing combinations filled with zero.
type HeatmapGrid struct {
	Rows   []string    `json:"rows"`
	Cols   []string    `json:"cols"`
	Values [][]float64 `json:"values"`
}

// MapPoint is one sampled collision location.
type MapPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number", "percent"
	Align string `json:"align"` // "left", "center", "right"
}

// ============================================================================
// INTERNAL HELPERS
// ============================================================================

// isSet reports whether an equality constraint is active.
func isSet(v string) bool {
	return v != "" && v != All
}

// hourRangeActive reports whether the hour range constrains anything.
// (0,0) is the zero value and means "unset"; (0,23) is the full span.
func (c Criteria) hourRangeActive() bool {
	if c.HourMin == 0 && (c.HourMax == 0 || c.HourMax == 23) {
		return false
	}
	return true
}
