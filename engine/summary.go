package engine

import "fmt"

// ============================================================================
// SUMMARY TABLE — Renders SummaryStats as a TableData
// ============================================================================

// BuildSummaryTable renders the headline statistics in a fixed row order.
func BuildSummaryTable(s SummaryStats) *TableData {
	rows := [][]string{
		{"Total records", FormatInt(s.TotalRecords)},
		{"Persons injured", FormatInt(s.PersonsInjured)},
		{"Persons killed", FormatInt(s.PersonsKilled)},
		{"Pedestrians injured", FormatInt(s.PedestriansInjured)},
		{"Pedestrians killed", FormatInt(s.PedestriansKilled)},
		{"Cyclists injured", FormatInt(s.CyclistsInjured)},
		{"Cyclists killed", FormatInt(s.CyclistsKilled)},
		{"Motorists injured", FormatInt(s.MotoristsInjured)},
		{"Motorists killed", FormatInt(s.MotoristsKilled)},
		{"Injury rate", fmt.Sprintf("%.1f per 100 records", s.InjuryRate)},
		{"Fatality rate", fmt.Sprintf("%.2f per 100 records", s.FatalityRate)},
	}

	return &TableData{
		Title: "Summary Statistics",
		Columns: []Column{
			{Key: "metric", Label: "Metric", Type: "text", Align: "left"},
			{Key: "value", Label: "Value", Type: "number", Align: "right"},
		},
		Rows: rows,
	}
}
