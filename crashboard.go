// Package crashboard provides an in-memory analytics engine over NYC
// motor-vehicle collision records.
//
// Usage:
//
//	table, err := dataset.Load("nyc_crashes_integrated_clean.csv")
//	view := engine.NewView(table)
//
//	report := engine.BuildReport(view, criteria, engine.ReportOptions{})
//
// The engine filters an immutable table through zero-copy index views and
// returns render-ready output (summary table, chart configs, insight text).
//
// Free-text search is handled separately by the query package. The engine
// never calls any external service — all computation is local.
package crashboard
