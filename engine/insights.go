package engine

import "fmt"

// ============================================================================
// INSIGHTS — One-line extremal summaries per chart
// ============================================================================
// Every chart gets a single generated sentence naming the argmax and argmin
// buckets of its aggregation. The comparison chart names the injury-rate
// and fatality-rate argmax separately — they can differ.
// ============================================================================

// ExtremesInsight names the largest and smallest bucket of a grouped result.
// subject is the aggregated quantity, e.g. "crashes" or "persons injured".
func ExtremesInsight(groups []Group, subject string) string {
	if len(groups) == 0 {
		return "No data to summarize."
	}
	if len(groups) == 1 {
		return fmt.Sprintf("%s accounts for all %s %s.",
			groups[0].Label, FormatValue(groups[0].Value), subject)
	}

	max, min := groups[0], groups[0]
	for _, g := range groups[1:] {
		if g.Value > max.Value {
			max = g
		}
		if g.Value < min.Value {
			min = g
		}
	}

	return fmt.Sprintf("%s has the most %s (%s); %s has the fewest (%s).",
		max.Label, subject, FormatValue(max.Value), min.Label, FormatValue(min.Value))
}

// RatesInsight names the highest injury-rate and highest fatality-rate
// buckets of a comparison result.
func RatesInsight(groups []RateGroup, fieldLabel string) string {
	if len(groups) == 0 {
		return "No data to summarize."
	}

	maxInjury, maxFatality := groups[0], groups[0]
	for _, g := range groups[1:] {
		if g.InjuryRate > maxInjury.InjuryRate {
			maxInjury = g
		}
		if g.FatalityRate > maxFatality.FatalityRate {
			maxFatality = g
		}
	}

	return fmt.Sprintf("By %s, %s has the highest injury rate (%.1f per 100 records) and %s the highest fatality rate (%.2f per 100 records).",
		fieldLabel, maxInjury.Label, maxInjury.InjuryRate, maxFatality.Label, maxFatality.FatalityRate)
}

// HeatmapInsight names the busiest (day, hour) cell of the grid.
func HeatmapInsight(grid *HeatmapGrid) string {
	if grid == nil || len(grid.Values) == 0 {
		return "No data to summarize."
	}

	bestDay, bestHour := 0, 0
	var best float64
	for d, row := range grid.Values {
		for h, v := range row {
			if v > best {
				best = v
				bestDay, bestHour = d, h
			}
		}
	}
	if best == 0 {
		return "No crashes recorded in any day-hour slot."
	}

	return fmt.Sprintf("The busiest slot is %s at %s:00 with %s crashes.",
		grid.Rows[bestDay], grid.Cols[bestHour], FormatValue(best))
}

// SampleInsight describes the geographic sample.
func SampleInsight(shown, eligible int) string {
	if eligible == 0 {
		return "No records with valid coordinates in this selection."
	}
	if shown < eligible {
		return fmt.Sprintf("Showing a fixed random sample of %s of %s located crashes.",
			FormatInt(shown), FormatInt(eligible))
	}
	return fmt.Sprintf("Showing all %s located crashes.", FormatInt(shown))
}
