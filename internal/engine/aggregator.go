package engine

import (
	"sort"

	"regionchart/internal/models"
)

// Summarize totals both metrics per year over all records. Gaps are left
// out of the totals and out of the reporting count; a record reports for a
// year when at least one of its readings is present.
func Summarize(records []models.Record) []models.YearSummary {
	byYear := make(map[int]*models.YearSummary)

	for _, r := range records {
		for _, v := range r.Values {
			if v.MetricA == nil && v.MetricB == nil {
				continue
			}
			s, ok := byYear[v.Year]
			if !ok {
				s = &models.YearSummary{Year: v.Year}
				byYear[v.Year] = s
			}
			var total float64
			if v.MetricA != nil {
				s.TotalA += *v.MetricA
				total += *v.MetricA
			}
			if v.MetricB != nil {
				s.TotalB += *v.MetricB
				total += *v.MetricB
			}
			s.Reporting++
			// First record wins ties.
			if s.TopID == "" || total > s.TopTotal {
				s.TopID = r.ID
				s.TopTotal = total
			}
		}
	}

	out := make([]models.YearSummary, 0, len(byYear))
	for _, s := range byYear {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
