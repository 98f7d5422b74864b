package engine

import (
	"regionchart/internal/models"
)

// ProjectForYear returns the readings of r for year. ok is false when year
// lies outside the years generated for r.
func ProjectForYear(r models.Record, year int) (m models.Metrics, ok bool) {
	for _, v := range r.Values {
		if v.Year == year {
			return models.Metrics{MetricA: v.MetricA, MetricB: v.MetricB}, true
		}
	}
	return models.Metrics{}, false
}

// ComputeDomains derives the category order and the value range at year.
// Nil readings and records without the year do not count toward the max.
func ComputeDomains(records []models.Record, year int) models.ScaleDomains {
	d := models.ScaleDomains{CategoryDomain: make([]string, len(records))}
	var top float64
	for i, r := range records {
		d.CategoryDomain[i] = r.ID
		m, ok := ProjectForYear(r, year)
		if !ok {
			continue
		}
		for _, v := range []*float64{m.MetricA, m.MetricB} {
			if v != nil && *v > top {
				top = *v
			}
		}
	}
	d.ValueDomain = [2]float64{0, top}
	return d
}
