package engine

import (
	"cmp"
	"slices"

	"regionchart/internal/models"
)

// sortKey is the sum of both readings with gaps counted as zero.
func sortKey(r models.Record, year int) float64 {
	m, _ := ProjectForYear(r, year)
	var total float64
	if m.MetricA != nil {
		total += *m.MetricA
	}
	if m.MetricB != nil {
		total += *m.MetricB
	}
	return total
}

// Sort returns a new slice ordered by the yearly total. Equal totals keep
// their current relative order. SortNone copies records as they are.
func Sort(records []models.Record, year int, dir models.Direction) []models.Record {
	out := slices.Clone(records)
	if dir == models.SortNone {
		return out
	}

	keys := make(map[string]float64, len(out))
	for _, r := range out {
		keys[r.ID] = sortKey(r, year)
	}
	slices.SortStableFunc(out, func(a, b models.Record) int {
		if dir == models.SortDesc {
			return cmp.Compare(keys[b.ID], keys[a.ID])
		}
		return cmp.Compare(keys[a.ID], keys[b.ID])
	})
	return out
}
