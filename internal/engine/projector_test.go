package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"regionchart/internal/models"
)

func TestProjectForYear(t *testing.T) {
	r := record("A1", pair(num(1), num(2)), pair(nil, num(4)))

	m, ok := ProjectForYear(r, 2014)
	if !ok {
		t.Fatal("expected 2014 to be found")
	}
	if m.MetricA != nil || m.MetricB == nil || *m.MetricB != 4 {
		t.Errorf("unexpected projection %+v", m)
	}

	for _, year := range []int{2012, 2015, 0} {
		if _, ok := ProjectForYear(r, year); ok {
			t.Errorf("year %d should not be found", year)
		}
	}
}

func TestComputeDomains(t *testing.T) {
	records := []models.Record{
		record("A1", pair(num(10), num(20))),
		record("A2", pair(num(5), num(50))),
	}
	got := ComputeDomains(records, 2013)
	want := models.ScaleDomains{
		CategoryDomain: []string{"A1", "A2"},
		ValueDomain:    [2]float64{0, 50},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ComputeDomains mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeDomainsSkipsGaps(t *testing.T) {
	records := []models.Record{
		record("A1", pair(nil, nil)),
		record("A2", pair(nil, num(3))),
		record("A3"),
	}
	if got := ComputeDomains(records, 2013).ValueDomain; got != [2]float64{0, 3} {
		t.Errorf("ValueDomain = %v, want [0 3]", got)
	}
	if got := ComputeDomains(records[:1], 2013).ValueDomain; got != [2]float64{0, 0} {
		t.Errorf("all-nil ValueDomain = %v, want [0 0]", got)
	}
	if got := ComputeDomains(records, 2030).ValueDomain; got != [2]float64{0, 0} {
		t.Errorf("out of range ValueDomain = %v, want [0 0]", got)
	}
}

func TestComputeDomainsIdempotent(t *testing.T) {
	records := []models.Record{
		record("A2", pair(num(5), num(50))),
		record("A1", pair(num(10), num(20))),
	}
	first := ComputeDomains(records, 2013)
	second := ComputeDomains(records, 2013)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second call differs (-first +second):\n%s", diff)
	}
	if records[0].ID != "A2" {
		t.Error("ComputeDomains reordered its input")
	}
}
