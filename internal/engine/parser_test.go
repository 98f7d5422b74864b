package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"regionchart/internal/models"
)

func TestValidNum(t *testing.T) {
	tests := []struct {
		in   string
		want *float64
	}{
		{"12", num(12)},
		{"", nil},
		{"abc", nil},
		{"-3.5", num(-3.5)},
		{" 7 ", num(7)},
		{"NaN", nil},
		{"Inf", nil},
		{"x", nil},
	}
	for _, tt := range tests {
		got := ValidNum(tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ValidNum(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParseRowExample(t *testing.T) {
	cleaned, err := Clean("A001 Alpha;10;20;30;40\ntotaal", CleanOptions{})
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	got, err := ParseRow(strings.Split(cleaned, ","), 2013)
	if err != nil {
		t.Fatalf("ParseRow: %v", err)
	}
	want := models.Record{
		ID:   "A001",
		Name: "Alpha",
		Values: []models.YearValue{
			{Year: 2013, MetricA: num(10), MetricB: num(20)},
			{Year: 2014, MetricA: num(30), MetricB: num(40)},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseRow mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRowIgnoresUnpairedField(t *testing.T) {
	got, err := ParseRow([]string{"A1", "One", "1", "2", "3"}, 2013)
	if err != nil {
		t.Fatalf("ParseRow: %v", err)
	}
	if len(got.Values) != 1 {
		t.Fatalf("expected 1 value pair, got %d", len(got.Values))
	}
}

func TestParseRowYearsAreContiguous(t *testing.T) {
	for pairs := 0; pairs < 8; pairs++ {
		fields := []string{"A1", "One"}
		for i := 0; i < pairs; i++ {
			fields = append(fields, "1", "")
		}
		rec, err := ParseRow(fields, 2013)
		if err != nil {
			t.Fatalf("ParseRow with %d pairs: %v", pairs, err)
		}
		if len(rec.Values) != pairs {
			t.Fatalf("expected %d values, got %d", pairs, len(rec.Values))
		}
		for k, v := range rec.Values {
			if v.Year != 2013+k {
				t.Errorf("pairs=%d value %d: year %d, want %d", pairs, k, v.Year, 2013+k)
			}
			if v.MetricB != nil {
				t.Errorf("empty cell should be nil, got %v", *v.MetricB)
			}
		}
	}
}

func TestParseRecordsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		cleaned string
		line    int
	}{
		{"single field", "A1,One,1,2\nA2", 1},
		{"empty id", ",One,1,2", 0},
		{"duplicate id", "A1,One\nA2,Two\nA1,Again", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRecords(tt.cleaned, 2013)
			var rowErr *MalformedRowError
			if !errors.As(err, &rowErr) {
				t.Fatalf("expected MalformedRowError, got %v", err)
			}
			if rowErr.Line != tt.line {
				t.Errorf("line = %d, want %d", rowErr.Line, tt.line)
			}
		})
	}
}

func TestParseRecordsKeepsFileOrder(t *testing.T) {
	recs, err := ParseRecords("A9,Nine,1,1\nA1,One,2,2\nA5,Five,3,3", 2013)
	if err != nil {
		t.Fatalf("ParseRecords: %v", err)
	}
	var ids []string
	for _, r := range recs {
		ids = append(ids, r.ID)
	}
	if diff := cmp.Diff([]string{"A9", "A1", "A5"}, ids); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestCleanParseProjectRoundTrip(t *testing.T) {
	cleaned, err := Clean(sampleExport, CleanOptions{})
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	recs, err := ParseRecords(cleaned, 2013)
	if err != nil {
		t.Fatalf("ParseRecords: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}

	m, ok := ProjectForYear(recs[1], 2013)
	if !ok {
		t.Fatal("2013 not found for A002")
	}
	if m.MetricA == nil || *m.MetricA != 1200 {
		t.Errorf("A002 2013 v_wp = %v, want 1200", m.MetricA)
	}
	if m.MetricB == nil || *m.MetricB != 50 {
		t.Errorf("A002 2013 wp = %v, want 50", m.MetricB)
	}

	m, ok = ProjectForYear(recs[1], 2014)
	if !ok {
		t.Fatal("2014 not found for A002")
	}
	if m.MetricA != nil {
		t.Errorf("A002 2014 v_wp should be missing, got %v", *m.MetricA)
	}
	if m.MetricB == nil || *m.MetricB != 60 {
		t.Errorf("A002 2014 wp = %v, want 60", m.MetricB)
	}
}
