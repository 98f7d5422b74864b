package engine

import (
	"math"
	"strconv"
	"strings"

	"regionchart/internal/models"
)

// DefaultBaseYear is the year of the first value pair in a row.
const DefaultBaseYear = 2013

// ValidNum parses s as a number. Empty and non-numeric cells are nil.
func ValidNum(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// ParseRow turns the fields of one cleaned line into a Record. Value pairs
// start at index 2; a trailing unpaired field is ignored.
func ParseRow(fields []string, baseYear int) (models.Record, error) {
	if len(fields) < 2 {
		return models.Record{}, &MalformedRowError{Reason: "expected id and name"}
	}
	id := strings.TrimSpace(fields[0])
	if id == "" {
		return models.Record{}, &MalformedRowError{Reason: "empty id"}
	}

	rec := models.Record{
		ID:     id,
		Name:   strings.TrimSpace(fields[1]),
		Values: make([]models.YearValue, 0, (len(fields)-2)/2),
	}
	for i, k := 2, 0; i+1 < len(fields); i, k = i+2, k+1 {
		rec.Values = append(rec.Values, models.YearValue{
			Year:    baseYear + k,
			MetricA: ValidNum(fields[i]),
			MetricB: ValidNum(fields[i+1]),
		})
	}
	return rec, nil
}

// ParseRecords parses cleaned text in file order and stops at the first bad
// line.
func ParseRecords(cleaned string, baseYear int) ([]models.Record, error) {
	if strings.TrimSpace(cleaned) == "" {
		return nil, nil
	}

	lines := strings.Split(cleaned, "\n")
	records := make([]models.Record, 0, len(lines))
	seen := make(map[string]int, len(lines))

	for idx, line := range lines {
		rec, err := ParseRow(strings.Split(line, ","), baseYear)
		if err != nil {
			if rowErr, ok := err.(*MalformedRowError); ok {
				rowErr.Line = idx
			}
			return nil, err
		}
		if prev, dup := seen[rec.ID]; dup {
			return nil, &MalformedRowError{Line: idx, Reason: "duplicate id " + rec.ID + " (first on row " + strconv.Itoa(prev) + ")"}
		}
		seen[rec.ID] = idx
		records = append(records, rec)
	}
	return records, nil
}
