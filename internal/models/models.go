package models

import (
	"fmt"
	"strings"
)

// Metric keys as they appear in the source export.
const (
	KeyEstablishments = "v_wp"
	KeyWorkingPersons = "wp"
)

// Keys is the fixed bar order within a group.
var Keys = []string{KeyEstablishments, KeyWorkingPersons}

// KeyLabel returns the legend label for a metric key.
func KeyLabel(key string) string {
	switch key {
	case KeyWorkingPersons:
		return "werkzame pers."
	case KeyEstablishments:
		return "vestigingen met wp"
	}
	return key
}

// AxisLabel is the caption of the value axis.
const AxisLabel = "Werkzame personen"

// Record is one region with all of its yearly readings.
type Record struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Values []YearValue `json:"values"`
}

// YearValue holds the two readings for a single year. Nil means no data.
type YearValue struct {
	Year    int      `json:"year"`
	MetricA *float64 `json:"v_wp"`
	MetricB *float64 `json:"wp"`
}

// Metrics is the projection of a record onto one year.
type Metrics struct {
	MetricA *float64 `json:"v_wp"`
	MetricB *float64 `json:"wp"`
}

// Value returns the metric stored under key.
func (m Metrics) Value(key string) *float64 {
	switch key {
	case KeyEstablishments:
		return m.MetricA
	case KeyWorkingPersons:
		return m.MetricB
	}
	return nil
}

type Direction string

const (
	SortNone Direction = ""
	SortAsc  Direction = "ASC"
	SortDesc Direction = "DESC"
)

// ParseDirection accepts asc/desc in any case; "" and "none" mean file order.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "NONE":
		return SortNone, nil
	case "ASC":
		return SortAsc, nil
	case "DESC":
		return SortDesc, nil
	}
	return SortNone, fmt.Errorf("unknown sort direction %q", s)
}

type ScaleDomains struct {
	CategoryDomain []string   `json:"category_domain"`
	ValueDomain    [2]float64 `json:"value_domain"`
}

type LegendEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Bar is a single metric within a group. Missing is set when the record has
// no entry for the selected year; a nil Value with Missing false is a gap
// in the source data.
type Bar struct {
	Key     string   `json:"key"`
	Value   *float64 `json:"value"`
	Missing bool     `json:"missing,omitempty"`
}

type BarGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Bars []Bar  `json:"bars"`
}

// ChartView is everything a renderer needs to paint the current selection.
type ChartView struct {
	DatasetID     string        `json:"dataset_id"`
	SelectedYear  int           `json:"selected_year"`
	SortDirection Direction     `json:"sort_direction"`
	MinYear       int           `json:"min_year"`
	MaxYear       int           `json:"max_year"`
	Keys          []string      `json:"keys"`
	Legend        []LegendEntry `json:"legend"`
	AxisLabel     string        `json:"axis_label"`
	Domains       ScaleDomains  `json:"domains"`
	Groups        []BarGroup    `json:"groups"`
}

// YearSummary aggregates every record for one year.
type YearSummary struct {
	Year      int     `json:"year"`
	TotalA    float64 `json:"total_v_wp"`
	TotalB    float64 `json:"total_wp"`
	Reporting int     `json:"reporting"`
	TopID     string  `json:"top_id,omitempty"`
	TopTotal  float64 `json:"top_total"`
}
