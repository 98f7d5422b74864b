package engine

import (
	"time"

	"github.com/google/uuid"

	"regionchart/internal/models"
)

// Dataset is the parsed export. Records keep file order and are never
// modified after NewDataset.
type Dataset struct {
	ID       uuid.UUID
	Source   string
	LoadedAt time.Time
	BaseYear int

	Records []models.Record

	// Year bounds over all records (MinYear > MaxYear when no record has values)
	MinYear int
	MaxYear int

	index map[string]int // id -> position in Records
}

func NewDataset(src string, baseYear int, records []models.Record) *Dataset {
	ds := &Dataset{
		ID:       uuid.New(),
		Source:   src,
		LoadedAt: time.Now().UTC(),
		BaseYear: baseYear,
		Records:  records,
		MinYear:  baseYear,
		MaxYear:  baseYear - 1,
		index:    make(map[string]int, len(records)),
	}
	for i, r := range records {
		ds.index[r.ID] = i
		if n := len(r.Values); n > 0 && r.Values[n-1].Year > ds.MaxYear {
			ds.MaxYear = r.Values[n-1].Year
		}
	}
	return ds
}

// HasYear reports whether any record can carry a value for year.
func (ds *Dataset) HasYear(year int) bool {
	return year >= ds.MinYear && year <= ds.MaxYear
}

// Lookup returns the record with the given id.
func (ds *Dataset) Lookup(id string) (models.Record, error) {
	i, ok := ds.index[id]
	if !ok {
		return models.Record{}, ErrNotFound
	}
	return ds.Records[i], nil
}
