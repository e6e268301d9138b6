package repository

import (
	"github.com/jengzang/bcn-heatmap-go/internal/models"
)

// LoadStatus is the outcome of reading a record source
type LoadStatus int

const (
	LoadLoaded LoadStatus = iota // At least one record matched
	LoadEmpty                    // Source readable, nothing matched
	LoadFailed                   // Source missing or unreadable
)

func (s LoadStatus) String() string {
	switch s {
	case LoadLoaded:
		return "loaded"
	case LoadEmpty:
		return "empty"
	default:
		return "failed"
	}
}

// LoadResult carries the records of a load, or the reason it failed.
// Loaders never return errors directly; the caller decides what a
// failed or empty load turns into.
type LoadResult struct {
	Status  LoadStatus
	Records []models.CensusRecord
	Err     error
}

// Loaded wraps matching records; an empty slice becomes Empty
func Loaded(records []models.CensusRecord) LoadResult {
	if len(records) == 0 {
		return Empty()
	}
	return LoadResult{Status: LoadLoaded, Records: records}
}

// Empty reports a readable source with no matching records
func Empty() LoadResult {
	return LoadResult{Status: LoadEmpty}
}

// Failed reports a source that could not be read
func Failed(err error) LoadResult {
	return LoadResult{Status: LoadFailed, Err: err}
}

// RecordSource loads census records matching a filter
type RecordSource interface {
	Load(filter models.PopulationFilter) LoadResult
	Name() string
}
