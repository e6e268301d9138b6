package repository

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/tidwall/gjson"

	"github.com/jengzang/bcn-heatmap-go/internal/models"
)

var (
	// ErrInvalidJSON is returned when the population file is not valid JSON
	ErrInvalidJSON = errors.New("population file is not valid JSON")
	// ErrNotArray is returned when the top-level JSON value is not an array
	ErrNotArray = errors.New("population file is not a JSON array")
)

// JSONRecordSource reads census records from a local JSON array.
// The file is read on every call.
type JSONRecordSource struct {
	path string
}

// NewJSONRecordSource creates a new JSON record source
func NewJSONRecordSource(path string) *JSONRecordSource {
	return &JSONRecordSource{path: path}
}

// Name implements RecordSource
func (s *JSONRecordSource) Name() string {
	return "json:" + s.path
}

// Load implements RecordSource
func (s *JSONRecordSource) Load(filter models.PopulationFilter) LoadResult {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Failed(fmt.Errorf("failed to read population file: %w", err))
	}

	records, err := ParseRecords(data)
	if err != nil {
		return Failed(fmt.Errorf("failed to parse %s: %w", s.path, err))
	}

	var matched []models.CensusRecord
	for _, r := range records {
		if filter.Matches(r) {
			matched = append(matched, r)
		}
	}

	return Loaded(matched)
}

// ParseRecords decodes a JSON array of census records.
// Elements that are not objects are skipped with a warning.
func ParseRecords(data []byte) ([]models.CensusRecord, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, ErrNotArray
	}

	var records []models.CensusRecord
	index := 0
	root.ForEach(func(_, value gjson.Result) bool {
		if !value.IsObject() {
			log.Printf("[WARN] Skipping population entry %d: not an object", index)
		} else {
			records = append(records, recordFromJSON(value))
		}
		index++
		return true
	})

	return records, nil
}

func recordFromJSON(obj gjson.Result) models.CensusRecord {
	return models.CensusRecord{
		ReferenceDate:    scalar(obj, models.KeyReferenceDate),
		DistrictCode:     scalar(obj, models.KeyDistrictCode),
		DistrictName:     scalar(obj, models.KeyDistrictName),
		NeighborhoodCode: scalar(obj, models.KeyNeighborhoodCode),
		NeighborhoodName: scalar(obj, models.KeyNeighborhoodName),
		SectionCode:      scalar(obj, models.KeySectionCode),
		RawValue:         scalar(obj, models.KeyValue),
	}
}

// scalar returns a field as text: strings unquoted, other values as their raw JSON
func scalar(obj gjson.Result, key string) string {
	v := obj.Get(key)
	switch v.Type {
	case gjson.Null:
		return ""
	case gjson.String:
		return v.Str
	default:
		return v.Raw
	}
}
