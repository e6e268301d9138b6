package models

import "strings"

// DefaultYear is used when the population request carries no year
const DefaultYear = "2023"

// PopulationFilter represents filter parameters for the population heatmap
type PopulationFilter struct {
	Year     string `form:"year"`     // YYYY or full reference date
	District string `form:"district"` // district name or district code
}

// Matches reports whether a record passes the filter.
// Both filters are exact comparisons; an empty filter field matches everything.
func (f PopulationFilter) Matches(r CensusRecord) bool {
	return f.MatchesYear(r) && f.MatchesDistrict(r)
}

// MatchesYear compares a 4-digit year against the record's year component,
// anything longer against the whole reference date.
func (f PopulationFilter) MatchesYear(r CensusRecord) bool {
	year := strings.TrimSpace(f.Year)
	if year == "" {
		return true
	}
	if len(year) == 4 {
		return r.Year() == year
	}
	return r.ReferenceDate == year
}

// MatchesDistrict compares against the district name or the district code
func (f PopulationFilter) MatchesDistrict(r CensusRecord) bool {
	if f.District == "" {
		return true
	}
	return r.DistrictName == f.District || r.DistrictCode == f.District
}
