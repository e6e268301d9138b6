package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Source keys used by the Barcelona Open Data population-by-section dataset
const (
	KeyReferenceDate    = "Data_Referencia"
	KeyDistrictCode     = "Codi_Districte"
	KeyDistrictName     = "Nom_Districte"
	KeyNeighborhoodCode = "Codi_Barri"
	KeyNeighborhoodName = "Nom_Barri"
	KeySectionCode      = "Seccio_Censal"
	KeyValue            = "Valor"
)

// CensusRecord is one row of the population dataset.
// All fields are kept as the raw text found in the source; numeric
// conversion happens where the value is consumed.
type CensusRecord struct {
	ReferenceDate    string `json:"Data_Referencia"`
	DistrictCode     string `json:"Codi_Districte"`
	DistrictName     string `json:"Nom_Districte"`
	NeighborhoodCode string `json:"Codi_Barri"`
	NeighborhoodName string `json:"Nom_Barri"`
	SectionCode      string `json:"Seccio_Censal"`
	RawValue         string `json:"Valor"`
}

// Value parses the population count; NaN and infinities are rejected
func (r CensusRecord) Value() (float64, error) {
	s := strings.TrimSpace(r.RawValue)
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", r.RawValue, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", r.RawValue)
	}
	return v, nil
}

// Year returns the year component of the reference date ("2023-01-01" -> "2023")
func (r CensusRecord) Year() string {
	d := strings.TrimSpace(r.ReferenceDate)
	if i := strings.IndexAny(d, "-/"); i > 0 {
		return d[:i]
	}
	return d
}
