package models

import "encoding/json"

// HeatmapPoint represents a single point in the heatmap
type HeatmapPoint struct {
	Lat       float64
	Lng       float64
	Intensity float64 // Population count, or synthetic density for mock points
}

// MarshalJSON encodes the point as [lat, lng, intensity], the shape the
// Leaflet heat layer consumes.
func (p HeatmapPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{p.Lat, p.Lng, p.Intensity})
}

// UnmarshalJSON decodes a [lat, lng, intensity] triple
func (p *HeatmapPoint) UnmarshalJSON(data []byte) error {
	var triple [3]float64
	if err := json.Unmarshal(data, &triple); err != nil {
		return err
	}
	p.Lat, p.Lng, p.Intensity = triple[0], triple[1], triple[2]
	return nil
}

// Outcome describes where the points of a heatmap came from
type Outcome string

const (
	OutcomeReal   Outcome = "real"   // Only records from the source
	OutcomePadded Outcome = "padded" // Records topped up with mock points
	OutcomeMock   Outcome = "mock"   // Source unavailable, mock points only
)

// HeatmapResult is the service-level result of a population query
type HeatmapResult struct {
	Points  []HeatmapPoint
	Outcome Outcome
	Records int // Records that produced a point
	Skipped int // Records dropped for a non-numeric value
}
