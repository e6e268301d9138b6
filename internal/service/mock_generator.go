package service

import (
	"math"
	"math/rand"

	"github.com/jengzang/bcn-heatmap-go/internal/models"
	"github.com/jengzang/bcn-heatmap-go/internal/spatial"
)

const (
	MockPointCount   = 200
	MockMinIntensity = 100.0
	MockMaxIntensity = 2000.0
)

// region is a box whose mock density is scaled by factor
type region struct {
	bounds spatial.Bounds
	factor float64
}

// densityBiases are the hand-tuned hot spots of the synthetic map:
// the Eixample grid and the old town down to the seafront
var densityBiases = []region{
	{bounds: spatial.Bounds{MinLat: 41.380, MaxLat: 41.400, MinLon: 2.150, MaxLon: 2.180}, factor: 1.4},
	{bounds: spatial.Bounds{MinLat: 41.370, MaxLat: 41.390, MinLon: 2.165, MaxLon: 2.200}, factor: 1.25},
}

// MockGenerator produces synthetic heatmap points inside the city bounds.
// Intensity falls off with distance from the center and is clamped to
// [MinIntensity, MaxIntensity].
type MockGenerator struct {
	Count        int
	Bounds       spatial.Bounds
	Center       spatial.Point
	Falloff      float64 // Meters for intensity to drop by a factor of e
	MinIntensity float64
	MaxIntensity float64
}

// NewMockGenerator creates a generator with the Barcelona defaults
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{
		Count:        MockPointCount,
		Bounds:       spatial.CityBounds,
		Center:       spatial.CityCenter,
		Falloff:      3000,
		MinIntensity: MockMinIntensity,
		MaxIntensity: MockMaxIntensity,
	}
}

// Generate returns Count points drawn from a source seeded with seed
func (g *MockGenerator) Generate(seed int64) []models.HeatmapPoint {
	rng := rand.New(rand.NewSource(seed))

	points := make([]models.HeatmapPoint, 0, g.Count)
	for i := 0; i < g.Count; i++ {
		p := g.Bounds.Lerp(rng.Float64(), rng.Float64())
		points = append(points, models.HeatmapPoint{
			Lat:       p.Lat,
			Lng:       p.Lon,
			Intensity: g.intensity(p, rng.Float64()),
		})
	}
	return points
}

// intensity scores p; jitter is a uniform draw in [0, 1), 0.5 meaning none
func (g *MockGenerator) intensity(p spatial.Point, jitter float64) float64 {
	dist := p.DistanceFrom(g.Center)
	v := g.MaxIntensity * math.Exp(-dist/g.Falloff)

	for _, r := range densityBiases {
		if r.bounds.Contains(p) {
			v *= r.factor
		}
	}

	// ±15% jitter so neighbouring points do not look stamped
	v *= 0.85 + 0.3*jitter

	return clamp(v, g.MinIntensity, g.MaxIntensity)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
