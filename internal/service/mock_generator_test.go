package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/bcn-heatmap-go/internal/spatial"
)

func TestMockGeneratorStaysInBounds(t *testing.T) {
	g := NewMockGenerator()

	for _, seed := range []int64{0, 1, 2023, -99} {
		points := g.Generate(seed)
		require.Len(t, points, 200)

		for _, p := range points {
			assert.GreaterOrEqual(t, p.Intensity, 100.0)
			assert.LessOrEqual(t, p.Intensity, 2000.0)
			assert.GreaterOrEqual(t, p.Lat, 41.32)
			assert.LessOrEqual(t, p.Lat, 41.45)
			assert.GreaterOrEqual(t, p.Lng, 2.09)
			assert.LessOrEqual(t, p.Lng, 2.18)
		}
	}
}

func TestMockGeneratorIsReproducibleForSeed(t *testing.T) {
	g := NewMockGenerator()
	assert.Equal(t, g.Generate(2023), g.Generate(2023))
	assert.NotEqual(t, g.Generate(2023), g.Generate(2022))
}

func TestMockIntensityFallsOffFromCenter(t *testing.T) {
	g := NewMockGenerator()
	g.MinIntensity = 0
	g.MaxIntensity = 1e6

	var nearSum, farSum float64
	var nearN, farN int
	for _, p := range g.Generate(42) {
		d := spatial.Point{Lat: p.Lat, Lon: p.Lng}.DistanceFrom(spatial.CityCenter)
		switch {
		case d < 2000:
			nearSum += p.Intensity
			nearN++
		case d > 6000:
			farSum += p.Intensity
			farN++
		}
	}

	require.NotZero(t, nearN)
	require.NotZero(t, farN)
	assert.Greater(t, nearSum/float64(nearN), farSum/float64(farN))
}

func TestSeedPolicy(t *testing.T) {
	p, err := ParseSeedPolicy("year")
	require.NoError(t, err)
	assert.Equal(t, int64(2023), p.Seed("2023"))

	p, err = ParseSeedPolicy("1234")
	require.NoError(t, err)
	assert.Equal(t, int64(1234), p.Seed("2023"))

	p, err = ParseSeedPolicy("random")
	require.NoError(t, err)
	assert.Equal(t, SeedRandom, p.Mode)

	_, err = ParseSeedPolicy("sometimes")
	assert.Error(t, err)
}

func TestMockIntensityRegionalBiases(t *testing.T) {
	g := NewMockGenerator()
	g.MinIntensity = 0
	g.MaxIntensity = 1e6

	unbiased := func(p spatial.Point) float64 {
		return g.MaxIntensity * math.Exp(-p.DistanceFrom(g.Center)/g.Falloff)
	}

	cases := []struct {
		name   string
		point  spatial.Point
		factor float64
	}{
		{"eixample", spatial.Point{Lat: 41.395, Lon: 2.155}, 1.4},
		{"old town and seafront", spatial.Point{Lat: 41.375, Lon: 2.19}, 1.25},
		{"both boxes", spatial.Point{Lat: 41.385, Lon: 2.17}, 1.4 * 1.25},
		{"outside", spatial.Point{Lat: 41.43, Lon: 2.12}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := g.intensity(tc.point, 0.5)
			assert.InDelta(t, tc.factor, got/unbiased(tc.point), 1e-9)
		})
	}
}

func TestMockIntensityBiasAgainstEquidistantPoint(t *testing.T) {
	g := NewMockGenerator()
	g.MinIntensity = 0
	g.MaxIntensity = 1e6

	// mirror an Eixample point across the center's parallel: same distance, no bias box
	inside := spatial.Point{Lat: 41.395, Lon: 2.160}
	outside := spatial.Point{Lat: 2*g.Center.Lat - inside.Lat, Lon: inside.Lon}
	require.InDelta(t, inside.DistanceFrom(g.Center), outside.DistanceFrom(g.Center), 1)

	ratio := g.intensity(inside, 0.5) / g.intensity(outside, 0.5)
	assert.InDelta(t, 1.4, ratio, 0.01)
}

func TestMockIntensityJitterAndClamp(t *testing.T) {
	g := NewMockGenerator()

	far := spatial.Point{Lat: 41.45, Lon: 2.09}
	assert.Equal(t, MockMinIntensity, g.intensity(far, 0))

	// the center sits in both bias boxes, so even the lowest jitter saturates
	assert.Equal(t, MockMaxIntensity, g.intensity(g.Center, 0))
	assert.Equal(t, MockMaxIntensity, g.intensity(g.Center, 0.99))
}
