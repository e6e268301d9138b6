package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/bcn-heatmap-go/internal/models"
	"github.com/jengzang/bcn-heatmap-go/internal/repository"
	"github.com/jengzang/bcn-heatmap-go/internal/spatial"
)

type stubSource struct {
	result repository.LoadResult
	filter models.PopulationFilter
}

func (s *stubSource) Load(filter models.PopulationFilter) repository.LoadResult {
	s.filter = filter
	return s.result
}

func (s *stubSource) Name() string { return "stub" }

func newTestService(res repository.LoadResult) (*PopulationService, *stubSource) {
	src := &stubSource{result: res}
	svc := NewPopulationService(src, spatial.NewResolver(spatial.NoOffset{}), NewMockGenerator(), SeedPolicy{Mode: SeedFixed, Fixed: 7})
	return svc, src
}

func makeRecords(n int) []models.CensusRecord {
	records := make([]models.CensusRecord, n)
	for i := range records {
		records[i] = models.CensusRecord{
			ReferenceDate:    "2023-01-01",
			DistrictName:     "Gràcia",
			NeighborhoodName: "la Vila de Gràcia",
			SectionCode:      fmt.Sprint(i + 1),
			RawValue:         fmt.Sprint(1000 + i),
		}
	}
	return records
}

func TestGetHeatmapUsesRealRecords(t *testing.T) {
	svc, src := newTestService(repository.Loaded(makeRecords(12)))

	filter := models.PopulationFilter{Year: "2023", District: "Gràcia"}
	res, err := svc.GetHeatmap(filter)
	require.NoError(t, err)

	assert.Equal(t, filter, src.filter)
	assert.Equal(t, models.OutcomeReal, res.Outcome)
	require.Len(t, res.Points, 12)
	assert.Equal(t, 12, res.Records)

	want, _ := spatial.NeighborhoodCoordinate("la Vila de Gràcia")
	assert.Equal(t, want.Lat, res.Points[0].Lat)
	assert.Equal(t, want.Lon, res.Points[0].Lng)
	assert.Equal(t, 1000.0, res.Points[0].Intensity)
	assert.Equal(t, 1011.0, res.Points[11].Intensity)
}

func TestGetHeatmapRealIntensityIsNotClamped(t *testing.T) {
	records := makeRecords(10)
	records[0].RawValue = "45000"
	records[1].RawValue = "3"
	svc, _ := newTestService(repository.Loaded(records))

	res, err := svc.GetHeatmap(models.PopulationFilter{})
	require.NoError(t, err)
	assert.Equal(t, 45000.0, res.Points[0].Intensity)
	assert.Equal(t, 3.0, res.Points[1].Intensity)
}

func TestGetHeatmapSkipsNonNumericValues(t *testing.T) {
	records := makeRecords(12)
	records[3].RawValue = "n/a"
	records[5].RawValue = ""
	records[7].RawValue = "NaN"
	records[8].RawValue = "Inf"
	records = append(records, makeRecords(2)...)
	svc, _ := newTestService(repository.Loaded(records))

	res, err := svc.GetHeatmap(models.PopulationFilter{})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeReal, res.Outcome)
	assert.Len(t, res.Points, 10)
	assert.Equal(t, 10, res.Records)
	assert.Equal(t, 4, res.Skipped)

	_, err = json.Marshal(res.Points)
	assert.NoError(t, err)
}

type nanOffset struct{}

func (nanOffset) Offset(models.CensusRecord) (float64, float64) { return math.NaN(), 0 }

func TestGetHeatmapSkipsUnusableCoordinates(t *testing.T) {
	svc, _ := newTestService(repository.Loaded(makeRecords(12)))
	svc.resolver = spatial.NewResolver(nanOffset{})

	res, err := svc.GetHeatmap(models.PopulationFilter{})
	require.NoError(t, err)
	assert.Equal(t, 12, res.Skipped)
	assert.Equal(t, models.OutcomePadded, res.Outcome)
	assert.Len(t, res.Points, PaddedPointTotal)

	_, err = json.Marshal(res.Points)
	assert.NoError(t, err)
}

func TestGetHeatmapPadsSparseResults(t *testing.T) {
	svc, _ := newTestService(repository.Loaded(makeRecords(4)))

	res, err := svc.GetHeatmap(models.PopulationFilter{})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomePadded, res.Outcome)
	require.Len(t, res.Points, PaddedPointTotal)

	// real points first, then mock points from the city box
	assert.Equal(t, 1000.0, res.Points[0].Intensity)
	for _, p := range res.Points[4:] {
		assert.True(t, spatial.CityBounds.Contains(spatial.Point{Lat: p.Lat, Lon: p.Lng}))
		assert.GreaterOrEqual(t, p.Intensity, MockMinIntensity)
		assert.LessOrEqual(t, p.Intensity, MockMaxIntensity)
	}
}

func TestGetHeatmapPadsWhenSkipsLeaveTooFew(t *testing.T) {
	records := makeRecords(10)
	records[0].RawValue = "bad"
	svc, _ := newTestService(repository.Loaded(records))

	res, err := svc.GetHeatmap(models.PopulationFilter{})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomePadded, res.Outcome)
	assert.Len(t, res.Points, PaddedPointTotal)
	assert.Equal(t, 9, res.Records)
}

func TestGetHeatmapPaddingLimitedByAvailableMockPoints(t *testing.T) {
	svc, _ := newTestService(repository.Loaded(makeRecords(3)))
	svc.mock.Count = 20

	res, err := svc.GetHeatmap(models.PopulationFilter{})
	require.NoError(t, err)
	assert.Len(t, res.Points, 3+20)
}

func TestGetHeatmapEmptyLoadIsPadded(t *testing.T) {
	svc, _ := newTestService(repository.Empty())

	res, err := svc.GetHeatmap(models.PopulationFilter{District: "Nowhere"})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomePadded, res.Outcome)
	assert.Len(t, res.Points, PaddedPointTotal)
}

func TestGetHeatmapFailedLoadFallsBackToMock(t *testing.T) {
	svc, _ := newTestService(repository.Failed(errors.New("disk on fire")))

	res, err := svc.GetHeatmap(models.PopulationFilter{Year: "2023"})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeMock, res.Outcome)
	assert.Len(t, res.Points, MockPointCount)
	assert.Equal(t, svc.mock.Generate(7), res.Points)
}

func TestGetHeatmapNoPoints(t *testing.T) {
	svc, _ := newTestService(repository.Failed(errors.New("missing")))
	svc.mock.Count = 0

	_, err := svc.GetHeatmap(models.PopulationFilter{})
	assert.ErrorIs(t, err, ErrNoPoints)
}
