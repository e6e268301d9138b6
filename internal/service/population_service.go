package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/jengzang/bcn-heatmap-go/internal/models"
	"github.com/jengzang/bcn-heatmap-go/internal/repository"
	"github.com/jengzang/bcn-heatmap-go/internal/spatial"
)

const (
	// MinRealPoints is the point count below which real data is padded
	MinRealPoints = 10
	// PaddedPointTotal is the size padding aims for
	PaddedPointTotal = 100
)

// ErrNoPoints is returned when neither the source nor the mock generator
// produced anything to draw
var ErrNoPoints = errors.New("no heatmap points available")

// PopulationService turns census records into heatmap points
type PopulationService struct {
	source   repository.RecordSource
	resolver *spatial.Resolver
	mock     *MockGenerator
	seeds    SeedPolicy
}

// NewPopulationService creates a new population service
func NewPopulationService(source repository.RecordSource, resolver *spatial.Resolver, mock *MockGenerator, seeds SeedPolicy) *PopulationService {
	return &PopulationService{
		source:   source,
		resolver: resolver,
		mock:     mock,
		seeds:    seeds,
	}
}

// GetHeatmap loads the records matching filter and builds the heatmap.
// A failed load is replaced by mock data; too few points are padded with it.
func (s *PopulationService) GetHeatmap(filter models.PopulationFilter) (*models.HeatmapResult, error) {
	res := s.source.Load(filter)

	var result *models.HeatmapResult
	switch res.Status {
	case repository.LoadFailed:
		log.Printf("[WARN] Using mock data, %s unavailable: %v", s.source.Name(), res.Err)
		result = &models.HeatmapResult{
			Points:  s.mock.Generate(s.seeds.Seed(filter.Year)),
			Outcome: models.OutcomeMock,
		}
	default:
		result = s.synthesize(res.Records, filter)
	}

	if len(result.Points) == 0 {
		return nil, fmt.Errorf("year=%q district=%q: %w", filter.Year, filter.District, ErrNoPoints)
	}

	log.Printf("Heatmap year=%q district=%q: %d points (%s, %d records, %d skipped)",
		filter.Year, filter.District, len(result.Points), result.Outcome, result.Records, result.Skipped)

	return result, nil
}

// synthesize builds one point per record and pads sparse results
func (s *PopulationService) synthesize(records []models.CensusRecord, filter models.PopulationFilter) *models.HeatmapResult {
	result := &models.HeatmapResult{
		Points:  make([]models.HeatmapPoint, 0, len(records)),
		Outcome: models.OutcomeReal,
	}

	for i, r := range records {
		value, err := r.Value()
		if err != nil {
			log.Printf("[WARN] Skipping record %d (%s / %s): %v", i, r.DistrictName, r.NeighborhoodName, err)
			result.Skipped++
			continue
		}

		p, _ := s.resolver.Resolve(r)
		if !p.IsValid() {
			log.Printf("[WARN] Skipping record %d (%s / %s): unusable coordinate %v", i, r.DistrictName, r.NeighborhoodName, p)
			result.Skipped++
			continue
		}
		result.Points = append(result.Points, models.HeatmapPoint{
			Lat:       p.Lat,
			Lng:       p.Lon,
			Intensity: value,
		})
		result.Records++
	}

	if len(result.Points) < MinRealPoints {
		mock := s.mock.Generate(s.seeds.Seed(filter.Year))
		need := PaddedPointTotal - len(result.Points)
		if need > len(mock) {
			need = len(mock)
		}
		result.Points = append(result.Points, mock[:need]...)
		result.Outcome = models.OutcomePadded
	}

	return result
}
