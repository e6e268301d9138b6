package service

import (
	"errors"
	"fmt"
	"log"
	"os"

	geojson "github.com/paulmach/go.geojson"
)

// ErrBoundariesNotFound is returned when the boundaries file is absent
var ErrBoundariesNotFound = errors.New("boundaries doesn't exist")

// BoundaryService serves the district boundaries GeoJSON file
type BoundaryService struct {
	path string
}

// NewBoundaryService creates a new boundary service
func NewBoundaryService(path string) *BoundaryService {
	return &BoundaryService{path: path}
}

// GetBoundaries returns the raw boundaries document.
// Only one file exists; district does not select among files and is
// only used for logging.
func (s *BoundaryService) GetBoundaries(district string) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrBoundariesNotFound
		}
		return nil, fmt.Errorf("failed to read boundaries: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("invalid boundaries GeoJSON: %w", err)
	}

	log.Printf("Serving boundaries for %q: %d features", district, len(fc.Features))
	return data, nil
}
