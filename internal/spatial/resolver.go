package spatial

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jengzang/bcn-heatmap-go/internal/models"
)

// Offset strategy names accepted by ParseOffsetStrategy
const (
	OffsetNone  = "none"
	OffsetCodes = "codes"
)

// OffsetStrategy spreads records that resolve to the same lookup entry
type OffsetStrategy interface {
	Offset(r models.CensusRecord) (dLat, dLon float64)
}

// NoOffset leaves every record on its lookup coordinate
type NoOffset struct{}

// Offset implements OffsetStrategy
func (NoOffset) Offset(models.CensusRecord) (float64, float64) { return 0, 0 }

// CodeOffset derives a deterministic shift from the district, barri and
// census-section codes. Codes that are not integers contribute nothing.
type CodeOffset struct {
	SectionStep float64 // Degrees per section digit
	CodeStep    float64 // Degrees per district/barri code bucket
}

// DefaultCodeOffset keeps every shift within roughly 250m of the lookup entry
var DefaultCodeOffset = CodeOffset{SectionStep: 0.0004, CodeStep: 0.0002}

// Offset implements OffsetStrategy
func (o CodeOffset) Offset(r models.CensusRecord) (float64, float64) {
	district := codeValue(r.DistrictCode)
	barri := codeValue(r.NeighborhoodCode)
	section := codeValue(r.SectionCode)

	dLat := float64(section%10-5)*o.SectionStep + float64(barri%3-1)*o.CodeStep
	dLon := float64((section/10)%10-5)*o.SectionStep + float64(district%3-1)*o.CodeStep
	return dLat, dLon
}

func codeValue(code string) int {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseOffsetStrategy maps a configuration name to a strategy
func ParseOffsetStrategy(name string) (OffsetStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case OffsetNone, "off", "":
		return NoOffset{}, nil
	case OffsetCodes:
		return DefaultCodeOffset, nil
	default:
		return nil, fmt.Errorf("unknown offset strategy %q", name)
	}
}

// Resolution says which lookup produced a coordinate
type Resolution int

const (
	ResolvedNeighborhood Resolution = iota
	ResolvedDistrict
	ResolvedCityCenter
)

func (r Resolution) String() string {
	switch r {
	case ResolvedNeighborhood:
		return "neighborhood"
	case ResolvedDistrict:
		return "district"
	default:
		return "city_center"
	}
}

// Resolver approximates a record's position from its barri or district name.
// It is not a geocoder: records sharing a lookup entry share a coordinate
// up to the configured offset.
type Resolver struct {
	offsets OffsetStrategy
}

// NewResolver creates a resolver; a nil strategy disables offsets
func NewResolver(offsets OffsetStrategy) *Resolver {
	if offsets == nil {
		offsets = NoOffset{}
	}
	return &Resolver{offsets: offsets}
}

// Resolve returns the approximate coordinate of a record
func (r *Resolver) Resolve(rec models.CensusRecord) (Point, Resolution) {
	base, how := lookup(rec)
	dLat, dLon := r.offsets.Offset(rec)
	return base.Add(dLat, dLon), how
}

func lookup(rec models.CensusRecord) (Point, Resolution) {
	if p, ok := NeighborhoodCoordinate(rec.NeighborhoodName); ok {
		return p, ResolvedNeighborhood
	}
	if p, ok := DistrictCoordinate(rec.DistrictName); ok {
		return p, ResolvedDistrict
	}
	return CityCenter, ResolvedCityCenter
}
