package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SeedMode selects how mock data is seeded
type SeedMode int

const (
	SeedFromYear SeedMode = iota // Same year, same mock map
	SeedRandom                   // Fresh map on every request
	SeedFixed                    // One configured seed for every request
)

// SeedPolicy decides the seed of each mock generation
type SeedPolicy struct {
	Mode  SeedMode
	Fixed int64
}

// ParseSeedPolicy accepts "year", "random" or an integer seed
func ParseSeedPolicy(s string) (SeedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "year", "":
		return SeedPolicy{Mode: SeedFromYear}, nil
	case "random", "none":
		return SeedPolicy{Mode: SeedRandom}, nil
	}

	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return SeedPolicy{}, fmt.Errorf("invalid mock seed %q: want year, random or an integer", s)
	}
	return SeedPolicy{Mode: SeedFixed, Fixed: n}, nil
}

// Seed returns the seed for a request for the given year.
// A year that is not an integer falls back to a time-based seed.
func (p SeedPolicy) Seed(year string) int64 {
	switch p.Mode {
	case SeedFixed:
		return p.Fixed
	case SeedFromYear:
		if n, err := strconv.ParseInt(strings.TrimSpace(year), 10, 64); err == nil {
			return n
		}
	}
	return time.Now().UnixNano()
}
