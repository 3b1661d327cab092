// Package tz resolves IANA time zone names from coordinates using the
// latlong shapefile tables compiled into the binary.
package tz

import (
	"fmt"
	"math"
	"time"

	"github.com/bradfitz/latlong"
)

// notGenerated is what latlong returns when its tables are missing.
const notGenerated = "tables not generated yet"

// Resolver implements domain.ZoneResolver.
type Resolver struct{}

// NewResolver returns a coordinate-to-zone resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Zone returns the IANA zone containing lat/lon. Points outside every land
// zone (open sea) get the nautical Etc/GMT zone for their longitude.
func (r *Resolver) Zone(lat, lon float64) (string, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return "", fmt.Errorf("coordinates out of range: %.6f,%.6f", lat, lon)
	}

	name := latlong.LookupZoneName(lat, lon)
	switch name {
	case notGenerated:
		return "", fmt.Errorf("zone lookup: %s", name)
	case "":
		name = nauticalZone(lon)
	}

	if _, err := time.LoadLocation(name); err != nil {
		return "", fmt.Errorf("load zone %q: %w", name, err)
	}
	return name, nil
}

// nauticalZone maps a longitude to its 15° nautical zone. POSIX-style Etc
// names invert the sign: 30°E is UTC+2, named Etc/GMT-2.
func nauticalZone(lon float64) string {
	offset := int(math.Round(lon / 15))
	switch {
	case offset == 0:
		return "Etc/GMT"
	case offset > 0:
		return fmt.Sprintf("Etc/GMT-%d", offset)
	default:
		return fmt.Sprintf("Etc/GMT+%d", -offset)
	}
}
