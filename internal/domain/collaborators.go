package domain

import (
	"context"
	"time"
)

// Coordinates is a WGS-84 latitude/longitude pair in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// PlaceResolver converts free-text place names to coordinates.
type PlaceResolver interface {
	// Resolve returns the best match for placeText. Errors wrap
	// ErrPlaceNotFound or ErrGeocodingUnavailable.
	Resolve(ctx context.Context, placeText string) (Coordinates, error)
}

// ZoneResolver maps coordinates to an IANA time zone name.
type ZoneResolver interface {
	Zone(lat, lon float64) (string, error)
}

// HouseSystem selects the house division used by the ephemeris.
type HouseSystem byte

// Placidus is the only house system the service requests.
const Placidus HouseSystem = 'P'

func (h HouseSystem) String() string { return string(rune(h)) }

// HouseAngles holds the chart angles returned by the ephemeris, in degrees.
type HouseAngles struct {
	Ascendant float64
	MC        float64
}

// Ephemeris computes Julian days and house angles.
type Ephemeris interface {
	// JulianDay returns the Julian day (UT) for a Gregorian calendar date and
	// fractional hour.
	JulianDay(year int, month time.Month, day int, hour float64) float64

	// Houses returns the chart angles for a Julian day (UT) and an observer
	// at lat/lon, east longitude positive.
	Houses(jd, lat, lon float64, system HouseSystem) (HouseAngles, error)
}
