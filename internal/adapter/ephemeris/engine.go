// Package ephemeris computes Julian days and chart angles from apparent
// sidereal time and the true obliquity of the ecliptic.
package ephemeris

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/sidereal"

	"github.com/couchcryptid/ascendant-service/internal/domain"
)

const (
	secondsPerDay = 86400.0
	deg           = math.Pi / 180
)

// Engine implements domain.Ephemeris.
type Engine struct{}

// NewEngine returns an ephemeris engine.
func NewEngine() *Engine {
	return &Engine{}
}

// JulianDay converts a Gregorian calendar date and fractional UT hour to a
// Julian day.
func (e *Engine) JulianDay(year int, month time.Month, day int, hour float64) float64 {
	return julian.CalendarGregorianToJD(year, int(month), float64(day)+hour/24)
}

// Houses returns the ascendant and midheaven for an observer at lat/lon
// (degrees, east longitude positive) at Julian day jd (UT).
//
// The ascendant and MC are the same in every quadrant house system, so
// Placidus needs no cusp interpolation here. Other systems are rejected.
func (e *Engine) Houses(jd, lat, lon float64, system domain.HouseSystem) (domain.HouseAngles, error) {
	if system != domain.Placidus {
		return domain.HouseAngles{}, fmt.Errorf("unsupported house system %q", system.String())
	}
	if math.Abs(lat) >= 90 {
		return domain.HouseAngles{}, fmt.Errorf("ascendant undefined at latitude %.6f", lat)
	}

	ramc := localSiderealAngle(jd, lon)
	eps := trueObliquity(jd)
	phi := lat * deg

	asc := math.Atan2(math.Cos(ramc), -(math.Sin(ramc)*math.Cos(eps) + math.Tan(phi)*math.Sin(eps)))
	mc := math.Atan2(math.Sin(ramc), math.Cos(ramc)*math.Cos(eps))

	return domain.HouseAngles{
		Ascendant: domain.NormalizeDegrees(asc / deg),
		MC:        domain.NormalizeDegrees(mc / deg),
	}, nil
}

// localSiderealAngle returns the right ascension of the meridian in radians.
func localSiderealAngle(jd, lon float64) float64 {
	// sidereal.Apparent yields seconds of sidereal time at Greenwich.
	gast := float64(sidereal.Apparent(jd)) / secondsPerDay * 2 * math.Pi
	return math.Mod(gast+lon*deg, 2*math.Pi)
}

// trueObliquity returns the obliquity of the ecliptic including nutation, in radians.
func trueObliquity(jd float64) float64 {
	_, deltaEps := nutation.Nutation(jd)
	return float64(nutation.MeanObliquity(jd)) + float64(deltaEps)
}
