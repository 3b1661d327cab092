package domain

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultClock is the local time assumed when the birth time is unknown.
	DefaultClock = "12:00"

	// UnknownTimeWarning is attached to responses computed with DefaultClock.
	UnknownTimeWarning = "Часът е неизвестен — използван е 12:00"

	dateLayout = "2006-01-02"

	// isoLayout matches the millisecond-precision UTC form, e.g. 2000-01-01T00:00:00.000Z.
	isoLayout = "2006-01-02T15:04:05.000Z07:00"
)

// clockLayouts maps the accepted clock spellings, keyed by length.
var clockLayouts = map[int]string{
	len("15:04"):    "15:04",
	len("15:04:05"): "15:04:05",
}

// CivilInstant is a local birth time resolved to UTC.
type CivilInstant struct {
	UTC            time.Time
	FractionalHour float64 // hour of the UTC day, h + m/60 + s/3600
}

// ISO returns the UTC instant in ISO-8601 form with millisecond precision.
func (c CivilInstant) ISO() string {
	return c.UTC.Format(isoLayout)
}

// EffectiveTime returns the clock time used for the computation and whether
// it was assumed rather than supplied.
func EffectiveTime(q BirthQuery) (clock string, assumed bool) {
	if q.UnknownTime || q.Time == "" {
		return DefaultClock, true
	}
	return q.Time, false
}

// NormalizeCivilTime interprets date and clock as local time in loc and
// converts the result to UTC. Inputs that do not name a real calendar date
// and clock time fail with ErrInvalidTime.
func NormalizeCivilTime(date, clock string, loc *time.Location) (CivilInstant, error) {
	if loc == nil {
		return CivilInstant{}, fmt.Errorf("%w: no time zone", ErrInvalidTime)
	}

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return CivilInstant{}, fmt.Errorf("%w: date %q: %v", ErrInvalidTime, date, err)
	}

	tod, err := parseClock(clock)
	if err != nil {
		return CivilInstant{}, fmt.Errorf("%w: time %q: %v", ErrInvalidTime, clock, err)
	}

	local := time.Date(day.Year(), day.Month(), day.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0, loc)
	utc := local.UTC()

	return CivilInstant{
		UTC:            utc,
		FractionalHour: float64(utc.Hour()) + float64(utc.Minute())/60 + float64(utc.Second())/3600,
	}, nil
}

// parseClock accepts only zero-padded HH:MM or HH:MM:SS. time.Parse alone
// would also take "9:00" and fractional seconds.
func parseClock(s string) (time.Time, error) {
	layout, ok := clockLayouts[len(s)]
	if !ok || !clockShape(s) {
		return time.Time{}, errors.New("want HH:MM or HH:MM:SS")
	}
	return time.Parse(layout, s)
}

func clockShape(s string) bool {
	for i := 0; i < len(s); i++ {
		if i%3 == 2 {
			if s[i] != ':' {
				return false
			}
		} else if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
