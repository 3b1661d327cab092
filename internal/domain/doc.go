// Package domain models the natal-chart ascendant computation.
//
// # Input
//
// A birth query carries a calendar date ("YYYY-MM-DD"), an optional local
// clock time ("HH:MM" or "HH:MM:SS"), a free-text place name and a flag
// marking the time as unknown. When the time is unknown or missing, noon
// local time is assumed and the response carries a warning.
//
// # Time Normalization
//
// The local civil time is interpreted in the IANA zone resolved from the
// place's coordinates, converted to UTC, and expressed both as an ISO-8601
// instant with millisecond precision ("2000-01-01T00:00:00.000Z") and as a
// fractional hour of the UTC day (h + m/60 + s/3600). The fractional hour
// feeds the Julian-day computation on the Gregorian calendar.
//
// # Sign Mapping
//
// The ascendant's ecliptic longitude is reduced to [0, 360) with a true
// modulo and split into twelve 30° segments:
//
//	  0° Овен (Aries)        180° Везни (Libra)
//	 30° Телец (Taurus)      210° Скорпион (Scorpio)
//	 60° Близнаци (Gemini)   240° Стрелец (Sagittarius)
//	 90° Рак (Cancer)        270° Козирог (Capricorn)
//	120° Лъв (Leo)           300° Водолей (Aquarius)
//	150° Дева (Virgo)        330° Риби (Pisces)
//
// The residual degree inside the sign is always in [0, 30).
//
// # Collaborators
//
// Geocoding, zone lookup and the ephemeris are injected through
// [PlaceResolver], [ZoneResolver] and [Ephemeris]. The house system passed
// to the ephemeris is always [Placidus].
package domain
