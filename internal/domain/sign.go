package domain

import (
	"fmt"
	"math"
)

// SignsBG lists the zodiac signs in ecliptic order, Aries first.
var SignsBG = [12]string{
	"Овен", "Телец", "Близнаци", "Рак", "Лъв", "Дева",
	"Везни", "Скорпион", "Стрелец", "Козирог", "Водолей", "Риби",
}

// signWidth is the span of one zodiac sign in degrees.
const signWidth = 30.0

// Ascendant is the ascendant sign together with its position inside the sign.
type Ascendant struct {
	Sign         string
	SignIndex    int
	DegreeInSign float64 // [0, 30)
}

// Formatted renders the ascendant as "<sign> <deg>°" with two decimals.
func (a Ascendant) Formatted() string {
	return fmt.Sprintf("%s %.2f°", a.Sign, a.DegreeInSign)
}

// MapSign converts an ecliptic longitude in [0, 360) to its zodiac sign.
// Callers pass longitudes through NormalizeDegrees first.
func MapSign(lon float64) Ascendant {
	idx := int(math.Floor(lon / signWidth))
	if idx < 0 {
		idx = 0
	}
	if idx > len(SignsBG)-1 {
		idx = len(SignsBG) - 1
	}
	return Ascendant{
		Sign:         SignsBG[idx],
		SignIndex:    idx,
		DegreeInSign: lon - float64(idx)*signWidth,
	}
}

// AscendantFromLongitude normalizes an arbitrary longitude and maps it to a sign.
func AscendantFromLongitude(lon float64) Ascendant {
	return MapSign(NormalizeDegrees(lon))
}
