package domain

// Response is the payload returned for a successful computation.
type Response struct {
	AscSignBg          string  `json:"ascSignBg"`
	AscDegreeFormatted string  `json:"ascDegreeFormatted"`
	UTCISO             string  `json:"utcIso"`
	TZName             string  `json:"tzName"`
	Lat                float64 `json:"lat"`
	Lon                float64 `json:"lon"`
	Warning            *string `json:"warning"`
}

// NewResponse assembles the payload. The warning is set only when the birth
// time was assumed.
func NewResponse(asc Ascendant, instant CivilInstant, tzName string, coords Coordinates, timeAssumed bool) Response {
	resp := Response{
		AscSignBg:          asc.Sign,
		AscDegreeFormatted: asc.Formatted(),
		UTCISO:             instant.ISO(),
		TZName:             tzName,
		Lat:                coords.Lat,
		Lon:                coords.Lon,
	}
	if timeAssumed {
		w := UnknownTimeWarning
		resp.Warning = &w
	}
	return resp
}
