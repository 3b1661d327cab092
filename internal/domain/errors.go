package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a query that is missing required input.
	ErrValidation = errors.New("invalid birth query")

	// ErrMissingDate is returned when the query has no birth date.
	ErrMissingDate = fmt.Errorf("%w: date is required", ErrValidation)

	// ErrMissingPlace is returned when the query has no place text.
	ErrMissingPlace = fmt.Errorf("%w: placeText is required", ErrValidation)

	// ErrPlaceNotFound is returned when geocoding produced no match.
	ErrPlaceNotFound = errors.New("place not found")

	// ErrGeocodingUnavailable is returned when the geocoding service failed or
	// could not be reached.
	ErrGeocodingUnavailable = errors.New("geocoding failed")

	// ErrInvalidTime is returned when date and time do not form a real civil
	// instant in the resolved zone.
	ErrInvalidTime = errors.New("invalid date/time")
)

// User-facing messages, returned verbatim in the "error" field of API responses.
const (
	msgMissingDate   = "Missing date"
	msgMissingPlace  = "Missing place"
	msgPlaceNotFound = "Place not found"
	msgGeocoding     = "Geocoding failed"
	msgInvalidTime   = "Invalid date/time"
)

// PublicMessage returns the message shown to API clients for err.
// Unrecognized errors fall through to err.Error().
func PublicMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingDate):
		return msgMissingDate
	case errors.Is(err, ErrMissingPlace):
		return msgMissingPlace
	case errors.Is(err, ErrPlaceNotFound):
		return msgPlaceNotFound
	case errors.Is(err, ErrGeocodingUnavailable):
		return msgGeocoding
	case errors.Is(err, ErrInvalidTime):
		return msgInvalidTime
	default:
		return err.Error()
	}
}

// ErrorKind classifies err for metrics labels.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrPlaceNotFound):
		return "place_not_found"
	case errors.Is(err, ErrGeocodingUnavailable):
		return "geocoding_unavailable"
	case errors.Is(err, ErrInvalidTime):
		return "invalid_time"
	default:
		return "internal"
	}
}
