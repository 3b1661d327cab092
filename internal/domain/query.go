package domain

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// BirthQuery is the raw input for an ascendant computation.
type BirthQuery struct {
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time"`
	PlaceText   string `json:"placeText" validate:"required"`
	UnknownTime bool   `json:"unknownTime"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func queryValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their JSON names.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		validate = v
	})
	return validate
}

// Validate checks that the required fields are present. The date is
// checked before the place.
func (q BirthQuery) Validate() error {
	err := queryValidator().Struct(q)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	switch verrs[0].Field() {
	case "date":
		return ErrMissingDate
	case "placeText":
		return ErrMissingPlace
	default:
		return ErrValidation
	}
}
