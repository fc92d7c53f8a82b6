package domain

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports fields by their json names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the required fields. "required" means non-empty; a value
// of only whitespace is filled.
func (d EmployeeFormData) Validate() error {
	return validate.Struct(d)
}

// MissingFields returns the json names of the required fields err reports
// as empty, in struct order. It returns nil for any other error.
func MissingFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	var names []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			names = append(names, fe.Field())
		}
	}
	return names
}
