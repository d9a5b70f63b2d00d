package service

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// Institution field formats, e.g. reg no 24BCE10001, course code CSE0001,
// employee id EMP001.
var (
	regNoPattern      = regexp.MustCompile(`^\d{2}[A-Z]{3}\d{5}$`)
	courseCodePattern = regexp.MustCompile(`^[A-Z]{3}\d{4}$`)
	employeeIDPattern = regexp.MustCompile(`^[A-Z]{3}\d{3}$`)
)

// NewValidator returns a validator with the institution's custom field
// rules registered. Services fall back to this when given a nil validator.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("regno", func(fl validator.FieldLevel) bool {
		return regNoPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("coursecode", func(fl validator.FieldLevel) bool {
		return courseCodePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("empid", func(fl validator.FieldLevel) bool {
		return employeeIDPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		date, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		return !date.After(time.Now())
	})
	return v
}
