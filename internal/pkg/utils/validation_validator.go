package utils

import (
	"cura-booking-service/internal/pkg/constvars"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate      *validator.Validate
	rePhoneNumber = regexp.MustCompile(constvars.RegexPhoneNumberGeneral)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("visit_date", validateVisitDate)
	validate.RegisterValidation("e164_phone", validatePhoneNumber)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateVar checks a single value against a tag expression such as "visit_date".
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}

func validateVisitDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.VisitDateLayout, fl.Field().String())
	return err == nil
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return rePhoneNumber.MatchString(fl.Field().String())
}
