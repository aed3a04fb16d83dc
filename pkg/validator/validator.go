package validator

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the struct validator and registers the domain rules
// the request DTOs rely on.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("timeofday", timeOfDay)
	return &CustomValidator{validator: v}
}

// timeOfDay accepts HH:MM values. Padding is not required here, the
// working-hours layer canonicalizes the value before comparing or storing it.
func timeOfDay(fl validator.FieldLevel) bool {
	_, err := time.Parse("15:04", fl.Field().String())
	return err == nil
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors flattens validation failures into a field-to-message
// map for the error response body.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "timeofday":
				errors[field] = field + " must be a time of day in HH:MM format"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
