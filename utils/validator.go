// utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	// One or two amount+unit groups, e.g. "45 minutes" or "2 hours 15 minutes".
	deliveryTimeRegex = regexp.MustCompile(`(?i)^(?:[1-9][0-9]?\s*(?:second|minute|hour)s?\s*){1,2}$`)
	timeOfDayRegex    = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

var weekdayTokens = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

func init() {
	validate = validator.New()
	validate.RegisterValidation("delivery_time", validateDeliveryTime)
	validate.RegisterValidation("time_of_day", validateTimeOfDay)
	validate.RegisterValidation("weekday", validateWeekday)
}

// Validate exposes the shared validator instance with the custom
// validations registered.
func Validate() *validator.Validate {
	return validate
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDeliveryTime(fl validator.FieldLevel) bool {
	return IsDeliveryTime(fl.Field().String())
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	return IsTimeOfDay(fl.Field().String())
}

func validateWeekday(fl validator.FieldLevel) bool {
	return IsWeekday(fl.Field().String())
}

// IsDeliveryTime reports whether s is a valid delivery-time phrase.
func IsDeliveryTime(s string) bool {
	return deliveryTimeRegex.MatchString(strings.TrimSpace(s))
}

// IsTimeOfDay reports whether s is a 24h HH:MM value.
func IsTimeOfDay(s string) bool {
	return timeOfDayRegex.MatchString(strings.TrimSpace(s))
}

// IsWeekday reports whether s is a recognized weekday token.
func IsWeekday(s string) bool {
	return weekdayTokens[strings.ToLower(strings.TrimSpace(s))]
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "delivery_time":
		return "Delivery time must be one or two of seconds, minutes, or hours"
	case "time_of_day":
		return "Time must be in HH:MM format"
	case "weekday":
		return "Day must be a weekday name"
	default:
		return e.Field() + " is invalid"
	}
}
