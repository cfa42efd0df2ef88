package validation

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/blaisecz/caffeine-planner/internal/domain"
	"github.com/blaisecz/caffeine-planner/pkg/problem"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report JSON names so field errors match the request body.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("sex", func(fl validator.FieldLevel) bool {
		switch domain.Sex(fl.Field().String()) {
		case domain.SexMale, domain.SexFemale, domain.SexOther:
			return true
		}
		return false
	})
	validate.RegisterValidation("activity_level", func(fl validator.FieldLevel) bool {
		switch domain.ActivityLevel(fl.Field().String()) {
		case domain.ActivitySedentary, domain.ActivityModerate, domain.ActivityAthletic:
			return true
		}
		return false
	})
	validate.RegisterValidation("sleep_model", func(fl validator.FieldLevel) bool {
		switch domain.SleepModel(fl.Field().String()) {
		case domain.SleepModelExponential, domain.SleepModelLinear:
			return true
		}
		return false
	})
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []problem.FieldError{{Field: "body", Message: err.Error()}}
	}

	var fieldErrors []problem.FieldError
	for _, err := range validationErrors {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   fieldPath(err),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

// fieldPath drops the root struct name from the namespace, e.g. "doses[1].amount_mg".
// Embedded structs have no json name and keep their Go name in the namespace; those
// segments are dropped too, so "ProfileRef.profile.sex" becomes "profile.sex".
func fieldPath(err validator.FieldError) string {
	parts := strings.Split(err.Namespace(), ".")
	if len(parts) < 2 {
		return toSnakeCase(err.Field())
	}
	kept := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		if p != "" && unicode.IsUpper(rune(p[0])) {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return toSnakeCase(err.Field())
	}
	return strings.Join(kept, ".")
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	case "gt":
		return "must be greater than " + err.Param()
	case "gte":
		return "must be at least " + err.Param()
	case "lte":
		return "must be at most " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "gtfield":
		return "must be after " + toSnakeCase(err.Param())
	case "sex":
		return "must be one of: male, female, other"
	case "activity_level":
		return "must be one of: sedentary, moderate, athletic"
	case "sleep_model":
		return "must be one of: exponential, linear"
	default:
		return "is invalid"
	}
}

func toSnakeCase(s string) string {
	var result []byte
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				result = append(result, '_')
			}
			result = append(result, byte(c+'a'-'A'))
		} else {
			result = append(result, byte(c))
		}
	}
	return string(result)
}
