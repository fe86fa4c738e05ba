package api

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopfront/catalog-api/internal/apperrors"
	"github.com/shopspring/decimal"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their wire names so messages match what clients sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "query", "form"} {
			name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
		d, ok := v.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		// Out of range values are rejected while decoding; NaN fails any
		// numeric tag should one slip through.
		if priceRangeError(d) != "" {
			return math.NaN()
		}
		f, _ := d.Float64()
		return f
	}, decimal.Decimal{})

	validate.RegisterStructValidation(validateSearchParams, SearchParams{})
}

// ValidateStruct runs the validate tags of s and returns a
// *apperrors.ValidationError listing every failed field.
func ValidateStruct(s any) error {
	return validationError(validate.Struct(s), nil)
}

// validationError merges validator failures with fields that already failed
// to parse.
func validationError(err error, parsed []apperrors.FieldError) error {
	fields := append([]apperrors.FieldError(nil), parsed...)

	if err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		for _, fieldError := range validationErrors {
			fields = append(fields, apperrors.FieldError{
				Field:   fieldError.Field(),
				Message: formatValidationError(fieldError),
			})
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return apperrors.NewFieldValidationError("validation failed", fields)
}

func formatValidationError(err validator.FieldError) string {
	field := err.Field()

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min", "gte":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, err.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, err.Param())
	case "max", "lte":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, err.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, err.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(err.Param(), " ", ", "))
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "atleastone":
		return "at least one search parameter is required (q, id, category, minPrice, or maxPrice)"
	case "ltefield":
		return fmt.Sprintf("%s cannot be greater than %s", field, err.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
