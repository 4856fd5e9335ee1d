// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/dev-connector/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator checks request bodies against their `validate` struct
// tags. Field names in the result are the JSON names.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: v}
}

// Validate checks obj, a struct or a pointer to one. When fields are given
// only those struct fields (Go names) are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	val := reflect.ValueOf(obj)
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return ErrUnsupportedType
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating %T: %w", obj, err)
	}

	result := &ValidationError{Fields: make([]models.FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		result.Fields = append(result.Fields, models.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return result
}

func message(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "please include a valid email"
	case "min":
		if fe.Field() == "password" {
			return "please enter a password with " + fe.Param() + " or more characters"
		}
		return field + " must be at least " + fe.Param() + " characters"
	case "datetime":
		return field + " must be a date in YYYY-MM-DD format"
	default:
		return field + " is invalid"
	}
}
