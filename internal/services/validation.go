package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"ensabun/internal/apperr"
)

// newValidator reports field errors under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// toValidationError turns validator output into a single client message.
// Missing required fields are reported with requiredMsg ahead of any other
// rule violation.
func toValidationError(err error, requiredMsg string) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperr.Validation(err.Error())
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return apperr.Validation(requiredMsg)
		}
	}
	return apperr.Validation(ruleMessage(fieldErrs[0].Field(), fieldErrs[0].Tag(), fieldErrs[0].Param()))
}

func ruleMessage(field, tag, param string) string {
	switch tag {
	case "gte":
		return fmt.Sprintf("%s must not be negative", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, param)
	case "required":
		return fmt.Sprintf("%s cannot be empty", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// checkVar validates a single present field of a partial update.
func checkVar(v *validator.Validate, field string, value interface{}, rules string) error {
	if err := v.Var(value, rules); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return apperr.Validation(ruleMessage(field, fieldErrs[0].Tag(), fieldErrs[0].Param()))
		}
		return apperr.Validation(fmt.Sprintf("%s is invalid", field))
	}
	return nil
}
