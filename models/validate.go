package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"ImageInsight/utils"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report wire names (json/form tags), not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// checkStruct runs tag validation and converts every violation into a
// FieldError so the caller can surface them all at once.
func checkStruct(s interface{}) []utils.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return []utils.FieldError{{Field: "body", Reason: err.Error()}}
	}

	fieldErrs := make([]utils.FieldError, 0, len(violations))
	for _, violation := range violations {
		fieldErrs = append(fieldErrs, utils.FieldError{
			Field:  fieldPath(violation),
			Reason: reasonFor(violation),
		})
	}
	return fieldErrs
}

// fieldPath strips the root struct name from the validator namespace, turning
// "AnalyzeBatchRequest.items[0].prompt" into "items[0].prompt".
func fieldPath(violation validator.FieldError) string {
	namespace := violation.Namespace()
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func fieldAt(list string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", list, index, field)
}

func reasonFor(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", violation.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", violation.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", violation.Param())
	case "min":
		return fmt.Sprintf("must contain at least %s items", violation.Param())
	case "max":
		return fmt.Sprintf("must contain at most %s items", violation.Param())
	default:
		return fmt.Sprintf("failed %q validation", violation.Tag())
	}
}
