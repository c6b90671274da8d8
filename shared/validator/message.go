package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":    "{field} is required",
		"gte":         "{field} must be greater than or equal to {param}",
		"lte":         "{field} must be less than or equal to {param}",
		"oneof":       "{field} must be one of {param}",
		"max":         "{field} must be less than or equal to {param}",
		"min":         "{field} must be greater than or equal to {param}",
		"email":       "{field} must be a valid email address",
		"eq":          "{field} must equal {param}",
		"mimetypes":   "{field} must be one of the allowed file types: {param}",
		"maxfilesize": "{field} must not exceed {param} MB",
	}
)

func render(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
	errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

	return errStr
}

// FieldMessages collects one message per failing field, keyed by the struct
// field name, so callers can surface all of them simultaneously.
func FieldMessages(err error) map[string]string {
	fields := map[string]string{}

	var valErrors val.ValidationErrors
	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			fields[valErr.Field()] = render(valErr)
		}

		return fields
	}

	fields["_"] = err.Error()

	return fields
}

func singleMessage(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			return render(valErr)
		}
	}

	return err.Error()
}
