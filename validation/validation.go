// Package validation wraps go-playground/validator behind helpers that
// turn tag failures into the per-field issue list carried by error
// envelopes.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their json names so issues match the wire payload.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// FieldIssue is one field-level validation failure.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks a payload struct against its validate tags and returns
// the issues, or nil when the payload is valid.
func Validate(payload interface{}) []FieldIssue {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldIssue{{Field: "", Message: err.Error()}}
	}

	issues := make([]FieldIssue, 0, len(errs))
	for _, fe := range errs {
		issues = append(issues, FieldIssue{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return issues
}

// IDIssue validates a path-parameter document id, returning issues in the
// same shape as payload validation.
func IDIssue(resource, id string) []FieldIssue {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return []FieldIssue{{Field: "id", Message: fmt.Sprintf("Invalid %s ID", resource)}}
	}
	return nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
