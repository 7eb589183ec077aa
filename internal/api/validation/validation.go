// Package validation is the gate between untrusted request bodies and the
// typed payloads handlers work with. A handler decodes through DecodeBody
// before touching storage; a non-nil issue list means the request must be
// rejected with 400 and the handler body must not run.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/plant-tracker/server/internal/api/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report issues under the wire names, not the Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeBody decodes the request body into dst (a pointer to a payload
// struct) and validates it. The returned issues are nil exactly when dst is
// fully populated and valid.
func DecodeBody(r *http.Request, dst any) []types.ValidationIssue {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return decodeIssues(err)
	}
	return Struct(dst)
}

// Struct validates an already-decoded payload.
func Struct(v any) []types.ValidationIssue {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []types.ValidationIssue{{Path: "", Message: err.Error()}}
	}
	issues := make([]types.ValidationIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, types.ValidationIssue{
			Path:    fe.Field(),
			Message: constraintMessage(fe),
			Rule:    fe.Tag(),
		})
	}
	return issues
}

func decodeIssues(err error) []types.ValidationIssue {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		return []types.ValidationIssue{{
			Path:    typeErr.Field,
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			Rule:    "type",
		}}
	case errors.Is(err, io.EOF):
		return []types.ValidationIssue{{Path: "", Message: "request body is empty", Rule: "json"}}
	default:
		return []types.ValidationIssue{{Path: "", Message: "request body is not valid JSON", Rule: "json"}}
	}
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
