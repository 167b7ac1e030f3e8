package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one entry of a validation failure body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// maxBodyBytes caps request bodies read by decodeBody.
const maxBodyBytes = 1 << 20

// decodeBody reads exactly one JSON object from r into dst and validates it.
// extra runs after struct validation and may add more field errors.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, extra func() []FieldError) []FieldError {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return []FieldError{decodeError(err)}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return []FieldError{decodeError(err)}
		}
		return []FieldError{{Message: "request body must contain a single JSON object"}}
	}

	var details []FieldError
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return []FieldError{{Message: err.Error()}}
		}
		for _, fe := range verrs {
			details = append(details, FieldError{Field: fieldPath(fe), Message: fieldMessage(fe)})
		}
	}
	if extra != nil {
		details = append(details, extra()...)
	}
	return details
}

func decodeError(err error) FieldError {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return FieldError{Message: fmt.Sprintf("request body must not exceed %d bytes", maxErr.Limit)}
	case errors.As(err, &typeErr):
		return FieldError{Field: typeErr.Field, Message: fmt.Sprintf("expected %s, received %s", jsonTypeName(typeErr.Type), typeErr.Value)}
	case errors.As(err, &syntaxErr):
		return FieldError{Message: fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset)}
	case errors.Is(err, io.EOF):
		return FieldError{Message: "request body must be a JSON object"}
	default:
		return FieldError{Message: err.Error()}
	}
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

// fieldPath drops the top-level struct name from the namespace, leaving the
// JSON path, e.g. "profileJson.education[0]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must contain at least %s character(s)", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must contain at most %s character(s)", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

// requireField reports a missing required field.
func requireField(name string, v any) []FieldError {
	if err := validate.Var(v, "required"); err != nil {
		return []FieldError{{Field: name, Message: "Required"}}
	}
	return nil
}

func (s *Server) writeValidationError(w http.ResponseWriter, r *http.Request, details []FieldError) {
	s.logger.Warn(r.Context(), "validation failed", "details", details)
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation failed", Details: details})
}
