// Package schema turns untyped request input into validated domain records.
//
// Records declare their field constraints with validate tags. Records may
// also implement ApplyDefaults to fill defaults before validation, and Check
// for cross-field rules that run once every field is individually valid.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"

	"loantracker/pkg/types"

	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"
)

type defaulter interface {
	ApplyDefaults()
}

type checker interface {
	Check() error
}

var (
	validate    = newValidator()
	formDecoder = form.NewDecoder()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	return v
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// Decode unmarshals a JSON object into dst and validates it. Input problems
// come back as *types.ValidationError; cross-field rules may return their own
// sentinel errors (types.ErrLocationRequired).
func Decode(data []byte, dst any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return types.NewValidationError("body", "must be a JSON object")
	}

	if err := json.Unmarshal(trimmed, dst); err != nil {
		return decodeError(err)
	}

	if field, ok := nulField(reflect.ValueOf(dst)); ok {
		return types.NewValidationError(field, "must not contain NUL characters")
	}

	return Validate(dst)
}

// Validate applies defaults, field constraints and cross-field rules to an
// already typed record.
func Validate(v any) error {
	if d, ok := v.(defaulter); ok {
		d.ApplyDefaults()
	}

	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fieldErrors(verrs)
		}
		return fmt.Errorf("validate %T: %w", v, err)
	}

	if c, ok := v.(checker); ok {
		return c.Check()
	}

	return nil
}

// DecodeQuery fills a filter struct from query parameters. Empty parameters
// are treated as not provided.
func DecodeQuery(values url.Values, dst any) error {
	cleaned := make(url.Values, len(values))
	for k, vs := range values {
		for _, v := range vs {
			if strings.ContainsRune(v, 0) {
				return types.NewValidationError(k, "must not contain NUL characters")
			}
			if v != "" {
				cleaned.Add(k, v)
			}
		}
	}

	if err := formDecoder.Decode(dst, cleaned); err != nil {
		return types.NewValidationError("query", err.Error())
	}
	return nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		if typeErr.Type == reflect.TypeOf(time.Time{}) {
			return types.NewValidationError(field, "invalid timestamp, expected RFC 3339")
		}
		return types.NewValidationError(field, fmt.Sprintf("invalid type, expected %s", typeErr.Type))
	}

	return types.NewValidationError("body", "malformed JSON")
}

// nulField reports the first string field holding a NUL character, which
// jsonb cannot store.
func nulField(v reflect.Value) (string, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		return "", strings.ContainsRune(v.String(), 0)
	case reflect.Struct:
		t := v.Type()
		for i := range t.NumField() {
			fld := t.Field(i)
			if !fld.IsExported() {
				continue
			}
			if rest, ok := nulField(v.Field(i)); ok {
				name := jsonName(fld)
				if rest != "" {
					name += "." + rest
				}
				return name, true
			}
		}
	}

	return "", false
}

func fieldErrors(verrs validator.ValidationErrors) *types.ValidationError {
	out := &types.ValidationError{Fields: make([]types.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, types.FieldError{
			Field:   fieldPath(fe),
			Problem: problem(fe),
		})
	}
	return out
}

// fieldPath drops the leading struct name from the namespace, so nested
// fields read "items[0].file_name" rather than "SyncPayload.items[0].file_name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func problem(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
