package models

import (
	"strings"

	"github.com/pkg/errors"
)

// DecodeError is returned for every payload the model refuses: missing required field,
// unknown enum value or a polymorphic value matching no (or both) shapes.
type DecodeError struct {
	Family string
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("decode")
	if e.Family != "" || e.Field != "" {
		b.WriteByte(' ')
		b.WriteString(e.Family)
		if e.Family != "" && e.Field != "" && e.Field[0] != '[' {
			b.WriteByte('.')
		}
		b.WriteString(e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}

// AsDecodeError converts any decode failure into *DecodeError tagged with family.
// Codec errors that already are *DecodeError keep their field and reason.
func AsDecodeError(family string, err error) *DecodeError {
	if err == nil {
		return nil
	}
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		result := *decodeErr
		if result.Family == "" {
			result.Family = family
		}
		return &result
	}
	return &DecodeError{Family: family, Reason: err.Error()}
}

// under nests e below the member name; list indexes attach without a dot.
func (e *DecodeError) under(name string) *DecodeError {
	switch {
	case e.Field == "":
		e.Field = name
	case strings.HasPrefix(e.Field, "["):
		e.Field = name + e.Field
	default:
		e.Field = name + "." + e.Field
	}
	return e
}

func unsupported(name string, data []byte) *DecodeError {
	return &DecodeError{Reason: "unsupported " + name + ": " + string(data)}
}

func missingField(field string) *DecodeError {
	return &DecodeError{Field: field, Reason: "required field is absent"}
}
