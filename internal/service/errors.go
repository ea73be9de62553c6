package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("forbidden")

	ErrListingNotFound = fmt.Errorf("listing does not exist: %w", ErrNotFound)
	ErrEmailTaken      = errors.New("email already registered")
	ErrCategoryCycle   = errors.New("category tree contains a cycle")
)

// Сообщения валидации; формулировки совпадают с тем, что видит клиент в 422.
const (
	MsgMissingField   = "Missing data for required field."
	MsgInvalidUUID    = "Not a valid UUID."
	MsgInvalidString  = "Not a valid string."
	MsgInvalidInteger = "Not a valid integer."
	MsgInvalidDate    = "Not a valid date."
	MsgInvalidList    = "Not a valid list."
	MsgInvalidInput   = "Invalid input type."
)

// SchemaField is the pseudo-field used for errors about the payload as a whole.
const SchemaField = "_schema"

// ValidationError collects reasons per field. It is reported to clients as a whole,
// never one field at a time.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, message)
	return v
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Merge adds all reasons of other. Fields present in other replace the ones in e.
func (e *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	for f, msgs := range other.Fields {
		if e.Fields == nil {
			e.Fields = make(map[string][]string)
		}
		e.Fields[f] = append([]string(nil), msgs...)
	}
}

// Empty reports whether no reasons were collected.
func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

// OrNil returns nil for an empty ValidationError so it can be returned as error.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e.Fields[f], " "))
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
