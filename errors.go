package strata

import (
	"errors"
	"fmt"
)

// ConstraintDefinitionError reports an invalid field or relation
// declaration. It is detected when the declaring entity type is resolved,
// before any instance of that type can exist.
type ConstraintDefinitionError struct {
	Type  string // entity type name
	Field string // offending field name
	Err   error  // underlying declaration error
}

// Error returns the error string.
func (e *ConstraintDefinitionError) Error() string {
	return fmt.Sprintf("strata: %s: invalid declaration of field %q: %v", e.Type, e.Field, e.Err)
}

// Unwrap returns the underlying declaration error.
func (e *ConstraintDefinitionError) Unwrap() error {
	return e.Err
}

// NewConstraintDefinitionError returns a new ConstraintDefinitionError for
// the given entity type and field.
func NewConstraintDefinitionError(typ, field string, err error) *ConstraintDefinitionError {
	return &ConstraintDefinitionError{Type: typ, Field: field, Err: err}
}

// IsConstraintDefinition returns true if the error is a ConstraintDefinitionError.
func IsConstraintDefinition(err error) bool {
	if err == nil {
		return false
	}
	var e *ConstraintDefinitionError
	return errors.As(err, &e)
}

// NullConstraintError reports a nil field value on an entity whose field
// descriptor disallows null values. It is detected during instance
// construction, once per field.
type NullConstraintError struct {
	Type  string // entity type name
	Field string // offending field name
}

// Error returns the error string.
func (e *NullConstraintError) Error() string {
	return fmt.Sprintf("strata: %s: field %q cannot hold a nil value when null values are disallowed", e.Type, e.Field)
}

// NewNullConstraintError returns a new NullConstraintError for the given
// entity type and field.
func NewNullConstraintError(typ, field string) *NullConstraintError {
	return &NullConstraintError{Type: typ, Field: field}
}

// IsNullConstraint returns true if the error is a NullConstraintError.
func IsNullConstraint(err error) bool {
	if err == nil {
		return false
	}
	var e *NullConstraintError
	return errors.As(err, &e)
}

// UnexpectedArgumentError reports a positional (unnamed) construction
// argument. Instances are constructed from named arguments only.
type UnexpectedArgumentError struct {
	Type  string // entity type name
	Value any    // the offending argument
}

// Error returns the error string.
func (e *UnexpectedArgumentError) Error() string {
	return fmt.Sprintf("strata: %s: unexpected positional argument %v (arguments must be named with strata.Set)", e.Type, e.Value)
}

// NewUnexpectedArgumentError returns a new UnexpectedArgumentError for the
// given entity type.
func NewUnexpectedArgumentError(typ string, value any) *UnexpectedArgumentError {
	return &UnexpectedArgumentError{Type: typ, Value: value}
}

// IsUnexpectedArgument returns true if the error is an UnexpectedArgumentError.
func IsUnexpectedArgument(err error) bool {
	if err == nil {
		return false
	}
	var e *UnexpectedArgumentError
	return errors.As(err, &e)
}

// UnknownFieldError reports a name that does not correspond to any field in
// the resolved field set of an entity type.
type UnknownFieldError struct {
	Type string // entity type name
	Name string // the unknown field name
}

// Error returns the error string.
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("strata: %s has no field %q", e.Type, e.Name)
}

// NewUnknownFieldError returns a new UnknownFieldError for the given entity
// type and name.
func NewUnknownFieldError(typ, name string) *UnknownFieldError {
	return &UnknownFieldError{Type: typ, Name: name}
}

// IsUnknownField returns true if the error is an UnknownFieldError.
func IsUnknownField(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownFieldError
	return errors.As(err, &e)
}
