package strata_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/strata"
)

func TestConstraintDefinitionError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := strata.NewConstraintDefinitionError("Profile", "owner", cause)
	assert.Equal(t, `strata: Profile: invalid declaration of field "owner": boom`, err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, strata.IsConstraintDefinition(err))
	assert.False(t, strata.IsConstraintDefinition(cause))
	assert.False(t, strata.IsConstraintDefinition(nil))
}

func TestNullConstraintError(t *testing.T) {
	t.Parallel()

	err := strata.NewNullConstraintError("Person", "name")
	assert.Equal(t, `strata: Person: field "name" cannot hold a nil value when null values are disallowed`, err.Error())
	assert.True(t, strata.IsNullConstraint(err))
	assert.False(t, strata.IsNullConstraint(errors.New("other")))
	assert.False(t, strata.IsNullConstraint(nil))
}

func TestUnexpectedArgumentError(t *testing.T) {
	t.Parallel()

	err := strata.NewUnexpectedArgumentError("Person", "Ann")
	assert.Contains(t, err.Error(), "unexpected positional argument")
	assert.Contains(t, err.Error(), "Ann")
	assert.True(t, strata.IsUnexpectedArgument(err))
	assert.False(t, strata.IsUnexpectedArgument(nil))
}

func TestUnknownFieldError(t *testing.T) {
	t.Parallel()

	err := strata.NewUnknownFieldError("Person", "nickname")
	assert.Equal(t, `strata: Person has no field "nickname"`, err.Error())
	assert.True(t, strata.IsUnknownField(err))
	assert.False(t, strata.IsUnknownField(nil))
}

// Wrapped errors remain detectable through the helper pairs.
func TestWrapping(t *testing.T) {
	t.Parallel()

	err := strata.NewUnknownFieldError("Person", "nickname")
	wrapped := errors.Join(errors.New("constructing sample data"), err)
	assert.True(t, strata.IsUnknownField(wrapped))
}
