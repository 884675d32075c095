package rel_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/strata"
	"github.com/syssam/strata/schema/rel"
)

// Test schema types for relation declarations.
type (
	User    struct{ strata.Schema }
	Group   struct{ strata.Schema }
	Profile struct{ strata.Schema }
)

func TestBuilders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func() *rel.Descriptor
		kind  rel.Kind
	}{
		{
			name:  "one_to_one",
			build: func() *rel.Descriptor { return rel.OneToOne("profile", Profile.Type).Descriptor() },
			kind:  rel.KindOneToOne,
		},
		{
			name:  "one_to_many",
			build: func() *rel.Descriptor { return rel.OneToMany("profile", Profile.Type).Descriptor() },
			kind:  rel.KindOneToMany,
		},
		{
			name:  "many_to_one",
			build: func() *rel.Descriptor { return rel.ManyToOne("profile", Profile.Type).Descriptor() },
			kind:  rel.KindManyToOne,
		},
		{
			name:  "many_to_many",
			build: func() *rel.Descriptor { return rel.ManyToMany("profile", Profile.Type).Descriptor() },
			kind:  rel.KindManyToMany,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := tt.build()
			require.NoError(t, d.Err)
			assert.Equal(t, "profile", d.Name)
			assert.Equal(t, tt.kind, d.Kind)
			assert.Equal(t, "Profile", d.Target)
			assert.True(t, d.Unique, "relation fields are always unique")
			assert.True(t, d.AllowNull)
			assert.Nil(t, d.Default)
		})
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	def := &User{}
	d := rel.ManyToOne("owner", User.Type).
		NotNull().
		Default(def).
		Comment("record owner").
		Descriptor()
	require.NoError(t, d.Err)
	assert.False(t, d.AllowNull)
	assert.Equal(t, def, d.Default)
	assert.Equal(t, "record owner", d.Comment)
}

// All four relation kinds require a default when declared NotNull; the
// violation is carried in Err and surfaces before any instance exists.
func TestNotNullRequiresDefault(t *testing.T) {
	t.Parallel()

	builders := map[string]*rel.Builder{
		"one_to_one":   rel.OneToOne("owner", User.Type).NotNull(),
		"one_to_many":  rel.OneToMany("members", User.Type).NotNull(),
		"many_to_one":  rel.ManyToOne("group", Group.Type).NotNull(),
		"many_to_many": rel.ManyToMany("groups", Group.Type).NotNull(),
	}
	for name, b := range builders {
		b := b
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			d := b.Descriptor()
			require.Error(t, d.Err)
			assert.ErrorIs(t, d.Err, rel.ErrNilDefault)
		})
	}
}

func TestNotNullWithDefault(t *testing.T) {
	t.Parallel()

	d := rel.OneToOne("owner", User.Type).NotNull().Default(&User{}).Descriptor()
	assert.NoError(t, d.Err)
}

func TestSelfReferential(t *testing.T) {
	t.Parallel()

	d := rel.OneToMany("friends", User.Type).Descriptor()
	require.NoError(t, d.Err)
	assert.Equal(t, "User", d.Target)
}

func TestInvalidTarget(t *testing.T) {
	t.Parallel()

	d := rel.OneToOne("owner", 42).Descriptor()
	require.Error(t, d.Err)

	d = rel.OneToOne("owner", nil).Descriptor()
	require.Error(t, d.Err)

	// An invalid target is reported even when the null/default check would
	// also fire.
	d = rel.OneToOne("owner", "User").NotNull().Descriptor()
	require.Error(t, d.Err)
	assert.False(t, errors.Is(d.Err, rel.ErrNilDefault))
}

func TestKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "one_to_one", rel.KindOneToOne.String())
	assert.Equal(t, "one_to_many", rel.KindOneToMany.String())
	assert.Equal(t, "many_to_one", rel.KindManyToOne.String())
	assert.Equal(t, "many_to_many", rel.KindManyToMany.String())

	assert.False(t, rel.KindOneToOne.Many())
	assert.True(t, rel.KindOneToMany.Many())
	assert.False(t, rel.KindManyToOne.Many())
	assert.True(t, rel.KindManyToMany.Many())
}
