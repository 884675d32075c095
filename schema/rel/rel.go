package rel

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNilDefault is reported for a relation declared NotNull without a
// usable default.
var ErrNilDefault = errors.New("default value cannot be nil when null values are disallowed")

// Kind is the cardinality of a relation field.
type Kind int

// Relation cardinalities.
const (
	KindOneToOne Kind = iota
	KindOneToMany
	KindManyToOne
	KindManyToMany
)

var kindNames = [...]string{
	KindOneToOne:   "one_to_one",
	KindOneToMany:  "one_to_many",
	KindManyToOne:  "many_to_one",
	KindManyToMany: "many_to_many",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("invalid(%d)", k)
	}
	return kindNames[k]
}

// Many reports whether the relation holds a collection of references on
// the declaring side.
func (k Kind) Many() bool {
	return k == KindOneToMany || k == KindManyToMany
}

// Descriptor holds the declared metadata of a relation field. Builders
// produce descriptors; declaration problems are carried in Err and surface
// when the declaring entity type is resolved.
type Descriptor struct {
	Name      string // field name
	Kind      Kind   // relation cardinality
	Target    string // target entity type name
	Default   any    // default reference or collection of references, nil if absent
	AllowNull bool   // nil references allowed, true unless NotNull is set
	Unique    bool   // always true for relation fields
	Comment   string // optional comment
	Err       error  // declaration error, if any
}

// Builder is the fluent builder for relation field descriptors.
type Builder struct {
	desc *Descriptor
}

// OneToOne returns a new one-to-one relation with the given name,
// referencing the target entity type:
//
//	rel.OneToOne("profile", Profile.Type)
func OneToOne(name string, target any) *Builder {
	return newBuilder(name, KindOneToOne, target)
}

// OneToMany returns a new one-to-many relation with the given name,
// referencing the target entity type.
func OneToMany(name string, target any) *Builder {
	return newBuilder(name, KindOneToMany, target)
}

// ManyToOne returns a new many-to-one relation with the given name,
// referencing the target entity type.
func ManyToOne(name string, target any) *Builder {
	return newBuilder(name, KindManyToOne, target)
}

// ManyToMany returns a new many-to-many relation with the given name,
// referencing the target entity type.
func ManyToMany(name string, target any) *Builder {
	return newBuilder(name, KindManyToMany, target)
}

func newBuilder(name string, k Kind, target any) *Builder {
	d := &Descriptor{Name: name, Kind: k, AllowNull: true, Unique: true}
	d.Target, d.Err = targetName(target)
	return &Builder{desc: d}
}

// Default sets the default reference (or collection of references) of the
// relation.
func (b *Builder) Default(v any) *Builder {
	b.desc.Default = v
	return b
}

// NotNull disallows nil references for the relation. A relation declared
// NotNull must also carry a default.
func (b *Builder) NotNull() *Builder {
	b.desc.AllowNull = false
	return b
}

// Comment sets an optional comment on the relation.
func (b *Builder) Comment(c string) *Builder {
	b.desc.Comment = c
	return b
}

// Descriptor finalizes the builder and returns the relation descriptor.
func (b *Builder) Descriptor() *Descriptor {
	d := b.desc
	if d.Err == nil && !d.AllowNull && d.Default == nil {
		d.Err = ErrNilDefault
	}
	return d
}

// targetName extracts the entity type name from the Type marker method
// expression (e.g. User.Type has type func(User)).
func targetName(target any) (string, error) {
	t := reflect.TypeOf(target)
	if t == nil || t.Kind() != reflect.Func || t.NumIn() == 0 {
		return "", fmt.Errorf("invalid relation target %T: expected a schema type method expression (e.g. User.Type)", target)
	}
	in := t.In(0)
	for in.Kind() == reflect.Pointer {
		in = in.Elem()
	}
	if in.Name() == "" {
		return "", fmt.Errorf("invalid relation target %s: entity declarations must be named types", t.In(0))
	}
	return in.Name(), nil
}
