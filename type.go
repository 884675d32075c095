package strata

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/syssam/strata/schema/field"
	"github.com/syssam/strata/schema/rel"
)

// Kind identifies the kind of a resolved field, scalar or relation.
type Kind int

// Resolved field kinds.
const (
	KindText Kind = iota
	KindInteger
	KindReal
	KindDate
	KindDateTime
	KindOneToOne
	KindOneToMany
	KindManyToOne
	KindManyToMany
)

var kindNames = [...]string{
	KindText:       "text",
	KindInteger:    "integer",
	KindReal:       "real",
	KindDate:       "date",
	KindDateTime:   "datetime",
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

// Relation reports whether the kind is one of the four relation kinds.
func (k Kind) Relation() bool {
	return k >= KindOneToOne
}

// FieldSpec is the resolved descriptor of one field in a resolved entity
// type. Specs are owned exclusively by their Type: resolving a subtype
// clones the specs inherited from its bases, so mutating one resolved set
// never leaks into another.
type FieldSpec struct {
	Name      string // field name, unique within the resolved set
	Kind      Kind   // field kind
	Default   any    // default value, reference, or nullary function; nil if absent
	AllowNull bool   // nil values allowed
	Unique    bool   // unique constraint (always true for relations)
	Target    string // target entity type name, relation kinds only
	Comment   string // optional comment

	source *Type // declaring entity type, bound at resolution; relation kinds only
}

// Relation reports whether the spec describes a relation field.
func (s *FieldSpec) Relation() bool {
	return s.Kind.Relation()
}

// Source returns the entity type the relation field is bound to. For a
// relation inherited from a base type this is the inheriting type, not the
// base that originally declared it. It is nil for scalar fields.
func (s *FieldSpec) Source() *Type {
	return s.source
}

// setSource binds the back-reference of a relation spec. It is called
// exactly once per spec, by the resolver, after the owning Type exists.
func (s *FieldSpec) setSource(t *Type) {
	s.source = t
}

// clone returns a copy of the spec with an unbound source.
func (s *FieldSpec) clone() *FieldSpec {
	c := *s
	c.source = nil
	return &c
}

var scalarKinds = map[field.Type]Kind{
	field.TypeText:     KindText,
	field.TypeInteger:  KindInteger,
	field.TypeReal:     KindReal,
	field.TypeDate:     KindDate,
	field.TypeDateTime: KindDateTime,
}

var relationKinds = map[rel.Kind]Kind{
	rel.KindOneToOne:   KindOneToOne,
	rel.KindOneToMany:  KindOneToMany,
	rel.KindManyToOne:  KindManyToOne,
	rel.KindManyToMany: KindManyToMany,
}

func newScalarSpec(fd *field.Descriptor) *FieldSpec {
	return &FieldSpec{
		Name:      fd.Name,
		Kind:      scalarKinds[fd.Type],
		Default:   fd.Default,
		AllowNull: fd.AllowNull,
		Unique:    fd.Unique,
		Comment:   fd.Comment,
	}
}

func newRelationSpec(rd *rel.Descriptor) *FieldSpec {
	return &FieldSpec{
		Name:      rd.Name,
		Kind:      relationKinds[rd.Kind],
		Default:   rd.Default,
		AllowNull: rd.AllowNull,
		Unique:    rd.Unique,
		Target:    rd.Target,
		Comment:   rd.Comment,
	}
}

// resolveDefault returns the default value of the spec, invoking nullary
// function defaults.
func (s *FieldSpec) resolveDefault() any {
	if s.Default == nil {
		return nil
	}
	v := reflect.ValueOf(s.Default)
	if v.Kind() == reflect.Func && v.Type().NumIn() == 0 && v.Type().NumOut() == 1 {
		return v.Call(nil)[0].Interface()
	}
	return s.Default
}

// Type is a resolved entity type: the merged, immutable field set of a
// declaration and all of its base types, transitively. Types are created
// by [Registry.Resolve] and never mutated afterwards.
type Type struct {
	name  string
	label string
	table string
	decl  Interface

	specs []*FieldSpec // in first-insertion order
	index map[string]*FieldSpec

	count atomic.Int64 // instances constructed, including failed constructions
}

// Name returns the entity type name (the Go type name of the declaration).
func (t *Type) Name() string { return t.name }

// Label returns the snake_case form of the type name.
func (t *Type) Label() string { return t.label }

// Table returns the pluralized label, suitable as a storage table name.
func (t *Type) Table() string { return t.table }

// Decl returns the declaration the type was resolved from. Methods and
// constants defined on the declaring type are reachable through it
// unchanged.
func (t *Type) Decl() Interface { return t.decl }

// Field returns the resolved descriptor of the named field.
func (t *Type) Field(name string) (*FieldSpec, bool) {
	s, ok := t.index[name]
	return s, ok
}

// Fields returns the resolved field set as a name to descriptor mapping.
func (t *Type) Fields() map[string]*FieldSpec {
	m := make(map[string]*FieldSpec, len(t.specs))
	for _, s := range t.specs {
		m[s.Name] = s
	}
	return m
}

// Specs returns the resolved field descriptors in declaration order:
// the implicit identifier first, then base fields left to right, then the
// type's own fields. An overriding field keeps the position of the field
// it overrides.
func (t *Type) Specs() []*FieldSpec {
	out := make([]*FieldSpec, len(t.specs))
	copy(out, t.specs)
	return out
}

// FieldNames returns the field names of the resolved set, in declaration
// order.
func (t *Type) FieldNames() []string {
	names := make([]string, len(t.specs))
	for i, s := range t.specs {
		names[i] = s.Name
	}
	return names
}

// Count returns the number of constructions attempted for the type. The
// counter includes constructions that failed validation; it is never
// rolled back.
func (t *Type) Count() int64 {
	return t.count.Load()
}

// insert adds a spec to the resolved set. A spec with an already present
// name replaces the existing one in place, keeping its position.
func (t *Type) insert(s *FieldSpec) {
	if _, ok := t.index[s.Name]; ok {
		for i, prev := range t.specs {
			if prev.Name == s.Name {
				t.specs[i] = s
				break
			}
		}
	} else {
		t.specs = append(t.specs, s)
	}
	t.index[s.Name] = s
}
