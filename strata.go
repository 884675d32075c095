// Package strata provides a declarative, in-memory schema-definition and
// validation kernel for record-like entities.
//
// An entity type is declared as a struct embedding [Schema], optionally
// overriding the Fields, Relations and Bases methods:
//
//	type Person struct{ strata.Schema }
//
//	func (Person) Fields() []strata.Field {
//	    return []strata.Field{
//	        field.Text("name").NotNull().Default("anon"),
//	        field.Integer("age").Default(0),
//	    }
//	}
//
// A [Registry] resolves declarations into immutable [Type] values, merging
// the field sets of all base types, and constructs validated instances:
//
//	reg := strata.NewRegistry()
//	person := reg.MustResolve(Person{})
//	p, err := person.New(strata.Set("name", "Ann"), strata.Set("age", 30))
package strata

import (
	"github.com/syssam/strata/schema/field"
	"github.com/syssam/strata/schema/rel"
)

// IDField is the name of the implicit identifier field present on every
// resolved entity type.
const IDField = "id"

// Field is the interface implemented by scalar field builders.
// See the schema/field package.
type Field interface {
	Descriptor() *field.Descriptor
}

// Relation is the interface implemented by relation field builders.
// See the schema/rel package.
type Relation interface {
	Descriptor() *rel.Descriptor
}

// Interface is implemented by all entity type declarations.
// Embed [Schema] to get default implementations of all methods.
type Interface interface {
	// Fields returns the scalar fields declared on the entity type.
	Fields() []Field

	// Relations returns the relation fields declared on the entity type.
	Relations() []Relation

	// Bases returns the base entity types, in declaration order. On a
	// field name collision, a later base overrides an earlier one, and
	// the declaring type overrides all bases.
	Bases() []Interface
}

// Schema is the default implementation of [Interface]. It should be
// embedded in all entity type declarations.
type Schema struct{}

// Fields of the entity type. Override to declare scalar fields.
func (Schema) Fields() []Field { return nil }

// Relations of the entity type. Override to declare relation fields.
func (Schema) Relations() []Relation { return nil }

// Bases of the entity type. Override to inherit fields from other
// entity types.
func (Schema) Bases() []Interface { return nil }

// Type is a marker method. Its method expression names the entity type in
// relation declarations:
//
//	rel.OneToOne("owner", Person.Type)
func (Schema) Type() {}

// Values maps field names to raw construction values.
// It is the explicit-map input form of [Type.NewValues].
type Values map[string]any

// Arg is a single named construction argument, created by [Set].
type Arg struct {
	name  string
	value any
}

// Set returns a named construction argument for [Type.New].
func Set(name string, value any) Arg {
	return Arg{name: name, value: value}
}

// Name returns the field name the argument is addressed to.
func (a Arg) Name() string { return a.name }

// Value returns the raw value carried by the argument.
func (a Arg) Value() any { return a.value }

// schema declarations must implement `Interface`.
var _ Interface = (*Schema)(nil)
