package field

import (
	"fmt"
	"reflect"
	"time"
)

// Type is the kind of a scalar field.
type Type int

// Scalar field kinds.
const (
	TypeText Type = iota
	TypeInteger
	TypeReal
	TypeDate
	TypeDateTime
)

var typeNames = [...]string{
	TypeText:     "text",
	TypeInteger:  "integer",
	TypeReal:     "real",
	TypeDate:     "date",
	TypeDateTime: "datetime",
}

// String returns the kind name.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("invalid(%d)", t)
	}
	return typeNames[t]
}

// Descriptor holds the declared metadata of a scalar field. Builders
// produce descriptors; declaration problems are carried in Err and surface
// when the declaring entity type is resolved.
type Descriptor struct {
	Name      string // field name
	Type      Type   // scalar kind
	Default   any    // default value or nullary default function, nil if absent
	AllowNull bool   // nil values allowed, true unless NotNull is set
	Unique    bool   // unique constraint
	Comment   string // optional comment
	Err       error  // declaration error, if any
}

// Builder is the fluent builder for scalar field descriptors.
type Builder struct {
	desc *Descriptor
}

// Text returns a new text field with the given name.
func Text(name string) *Builder {
	return newBuilder(name, TypeText)
}

// Integer returns a new integer field with the given name.
func Integer(name string) *Builder {
	return newBuilder(name, TypeInteger)
}

// Real returns a new floating point field with the given name.
func Real(name string) *Builder {
	return newBuilder(name, TypeReal)
}

// Date returns a new date field with the given name.
func Date(name string) *Builder {
	return newBuilder(name, TypeDate)
}

// DateTime returns a new timestamp field with the given name.
func DateTime(name string) *Builder {
	return newBuilder(name, TypeDateTime)
}

func newBuilder(name string, t Type) *Builder {
	return &Builder{desc: &Descriptor{Name: name, Type: t, AllowNull: true}}
}

// Default sets the default value of the field. The value may be a literal
// of the field kind or a nullary function returning one, invoked at
// instance construction time.
func (b *Builder) Default(v any) *Builder {
	b.desc.Default = v
	return b
}

// NotNull disallows nil values for the field.
func (b *Builder) NotNull() *Builder {
	b.desc.AllowNull = false
	return b
}

// Unique marks the field values as unique within its entity type.
func (b *Builder) Unique() *Builder {
	b.desc.Unique = true
	return b
}

// Comment sets an optional comment on the field.
func (b *Builder) Comment(c string) *Builder {
	b.desc.Comment = c
	return b
}

// Descriptor finalizes the builder and returns the field descriptor.
func (b *Builder) Descriptor() *Descriptor {
	d := b.desc
	if d.Err == nil && d.Default != nil {
		d.Err = checkDefault(d.Type, d.Default)
	}
	return d
}

var timeType = reflect.TypeOf(time.Time{})

// checkDefault validates that a declared default matches the field kind.
func checkDefault(t Type, v any) error {
	rt := reflect.TypeOf(v)
	if rt.Kind() == reflect.Func {
		if rt.NumIn() != 0 || rt.NumOut() != 1 {
			return fmt.Errorf("default function for %s field must take no arguments and return a single value, got %s", t, rt)
		}
		rt = rt.Out(0)
	}
	if !t.accepts(rt) {
		return fmt.Errorf("default value of type %s does not match %s field", rt, t)
	}
	return nil
}

func (t Type) accepts(rt reflect.Type) bool {
	switch t {
	case TypeText:
		return rt.Kind() == reflect.String
	case TypeInteger:
		return rt.Kind() >= reflect.Int && rt.Kind() <= reflect.Uint64
	case TypeReal:
		return rt.Kind() == reflect.Float32 || rt.Kind() == reflect.Float64
	case TypeDate, TypeDateTime:
		return rt == timeType || rt.ConvertibleTo(timeType)
	}
	return false
}
