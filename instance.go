package strata

import "sort"

// container is the validated holder of one resolved field value. One
// container exists per field per instance; containers are never shared
// across instances and never mutated after creation.
type container interface {
	value() any
	spec() *FieldSpec
	defaultUsed() bool
}

type scalarValue struct {
	fs   *FieldSpec
	val  any
	used bool // default substituted for an omitted value
}

func (v *scalarValue) value() any        { return v.val }
func (v *scalarValue) spec() *FieldSpec  { return v.fs }
func (v *scalarValue) defaultUsed() bool { return v.used }

type relationValue struct {
	fs   *FieldSpec
	val  any // reference or collection of references, stored as supplied
	used bool
}

func (v *relationValue) value() any        { return v.val }
func (v *relationValue) spec() *FieldSpec  { return v.fs }
func (v *relationValue) defaultUsed() bool { return v.used }

// newContainer validates one resolved field value. When useDefault is set
// the descriptor's default substitutes for the omitted caller value. This
// is the single point where the null constraint is enforced for instance
// data.
func (t *Type) newContainer(s *FieldSpec, raw any, useDefault bool) (container, error) {
	v := raw
	if useDefault {
		v = s.resolveDefault()
	}
	if v == nil && !s.AllowNull {
		return nil, NewNullConstraintError(t.name, s.Name)
	}
	if s.Relation() {
		return &relationValue{fs: s, val: v, used: useDefault}, nil
	}
	return &scalarValue{fs: s, val: v, used: useDefault}, nil
}

// Instance is a constructed, validated record of an entity type. It holds
// exactly one value container per field in the resolved field set of its
// type, no more and no fewer.
type Instance struct {
	typ        *Type
	containers map[string]container
}

// New constructs an instance from named arguments:
//
//	person.New(strata.Set("name", "Ann"), strata.Set("age", 30))
//
// Every argument must be created with [Set]; any other value is rejected
// with an [UnexpectedArgumentError]. A name outside the resolved field set
// fails with an [UnknownFieldError]; an omitted field takes its
// descriptor's default; a nil resolved value on a NotNull field fails with
// a [NullConstraintError]. On failure no instance is returned, but the
// type's construction counter has already been incremented.
func (t *Type) New(args ...any) (*Instance, error) {
	t.count.Add(1)
	vals := make(Values, len(args))
	order := make([]string, 0, len(args))
	for _, a := range args {
		arg, ok := a.(Arg)
		if !ok {
			return nil, NewUnexpectedArgumentError(t.name, a)
		}
		if _, dup := vals[arg.name]; !dup {
			order = append(order, arg.name)
		}
		// Last writer wins on a repeated name.
		vals[arg.name] = arg.value
	}
	return t.construct(vals, order)
}

// NewValues constructs an instance from an explicit name to value mapping.
// It behaves exactly like [Type.New] with one Set argument per entry.
func (t *Type) NewValues(vals Values) (*Instance, error) {
	t.count.Add(1)
	pending := make(Values, len(vals))
	order := make([]string, 0, len(vals))
	for name, v := range vals {
		pending[name] = v
		order = append(order, name)
	}
	sort.Strings(order)
	return t.construct(pending, order)
}

// construct consumes pending values against the resolved field set. The
// pending map is owned by the caller and consumed here; order lists its
// keys for deterministic leftover reporting.
func (t *Type) construct(pending Values, order []string) (*Instance, error) {
	inst := &Instance{
		typ:        t,
		containers: make(map[string]container, len(t.specs)),
	}
	for _, s := range t.specs {
		raw, supplied := pending[s.Name]
		if supplied {
			delete(pending, s.Name)
		}
		c, err := t.newContainer(s, raw, !supplied)
		if err != nil {
			return nil, err
		}
		inst.containers[s.Name] = c
	}
	if len(pending) > 0 {
		for _, name := range order {
			if _, left := pending[name]; left {
				return nil, NewUnknownFieldError(t.name, name)
			}
		}
	}
	return inst, nil
}

// Type returns the entity type of the instance.
func (i *Instance) Type() *Type {
	return i.typ
}

// Get returns the resolved value of the named field, transparently
// unwrapping its container. Relation values are returned exactly as they
// were supplied at construction.
func (i *Instance) Get(name string) (any, error) {
	c, ok := i.containers[name]
	if !ok {
		return nil, NewUnknownFieldError(i.typ.name, name)
	}
	return c.value(), nil
}

// MustGet is like Get but panics on an unknown field name.
func (i *Instance) MustGet(name string) any {
	v, err := i.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// ID returns the value of the implicit identifier field.
func (i *Instance) ID() any {
	return i.containers[IDField].value()
}

// UsedDefault reports whether the named field was populated from its
// descriptor's default rather than a caller-supplied value. Supplying a
// value equal to the default reports false.
func (i *Instance) UsedDefault(name string) bool {
	c, ok := i.containers[name]
	return ok && c.defaultUsed()
}

// Values returns the unwrapped values of all fields as a name to value
// mapping.
func (i *Instance) Values() Values {
	out := make(Values, len(i.containers))
	for name, c := range i.containers {
		out[name] = c.value()
	}
	return out
}
