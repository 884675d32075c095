package strata

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/go-openapi/inflect"
)

// Registry resolves entity type declarations into immutable [Type] values
// and caches them by name. The zero value is not usable; create registries
// with [NewRegistry].
//
// A Registry is safe for concurrent use. Resolution of a given declaration
// happens once; later calls return the cached Type.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*Type
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*Type)}
}

// Resolve builds the resolved field set of the given declaration and
// returns its Type. Base types are resolved first, transitively, and
// registered alongside the declaration itself.
//
// The merge runs in declaration order: the implicit identifier field, then
// each base's resolved set left to right (a later base overrides an
// earlier one on a name collision), then the declaration's own fields and
// relations, which override any base. Inherited specs are cloned, never
// shared with the base's own resolved set.
//
// Once the Type exists, the source back-reference of every relation spec
// in its resolved set is bound to it. An invalid descriptor anywhere in
// the declaration chain fails resolution with a
// [ConstraintDefinitionError] before any instance can exist.
func (r *Registry) Resolve(decl Interface) (*Type, error) {
	return r.resolve(decl, make(map[string]bool))
}

// MustResolve is like Resolve but panics on error. It simplifies
// resolution of statically known declarations at program start.
func (r *Registry) MustResolve(decl Interface) *Type {
	t, err := r.Resolve(decl)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the resolved Type registered under the given name.
func (r *Registry) Lookup(name string) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	return t, ok
}

// Types returns all resolved types, sorted by name.
func (r *Registry) Types() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Type, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func (r *Registry) resolve(decl Interface, visiting map[string]bool) (*Type, error) {
	name, err := declName(decl)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	t, ok := r.types[name]
	r.mu.RUnlock()
	if ok {
		return t, nil
	}
	if visiting[name] {
		return nil, fmt.Errorf("strata: circular base declaration involving %s", name)
	}
	visiting[name] = true

	label := inflect.Underscore(name)
	t = &Type{
		name:  name,
		label: label,
		table: inflect.Pluralize(label),
		decl:  decl,
		index: make(map[string]*FieldSpec),
	}
	// Implicit identifier, overridable by bases and own declarations.
	t.insert(&FieldSpec{Name: IDField, Kind: KindInteger, AllowNull: true, Unique: true})
	for _, base := range decl.Bases() {
		bt, err := r.resolve(base, visiting)
		if err != nil {
			return nil, err
		}
		for _, s := range bt.specs {
			t.insert(s.clone())
		}
	}
	for _, f := range decl.Fields() {
		fd := f.Descriptor()
		if fd.Err != nil {
			return nil, NewConstraintDefinitionError(name, fd.Name, fd.Err)
		}
		t.insert(newScalarSpec(fd))
	}
	for _, rl := range decl.Relations() {
		rd := rl.Descriptor()
		if rd.Err != nil {
			return nil, NewConstraintDefinitionError(name, rd.Name, rd.Err)
		}
		t.insert(newRelationSpec(rd))
	}
	for _, s := range t.specs {
		if s.Relation() {
			s.setSource(t)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.types[name]; ok {
		return cached, nil
	}
	r.types[name] = t
	return t, nil
}

// declName returns the entity type name of a declaration value.
func declName(decl Interface) (string, error) {
	t := reflect.TypeOf(decl)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return "", fmt.Errorf("strata: entity declaration must be a named type, got %T", decl)
	}
	return t.Name(), nil
}
