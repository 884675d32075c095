// Package snapshot encodes resolved entity types and constructed instances
// into portable byte forms.
//
// Schemas are exported as JSON or YAML descriptor documents, suitable for
// inspection and diffing. Records (the scalar field values of an instance)
// are encoded with msgpack; decoding a record reconstructs the instance
// through the regular construction path, re-validating every constraint.
package snapshot

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/syssam/strata"
)

// Schema is the serializable form of a resolved entity type.
type Schema struct {
	Name   string   `json:"name" yaml:"name"`
	Label  string   `json:"label" yaml:"label"`
	Table  string   `json:"table" yaml:"table"`
	Fields []*Field `json:"fields" yaml:"fields"`
}

// Field is the serializable form of one resolved field descriptor.
type Field struct {
	Name      string `json:"name" yaml:"name"`
	Kind      string `json:"kind" yaml:"kind"`
	AllowNull bool   `json:"allow_null" yaml:"allow_null"`
	Unique    bool   `json:"unique,omitempty" yaml:"unique,omitempty"`
	Default   any    `json:"default,omitempty" yaml:"default,omitempty"`
	Target    string `json:"target,omitempty" yaml:"target,omitempty"`
	Source    string `json:"source,omitempty" yaml:"source,omitempty"`
	Comment   string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// NewSchema builds the serializable form of a resolved type.
func NewSchema(t *strata.Type) *Schema {
	specs := t.Specs()
	s := &Schema{
		Name:   t.Name(),
		Label:  t.Label(),
		Table:  t.Table(),
		Fields: make([]*Field, 0, len(specs)),
	}
	for _, fs := range specs {
		f := &Field{
			Name:      fs.Name,
			Kind:      fs.Kind.String(),
			AllowNull: fs.AllowNull,
			Unique:    fs.Unique,
			Target:    fs.Target,
			Comment:   fs.Comment,
		}
		if src := fs.Source(); src != nil {
			f.Source = src.Name()
		}
		// Include the default only if it can be encoded.
		// For example, not a function like time.Now.
		if _, err := json.Marshal(fs.Default); err == nil {
			f.Default = fs.Default
		}
		s.Fields = append(s.Fields, f)
	}
	return s
}

// MarshalType encodes the resolved field set of a type as JSON.
func MarshalType(t *strata.Type) ([]byte, error) {
	return json.Marshal(NewSchema(t))
}

// MarshalTypeYAML encodes the resolved field set of a type as YAML.
func MarshalTypeYAML(t *strata.Type) ([]byte, error) {
	return yaml.Marshal(NewSchema(t))
}

// MarshalRecord encodes the scalar field values of an instance as msgpack.
// Relation values are in-memory references and are not encoded.
func MarshalRecord(i *strata.Instance) ([]byte, error) {
	specs := i.Type().Specs()
	rec := make(map[string]any, len(specs))
	for _, fs := range specs {
		if fs.Relation() {
			continue
		}
		v, err := i.Get(fs.Name)
		if err != nil {
			return nil, err
		}
		rec[fs.Name] = v
	}
	return msgpack.Marshal(rec)
}

// UnmarshalRecord decodes a record produced by [MarshalRecord] and
// reconstructs an instance of the given type through the regular
// construction path. Every constraint is re-validated; relation fields
// take their declared defaults.
func UnmarshalRecord(t *strata.Type, data []byte) (*strata.Instance, error) {
	var rec map[string]any
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return t.NewValues(rec)
}
