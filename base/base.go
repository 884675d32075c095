// Package base provides common base entity types for strata schemas.
//
// These bases are OPTIONAL and provided as convenient starting points.
// Users are encouraged to declare their own base types tailored to their
// needs. A base is an ordinary entity declaration consumed through the
// Bases method:
//
//	type Article struct{ strata.Schema }
//
//	func (Article) Bases() []strata.Interface {
//	    return []strata.Interface{base.Timestamps{}}
//	}
package base

import (
	"time"

	"github.com/google/uuid"

	"github.com/syssam/strata"
	"github.com/syssam/strata/schema/field"
)

// Timestamps adds created_at and updated_at fields, both defaulting to the
// construction time.
type Timestamps struct{ strata.Schema }

// Fields of the timestamps base.
func (Timestamps) Fields() []strata.Field {
	return []strata.Field{
		field.DateTime("created_at").
			Default(time.Now).
			Comment("Time the record was constructed"),
		field.DateTime("updated_at").
			Default(time.Now).
			Comment("Time the record was last rebuilt"),
	}
}

// timestamps base must implement `Interface`.
var _ strata.Interface = (*Timestamps)(nil)

// Keyed adds a unique text key field defaulting to a generated UUID
// string. The key is independent of the implicit identifier field.
type Keyed struct{ strata.Schema }

// Fields of the keyed base.
func (Keyed) Fields() []strata.Field {
	return []strata.Field{
		field.Text("key").
			NotNull().
			Unique().
			Default(uuid.NewString).
			Comment("Stable external key"),
	}
}

// keyed base must implement `Interface`.
var _ strata.Interface = (*Keyed)(nil)
