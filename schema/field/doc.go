// Package field provides fluent builders for declaring scalar entity
// fields.
//
// # Field Kinds
//
// Five scalar kinds are supported:
//
//	field.Text("name")          // string values
//	field.Integer("age")        // integer values
//	field.Real("weight")        // floating point values
//	field.Date("born")          // calendar dates (time.Time)
//	field.DateTime("seen_at")   // timestamps (time.Time)
//
// # Field Options
//
// Fields support a small set of configuration options:
//
//	field.Text("name").
//	    NotNull().             // disallow nil values
//	    Unique().              // unique constraint
//	    Default("anon").       // default when no value is supplied
//	    Comment("Display name")
//
// # Defaults
//
// Defaults may be literal values or nullary functions, invoked at instance
// construction time:
//
//	field.Integer("age").Default(0)
//	field.DateTime("created_at").Default(time.Now)
//
// A default must match the declared kind; a mismatch is reported through
// the descriptor's Err field and surfaces when the declaring entity type
// is resolved.
//
// # Nullability
//
// Fields allow nil values unless NotNull is set. Declaring NotNull without
// a default is accepted for scalar fields; construction of an instance
// that supplies no value for such a field fails with a null-constraint
// violation.
package field
