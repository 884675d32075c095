// Package rel provides fluent builders for declaring relation fields
// between entity types.
//
// # Cardinalities
//
// Four relation kinds are supported:
//
//	rel.OneToOne("profile", Profile.Type)
//	rel.OneToMany("posts", Post.Type)
//	rel.ManyToOne("author", User.Type)
//	rel.ManyToMany("groups", Group.Type)
//
// The target entity type is referenced through the Type marker method
// promoted from the embedded schema struct. Self-referential relations are
// declared the same way:
//
//	func (Node) Relations() []strata.Relation {
//	    return []strata.Relation{
//	        rel.OneToMany("children", Node.Type),
//	    }
//	}
//
// # Options
//
//	rel.OneToOne("owner", Person.Type).
//	    NotNull().                 // disallow nil references
//	    Default(&anon).            // default reference
//	    Comment("Record owner")
//
// Relation fields are always unique; there is no option to disable the
// unique constraint.
//
// # Nullability
//
// Unlike scalar fields, a relation declared NotNull must carry a default.
// Violations are reported through the descriptor's Err field and surface
// when the declaring entity type is resolved, before any instance of it
// can be constructed.
//
// # Back-references
//
// A relation descriptor records its target at declaration time. The entity
// type that declares it (the source) is not known until that type is
// resolved; the resolver binds the source onto the resolved field set,
// including for relations inherited from a base type, which report the
// inheriting type as their source.
package rel
