// Package pertype is a runtime schema, validation, and codec library:
// composable schema values that type-guard unknown inputs, validate them
// against declarative constraints, and coerce between an external
// representation and a typed internal one.
//
// Schemas are immutable. Every configuring call (Rule, Label, the fluent
// Min/Max/Pattern builders, wrapping in Array/Optional/...) returns a new
// schema value and leaves the receiver untouched, so schemas are safe to
// share as process-wide singletons.
//
// The concrete schema kinds and their factory functions live in the dsl
// subpackage; this package holds the contracts, the violation/error model,
// and the generic entry points (Decode, Encode, TryDecode, TryEncode).
//
//	s := dsl.Object(dsl.Props{
//		"name": dsl.String().NotEmpty(),
//		"tags": dsl.Array[string](dsl.String()),
//	})
//	v, err := s.Decode(ctx, raw)
//
// Check, Test, and Validate never return errors through the error channel:
// they aggregate Violations. Decode and Encode fail fast with a
// ViolationError (or one of its Unsupported* subtypes) whose violations carry
// a dotted path from the root to the failing leaf, e.g. "items.2.name".
package pertype
