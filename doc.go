// Package ruleset validates records against explicit, statically declared rule
// sets and aggregates every failure into one result.
//
// Declare a RuleSet once at startup, bound to the shape of the record it checks:
//
//	var orderRules = ruleset.MustNew(Order{},
//	    []*ruleset.FieldRules{
//	        ruleset.Field("customer", ruleset.NotBlank("customer is required"), ruleset.Length(1, 200, "customer is too long")),
//	        ruleset.Field("items", ruleset.Required("items is required"), ruleset.AtLeast(1, "order at least one item")),
//	    },
//	    ruleset.Check("validShipping", func(o Order) bool { ... }, "shipping is not available for this total"),
//	)
//
// Then validate with a single call:
//
//	res, err := orderRules.Validate(ctx, order)
//
// A failed validation is data (res.Valid() == false), never an error. The error
// return is reserved for programmer mistakes ([ConfigurationError]) and for a
// uniqueness lookup that could not answer ([CollaboratorFailure]).
//
// For HTTP handlers, [DecodeAndValidate] combines JSON decoding, normalization and
// validation in one step.
//
// Sub-packages:
//   - openapi – OpenAPI document helpers that describe rule sets as request schemas
//   - transform – string normalizers used inside [Normalizer] implementations
package ruleset
