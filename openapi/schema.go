package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// Schemer is implemented by anything that can describe the request body it
// accepts, such as a *ruleset.RuleSet.
type Schemer interface {
	Schema() (*openapi3.Schema, error)
}

// NewSchemaRefForValue generates an OpenAPI schema for the given Go value
// from its type and json tags. Used for response bodies.
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	return openapi3gen.NewSchemaRefForValue(value, nil)
}
