package ruleset

import (
	"reflect"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// Schema describes the records accepted by the rule set as an OpenAPI object
// schema. Property types come from the record shape; every rule adds its
// constraints to its property, and RecordRule messages are listed in the
// object description.
func (rs *RuleSet[T]) Schema() (*openapi3.Schema, error) {
	schema := openapi3.NewObjectSchema()
	for _, name := range rs.order {
		ref, err := propertySchema(rs.types[name])
		if err != nil {
			return nil, &ConfigurationError{Field: name, Reason: err.Error()}
		}
		schema.Properties[name] = ref
	}

	for _, fr := range rs.fields {
		if err := fr.Rule.Describe(fr.Field, schema, schema.Properties[fr.Field]); err != nil {
			return nil, &ConfigurationError{Field: fr.Field, Kind: fr.Rule.Kind(), Reason: err.Error()}
		}
	}

	if len(rs.records) > 0 {
		msgs := make([]string, len(rs.records))
		for i, rr := range rs.records {
			msgs[i] = rr.Name + ": " + rr.Message
		}
		schema.Description = strings.Join(msgs, "\n")
	}
	return schema, nil
}

// propertySchema generates the schema for one field type. Fields whose type
// cannot be known from the shape get an empty schema.
func propertySchema(f shapeField) (*openapi3.SchemaRef, error) {
	if f.typ == nil {
		return openapi3.NewSchemaRef("", &openapi3.Schema{Nullable: f.nullable}), nil
	}
	ref, err := openapi3gen.NewSchemaRefForValue(reflect.New(f.typ).Elem().Interface(), nil)
	if err != nil {
		return nil, err
	}
	if f.nullable {
		ref.Value.Nullable = true
	}
	return ref, nil
}
