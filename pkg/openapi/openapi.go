// Package openapi publishes the HTTP API description. Document-type schemas
// are derived from the registry so the published contract always matches the
// registered templates.
package openapi

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/radhagarine/docgenius/pkg/registry"
	"github.com/radhagarine/docgenius/pkg/schema"
)

// BuildDocument assembles the OpenAPI 3 description for a registry's
// document types and the generation endpoints that serve them.
func BuildDocument(reg *registry.Registry) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "DocGenius API",
			Description: "Form-driven business document generation.",
			Version:     "1.0.0",
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{},
		},
	}

	for _, tpl := range reg.Templates() {
		doc.Components.Schemas[parametersSchemaName(tpl.TypeID)] = openapi3.NewSchemaRef("", parametersSchema(tpl.Schema))
	}

	doc.Paths.Set("/api/document-types", &openapi3.PathItem{
		Get: &openapi3.Operation{
			OperationID: "listDocumentTypes",
			Summary:     "List supported document types",
			Responses: openapi3.NewResponses(openapi3.WithStatus(200, &openapi3.ResponseRef{
				Value: openapi3.NewResponse().
					WithDescription("Supported document types").
					WithJSONSchema(openapi3.NewArraySchema().WithItems(documentTypeSchema())),
			})),
		},
	})

	doc.Paths.Set("/api/document-types/{type}/parameters", &openapi3.PathItem{
		Get: &openapi3.Operation{
			OperationID: "getDocumentTypeParameters",
			Summary:     "Get the parameter schema for a document type",
			Parameters:  openapi3.Parameters{typePathParameter()},
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(200, &openapi3.ResponseRef{
					Value: openapi3.NewResponse().
						WithDescription("Parameter sections for the document type").
						WithJSONSchema(openapi3.NewObjectSchema()),
				}),
				openapi3.WithStatus(404, &openapi3.ResponseRef{
					Value: openapi3.NewResponse().WithDescription("Unsupported document type"),
				}),
			),
		},
	})

	doc.Paths.Set("/api/documents", &openapi3.PathItem{
		Post: &openapi3.Operation{
			OperationID: "generateDocument",
			Summary:     "Validate parameters and generate a document",
			RequestBody: &openapi3.RequestBodyRef{
				Value: openapi3.NewRequestBody().
					WithRequired(true).
					WithJSONSchema(generateRequestSchema()),
			},
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(200, &openapi3.ResponseRef{
					Value: openapi3.NewResponse().
						WithDescription("The generated document").
						WithJSONSchema(generatedDocumentSchema()),
				}),
				openapi3.WithStatus(404, &openapi3.ResponseRef{
					Value: openapi3.NewResponse().WithDescription("Unsupported document type"),
				}),
				openapi3.WithStatus(422, &openapi3.ResponseRef{
					Value: openapi3.NewResponse().WithDescription("Missing or invalid parameters"),
				}),
			),
		},
	})

	return doc
}

func parametersSchemaName(typeID string) string {
	return fmt.Sprintf("%sParameters", typeID)
}

// parametersSchema flattens a document schema's sections into one object
// schema: properties per field, required list per required flag.
func parametersSchema(s schema.Schema) *openapi3.Schema {
	out := openapi3.NewObjectSchema()
	out.Description = s.DisplayName + " parameters"
	for _, field := range s.Fields() {
		out.Properties[field.ID] = openapi3.NewSchemaRef("", fieldSchema(field))
		if field.Required {
			out.Required = append(out.Required, field.ID)
		}
	}
	return out
}

func fieldSchema(f schema.Field) *openapi3.Schema {
	var out *openapi3.Schema
	switch f.Kind {
	case schema.KindNumber:
		out = openapi3.NewFloat64Schema()
	case schema.KindSelect:
		out = openapi3.NewStringSchema()
		for _, option := range f.Options {
			out.Enum = append(out.Enum, option)
		}
	default:
		// text, long-text, and date travel as strings
		out = openapi3.NewStringSchema()
	}
	out.Title = f.Label
	out.Description = f.Help
	if f.Default != nil {
		out.Default = f.Default
	}
	return out
}

func documentTypeSchema() *openapi3.Schema {
	out := openapi3.NewObjectSchema()
	out.Properties = openapi3.Schemas{
		"type_id":      openapi3.NewSchemaRef("", openapi3.NewStringSchema()),
		"display_name": openapi3.NewSchemaRef("", openapi3.NewStringSchema()),
		"description":  openapi3.NewSchemaRef("", openapi3.NewStringSchema()),
		"base_credits": openapi3.NewSchemaRef("", openapi3.NewIntegerSchema()),
	}
	return out
}

func typePathParameter() *openapi3.ParameterRef {
	return &openapi3.ParameterRef{
		Value: &openapi3.Parameter{
			Name:     "type",
			In:       openapi3.ParameterInPath,
			Required: true,
			Schema:   openapi3.NewSchemaRef("", openapi3.NewStringSchema()),
		},
	}
}

func generateRequestSchema() *openapi3.Schema {
	out := openapi3.NewObjectSchema()
	out.Properties = openapi3.Schemas{
		"type_id":    openapi3.NewSchemaRef("", openapi3.NewStringSchema()),
		"parameters": openapi3.NewSchemaRef("", openapi3.NewObjectSchema()),
	}
	out.Required = []string{"type_id", "parameters"}
	return out
}

func generatedDocumentSchema() *openapi3.Schema {
	out := openapi3.NewObjectSchema()
	out.Properties = openapi3.Schemas{
		"id":           openapi3.NewSchemaRef("", openapi3.NewStringSchema()),
		"type_id":      openapi3.NewSchemaRef("", openapi3.NewStringSchema()),
		"html":         openapi3.NewSchemaRef("", openapi3.NewStringSchema()),
		"credits_used": openapi3.NewSchemaRef("", openapi3.NewIntegerSchema()),
		"generated_at": openapi3.NewSchemaRef("", openapi3.NewStringSchema()),
	}
	return out
}
