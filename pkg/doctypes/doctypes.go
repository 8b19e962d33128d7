// Package doctypes defines the five built-in business document types: their
// parameter schemas, their HTML templates, and the context preparation that
// bridges validated parameters to template data.
package doctypes

import (
	"context"
	"fmt"

	"github.com/radhagarine/docgenius/pkg/params"
	"github.com/radhagarine/docgenius/pkg/registry"
	"github.com/radhagarine/docgenius/pkg/render"
	pongo2engine "github.com/radhagarine/docgenius/pkg/render/pongo2"
	"github.com/radhagarine/docgenius/pkg/schema"
)

// Stable type identifiers for the supported document types.
const (
	TypeNDA            = "nda"
	TypeInvoice        = "invoice"
	TypeLetterOfIntent = "letter_of_intent"
	TypeProposal       = "proposal"
	TypeScopeOfWork    = "scope_of_work"
)

// definition ties a document type's schema to its template and the function
// that prepares template data from validated parameters.
type definition struct {
	typeID      string
	displayName string
	description string
	baseCredits int
	schema      schema.Schema
	template    string
	prepare     func(values params.Values) map[string]any
}

func definitions() []definition {
	return []definition{
		ndaDefinition(),
		invoiceDefinition(),
		letterOfIntentDefinition(),
		proposalDefinition(),
		scopeOfWorkDefinition(),
	}
}

// NewRegistry builds a registry with all five document types registered,
// rendering through the embedded template bundle.
func NewRegistry() (*registry.Registry, error) {
	engine, err := pongo2engine.New(pongo2engine.WithFS(TemplatesFS()))
	if err != nil {
		return nil, fmt.Errorf("doctypes: configure template engine: %w", err)
	}
	return NewRegistryWithEngine(engine)
}

// NewRegistryWithEngine is like NewRegistry but renders through the supplied
// engine, letting callers inject global context or an alternate bundle.
func NewRegistryWithEngine(engine render.TemplateRenderer) (*registry.Registry, error) {
	reg := registry.New()
	for _, def := range definitions() {
		def := def
		tpl := registry.Template{
			TypeID:      def.typeID,
			DisplayName: def.displayName,
			Description: def.description,
			BaseCredits: def.baseCredits,
			Schema:      def.schema,
			Render: func(ctx context.Context, values params.Values) (string, error) {
				if err := ctx.Err(); err != nil {
					return "", err
				}
				return engine.RenderTemplate("templates/"+def.template, def.prepare(values))
			},
		}
		if err := reg.Register(tpl); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// MustRegistry panics when the built-in templates fail to register. Intended
// for wiring at process start.
func MustRegistry() *registry.Registry {
	reg, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return reg
}
