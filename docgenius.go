// Package docgenius generates business documents (NDAs, invoices, letters
// of intent, proposals, scopes of work) from validated form parameters. The
// root package is a convenience facade over pkg/: build a Service with the
// built-in document types, or compose the pieces directly for custom wiring.
package docgenius

import (
	"context"

	"github.com/radhagarine/docgenius/pkg/doctypes"
	"github.com/radhagarine/docgenius/pkg/generator"
	"github.com/radhagarine/docgenius/pkg/params"
	"github.com/radhagarine/docgenius/pkg/profile"
	"github.com/radhagarine/docgenius/pkg/registry"
	"github.com/radhagarine/docgenius/pkg/schema"
)

// Re-exported types for callers that only import the root package.
type (
	Document        = generator.Document
	Service         = generator.Service
	Schema          = schema.Schema
	Values          = params.Values
	IndustryProfile = profile.IndustryProfile
	Template        = registry.Template
)

// Option configures the Service built by New.
type Option = generator.Option

// WithProfileStore enables per-user industry customization.
func WithProfileStore(store profile.Store) Option {
	return generator.WithProfileStore(store)
}

// New builds a generation service with the five built-in document types.
func New(options ...Option) (*Service, error) {
	reg, err := doctypes.NewRegistry()
	if err != nil {
		return nil, err
	}
	return generator.New(reg, options...)
}

// GenerateHTML validates raw parameters and renders a document in one call,
// without profile customization. Callers needing customization, pricing, or
// document envelopes use Service.GenerateDocument.
func GenerateHTML(ctx context.Context, typeID string, raw map[string]any) (string, error) {
	svc, err := New()
	if err != nil {
		return "", err
	}
	doc, err := svc.GenerateDocument(ctx, typeID, raw, "")
	if err != nil {
		return "", err
	}
	return doc.HTML, nil
}
