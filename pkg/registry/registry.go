package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/radhagarine/docgenius/pkg/params"
	"github.com/radhagarine/docgenius/pkg/schema"
)

// RenderFunc turns validated parameters into the final HTML fragment for one
// document type. Implementations must be pure: identical parameters always
// produce identical output, and the Values map is never mutated.
type RenderFunc func(ctx context.Context, values params.Values) (string, error)

// Template pairs a document type's parameter schema with its renderer.
type Template struct {
	TypeID      string
	DisplayName string
	Description string
	BaseCredits int
	Schema      schema.Schema
	Render      RenderFunc
}

// UnsupportedTypeError reports a document type outside the registered set.
type UnsupportedTypeError struct {
	TypeID string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("registry: document type %q is not supported", e.TypeID)
}

// Registry stores document templates by type id. Registration happens during
// process start-up; afterwards the registry is read-only and safe for
// concurrent lookups.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]Template
}

// New creates an empty registry instance.
func New() *Registry {
	return &Registry{templates: make(map[string]Template)}
}

// Register adds a template keyed by its TypeID. The template's schema is
// validated on the way in; duplicate type ids return an error.
func (r *Registry) Register(tpl Template) error {
	if tpl.TypeID == "" {
		return fmt.Errorf("registry: template type id is required")
	}
	if tpl.Render == nil {
		return fmt.Errorf("registry: template %q has no render function", tpl.TypeID)
	}
	if err := tpl.Schema.Validate(); err != nil {
		return fmt.Errorf("registry: template %q: %w", tpl.TypeID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.templates[tpl.TypeID]; exists {
		return fmt.Errorf("registry: template %q already registered", tpl.TypeID)
	}
	r.templates[tpl.TypeID] = tpl
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(tpl Template) {
	if err := r.Register(tpl); err != nil {
		panic(err)
	}
}

// Get retrieves a template by type id.
func (r *Registry) Get(typeID string) (Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tpl, ok := r.templates[typeID]
	if !ok {
		return Template{}, &UnsupportedTypeError{TypeID: typeID}
	}
	return tpl, nil
}

// Schema returns the parameter schema for a type id.
func (r *Registry) Schema(typeID string) (schema.Schema, error) {
	tpl, err := r.Get(typeID)
	if err != nil {
		return schema.Schema{}, err
	}
	return tpl.Schema, nil
}

// Render invokes the renderer registered for typeID with validated params.
func (r *Registry) Render(ctx context.Context, typeID string, values params.Values) (string, error) {
	tpl, err := r.Get(typeID)
	if err != nil {
		return "", err
	}
	return tpl.Render(ctx, values)
}

// Has reports whether a type id is registered.
func (r *Registry) Has(typeID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.templates[typeID]
	return ok
}

// List returns the registered type ids sorted alphabetically.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Templates returns the registered templates ordered by type id.
func (r *Registry) Templates() []Template {
	ids := r.List()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Template, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.templates[id])
	}
	return out
}
