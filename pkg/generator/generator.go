// Package generator is the document generation service: it validates raw
// parameters against a document type's schema, renders the HTML, applies
// best-effort industry customization, and prices the result.
package generator

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/radhagarine/docgenius/pkg/branding"
	"github.com/radhagarine/docgenius/pkg/credits"
	"github.com/radhagarine/docgenius/pkg/params"
	"github.com/radhagarine/docgenius/pkg/profile"
	"github.com/radhagarine/docgenius/pkg/registry"
	"github.com/radhagarine/docgenius/pkg/schema"
)

// Document is one generation result. Ownership passes to the caller; the
// service keeps no reference after returning.
type Document struct {
	ID          string        `json:"id"`
	TypeID      string        `json:"type_id"`
	HTML        string        `json:"html"`
	Parameters  params.Values `json:"parameters"`
	CreditsUsed int           `json:"credits_used"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// Service coordinates the registry, the profile store, and pricing. All
// fields are set at construction and read-only afterwards, so a single
// Service is safe for concurrent use.
type Service struct {
	registry *registry.Registry
	profiles profile.Store
	clock    func() time.Time
	logger   *log.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithProfileStore enables industry customization for callers that supply a
// user id. Without a store every generation is un-customized.
func WithProfileStore(store profile.Store) Option {
	return func(s *Service) {
		s.profiles = store
	}
}

// WithClock fixes the time source, mainly for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLogger overrides the default logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New builds a Service around a populated registry.
func New(reg *registry.Registry, options ...Option) (*Service, error) {
	if reg == nil {
		return nil, errors.New("generator: registry is required")
	}
	s := &Service{
		registry: reg,
		clock:    time.Now,
		logger:   log.Default(),
	}
	for _, option := range options {
		option(s)
	}
	return s, nil
}

// DocumentTypes lists the registered templates sorted by type id.
func (s *Service) DocumentTypes() []registry.Template {
	return s.registry.Templates()
}

// DocumentParameters returns the parameter schema for a document type.
func (s *Service) DocumentParameters(typeID string) (schema.Schema, error) {
	return s.registry.Schema(typeID)
}

// ValidateParameters checks raw caller input against the type's schema and
// returns the coerced values.
func (s *Service) ValidateParameters(typeID string, raw map[string]any) (params.Values, error) {
	sch, err := s.registry.Schema(typeID)
	if err != nil {
		return nil, err
	}
	return params.Validate(sch, raw)
}

// GenerateContent renders the document HTML. When userID is non-empty and a
// profile store is configured, the content is customized for the user's
// industry and brand; profile lookup failures are logged and treated as "no
// profile" because customization is a best-effort enhancement.
func (s *Service) GenerateContent(ctx context.Context, typeID string, values params.Values, userID string) (string, error) {
	content, err := s.registry.Render(ctx, typeID, values)
	if err != nil {
		return "", err
	}
	if userID == "" || s.profiles == nil {
		return content, nil
	}

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, profile.ErrNotFound) {
			s.logger.Warn("profile lookup failed, skipping customization", "user_id", userID, "err", err)
		}
		return content, nil
	}
	content = profile.Customize(content, p)
	return branding.Apply(content, branding.PaletteFor(p)), nil
}

// GenerateDocument validates, renders, customizes, and prices in one call.
func (s *Service) GenerateDocument(ctx context.Context, typeID string, raw map[string]any, userID string) (Document, error) {
	values, err := s.ValidateParameters(typeID, raw)
	if err != nil {
		return Document{}, err
	}
	content, err := s.GenerateContent(ctx, typeID, values, userID)
	if err != nil {
		return Document{}, err
	}
	return Document{
		ID:          uuid.NewString(),
		TypeID:      typeID,
		HTML:        content,
		Parameters:  values,
		CreditsUsed: credits.RequiredFor(s.registry, typeID, content),
		GeneratedAt: s.clock().UTC(),
	}, nil
}

// Now exposes the service clock so collaborating sinks (export filenames,
// date stamps) stay consistent with generation timestamps.
func (s *Service) Now() time.Time {
	return s.clock()
}
