// Package profile holds the per-user industry profile consumed during
// document customization. Profiles are owned by the user-management side of
// the product; the generator only reads them.
package profile

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Store when the user has no saved profile.
var ErrNotFound = errors.New("profile: not found")

// BrandColors is the primary/secondary pair substituted into rendered
// documents in place of the built-in palette.
type BrandColors struct {
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
}

// IndustryProfile describes the user's business for document customization.
// Every field is optional; a zero profile customizes nothing.
type IndustryProfile struct {
	Industry            string      `json:"industry" yaml:"industry"`
	CompanyName         string      `json:"company_name,omitempty" yaml:"company_name,omitempty"`
	CompanySize         string      `json:"company_size,omitempty" yaml:"company_size,omitempty"`
	BusinessType        string      `json:"business_type,omitempty" yaml:"business_type,omitempty"`
	TargetMarket        string      `json:"target_market,omitempty" yaml:"target_market,omitempty"`
	CompanyDescription  string      `json:"company_description,omitempty" yaml:"company_description,omitempty"`
	DocumentPreferences []string    `json:"document_preferences,omitempty" yaml:"document_preferences,omitempty"`
	BrandColors         BrandColors `json:"brand_colors,omitempty" yaml:"brand_colors,omitempty"`
}

// Store retrieves and persists profiles. Implementations must return
// ErrNotFound (possibly wrapped) when no profile exists for the user.
type Store interface {
	Get(ctx context.Context, userID string) (*IndustryProfile, error)
	Put(ctx context.Context, userID string, p *IndustryProfile) error
}
