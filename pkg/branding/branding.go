// Package branding defines the document color theme. The built-in palette is
// published as a go-theme manifest so document styling shares the same token
// vocabulary as the rest of the product's theming.
package branding

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/radhagarine/docgenius/pkg/profile"
)

// Token names used by the document templates.
const (
	TokenPrimary   = "color.primary"
	TokenSecondary = "color.secondary"
)

// Every built-in template embeds these two colors; Apply rewrites them
// wherever they occur.
const (
	DefaultPrimaryColor   = "#2E86C1"
	DefaultSecondaryColor = "#2874A6"
)

// DefaultManifest describes the stock document theme. The token values are
// the hex colors baked into every built-in template.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "docgenius",
		Version: "1.0.0",
		Tokens: map[string]string{
			TokenPrimary:   DefaultPrimaryColor,
			TokenSecondary: DefaultSecondaryColor,
		},
		Variants: map[string]theme.Variant{
			"print": {
				Tokens: map[string]string{
					TokenPrimary:   "#000000",
					TokenSecondary: "#333333",
				},
			},
		},
	}
}

// Palette is the resolved color pair applied to a rendered document.
type Palette struct {
	Primary   string
	Secondary string
}

// DefaultPalette returns the stock colors.
func DefaultPalette() Palette {
	tokens := DefaultManifest().Tokens
	return Palette{Primary: tokens[TokenPrimary], Secondary: tokens[TokenSecondary]}
}

// PaletteFor resolves the palette for a user profile: profile brand colors
// override the manifest tokens, absent ones fall back to the defaults.
func PaletteFor(p *profile.IndustryProfile) Palette {
	palette := DefaultPalette()
	if p == nil {
		return palette
	}
	if p.BrandColors.Primary != "" {
		palette.Primary = p.BrandColors.Primary
	}
	if p.BrandColors.Secondary != "" {
		palette.Secondary = p.BrandColors.Secondary
	}
	return palette
}

// Apply rewrites the stock palette colors in rendered HTML with the given
// palette. Applying the default palette is a no-op.
func Apply(content string, palette Palette) string {
	if palette.Primary != "" && palette.Primary != DefaultPrimaryColor {
		content = strings.ReplaceAll(content, DefaultPrimaryColor, palette.Primary)
	}
	if palette.Secondary != "" && palette.Secondary != DefaultSecondaryColor {
		content = strings.ReplaceAll(content, DefaultSecondaryColor, palette.Secondary)
	}
	return content
}

// NewProvider registers the stock manifest with a go-theme registry so the
// document theme is discoverable alongside any other product themes.
func NewProvider() (theme.ThemeProvider, error) {
	reg := theme.NewRegistry()
	if err := reg.Register(DefaultManifest()); err != nil {
		return nil, fmt.Errorf("branding: register manifest: %w", err)
	}
	return reg, nil
}
