package branding

import (
	"strings"
	"testing"

	"github.com/radhagarine/docgenius/pkg/profile"
)

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	if p.Primary != DefaultPrimaryColor {
		t.Errorf("Primary = %q, want %q", p.Primary, DefaultPrimaryColor)
	}
	if p.Secondary != DefaultSecondaryColor {
		t.Errorf("Secondary = %q, want %q", p.Secondary, DefaultSecondaryColor)
	}
}

func TestPaletteForOverrides(t *testing.T) {
	got := PaletteFor(&profile.IndustryProfile{
		BrandColors: profile.BrandColors{Primary: "#3FD7A5"},
	})
	if got.Primary != "#3FD7A5" {
		t.Errorf("Primary = %q, want profile override", got.Primary)
	}
	if got.Secondary != DefaultSecondaryColor {
		t.Errorf("Secondary = %q, want default", got.Secondary)
	}

	if got := PaletteFor(nil); got != DefaultPalette() {
		t.Errorf("PaletteFor(nil) = %+v, want defaults", got)
	}
}

func TestApplyRewritesStockColors(t *testing.T) {
	content := `<h1 style="color: #2E86C1;">Title</h1><h3 style="color: #2874A6;">Sub</h3>`

	got := Apply(content, Palette{Primary: "#3FD7A5", Secondary: "#26856C"})

	if strings.Contains(got, DefaultPrimaryColor) || strings.Contains(got, DefaultSecondaryColor) {
		t.Errorf("stock colors survived: %s", got)
	}
	if !strings.Contains(got, "#3FD7A5") || !strings.Contains(got, "#26856C") {
		t.Errorf("palette colors missing: %s", got)
	}
}

func TestApplyDefaultPaletteIsNoOp(t *testing.T) {
	content := `<h1 style="color: #2E86C1;">Title</h1>`
	if got := Apply(content, DefaultPalette()); got != content {
		t.Errorf("Apply with defaults changed content: %q", got)
	}
}

func TestNewProviderRegistersManifest(t *testing.T) {
	if _, err := NewProvider(); err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
}
