package openapi

import (
	"context"
	"testing"

	"github.com/radhagarine/docgenius/pkg/doctypes"
)

func TestBuildDocumentValidates(t *testing.T) {
	doc := BuildDocument(doctypes.MustRegistry())

	if err := doc.Validate(context.Background()); err != nil {
		t.Fatalf("document failed validation: %v", err)
	}
}

func TestBuildDocumentCoversAllTypes(t *testing.T) {
	reg := doctypes.MustRegistry()
	doc := BuildDocument(reg)

	for _, typeID := range reg.List() {
		name := parametersSchemaName(typeID)
		if _, ok := doc.Components.Schemas[name]; !ok {
			t.Errorf("components missing schema %s", name)
		}
	}
}

func TestBuildDocumentInvoiceSchema(t *testing.T) {
	doc := BuildDocument(doctypes.MustRegistry())

	ref := doc.Components.Schemas[parametersSchemaName(doctypes.TypeInvoice)]
	if ref == nil || ref.Value == nil {
		t.Fatal("invoice parameters schema missing")
	}

	currency := ref.Value.Properties["currency"]
	if currency == nil || currency.Value == nil {
		t.Fatal("currency property missing")
	}
	if len(currency.Value.Enum) == 0 {
		t.Error("currency should enumerate its allowed options")
	}

	found := false
	for _, id := range ref.Value.Required {
		if id == "line_items" {
			found = true
		}
	}
	if !found {
		t.Error("line_items should be required")
	}
}
