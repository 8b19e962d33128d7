package doctypes

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/radhagarine/docgenius/pkg/params"
)

func TestNewRegistryListsAllTypes(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	want := []string{TypeInvoice, TypeLetterOfIntent, TypeNDA, TypeProposal, TypeScopeOfWork}
	if diff := cmp.Diff(want, reg.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestDefinitionSchemasAreValid(t *testing.T) {
	for _, def := range definitions() {
		def := def
		t.Run(def.typeID, func(t *testing.T) {
			if err := def.schema.Validate(); err != nil {
				t.Errorf("schema.Validate() error = %v", err)
			}
			if def.schema.TypeID != def.typeID {
				t.Errorf("schema.TypeID = %q, want %q", def.schema.TypeID, def.typeID)
			}
			if def.baseCredits <= 0 {
				t.Errorf("baseCredits = %d, want positive", def.baseCredits)
			}
		})
	}
}

func sampleInvoiceParams() map[string]any {
	return map[string]any{
		"business_name":    "Acme Corp",
		"business_address": "1 Main St\nSpringfield",
		"business_phone":   "555-0100",
		"business_email":   "billing@acme.test",
		"client_name":      "Jordan Blake",
		"client_address":   "9 Elm Ave",
		"invoice_number":   "INV-001",
		"invoice_date":     "August 1, 2026",
		"due_date":         "August 31, 2026",
		"payment_terms":    "Net 30",
		"currency":         "USD",
		"line_items":       "Widget | 2 | 10.00\nService | 1 | 50.00",
		"tax_rate":         10,
		"shipping":         5,
	}
}

func TestInvoiceRendering(t *testing.T) {
	reg := MustRegistry()
	sch, err := reg.Schema(TypeInvoice)
	if err != nil {
		t.Fatalf("Schema(invoice) error = %v", err)
	}
	values, err := params.Validate(sch, sampleInvoiceParams())
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	html, err := reg.Render(context.Background(), TypeInvoice, values)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{
		"INV-001",
		"$70.00",      // subtotal
		"Tax (10%)",   // rate without trailing zeros
		"$7.00",       // tax amount
		"$5.00",       // shipping
		"$82.00 USD",  // grand total with currency code
		"Widget",
		"$20.00",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered invoice missing %q", want)
		}
	}
}

func TestInvoiceRenderingSkipsZeroTaxAndShipping(t *testing.T) {
	reg := MustRegistry()
	sch, _ := reg.Schema(TypeInvoice)

	raw := sampleInvoiceParams()
	delete(raw, "tax_rate")
	delete(raw, "shipping")
	values, err := params.Validate(sch, raw)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	html, err := reg.Render(context.Background(), TypeInvoice, values)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(html, "Tax (") {
		t.Error("rendered invoice shows a tax row for a zero tax rate")
	}
	if strings.Contains(html, "Shipping:") {
		t.Error("rendered invoice shows a shipping row for zero shipping")
	}
	if !strings.Contains(html, "$70.00 USD") {
		t.Error("rendered invoice missing total without tax and shipping")
	}
}

func TestInvoiceRenderingIsIdempotent(t *testing.T) {
	reg := MustRegistry()
	sch, _ := reg.Schema(TypeInvoice)
	values, err := params.Validate(sch, sampleInvoiceParams())
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	first, err := reg.Render(context.Background(), TypeInvoice, values)
	if err != nil {
		t.Fatalf("first Render() error = %v", err)
	}
	second, err := reg.Render(context.Background(), TypeInvoice, values)
	if err != nil {
		t.Fatalf("second Render() error = %v", err)
	}
	if first != second {
		t.Error("rendering the same values twice produced different documents")
	}
}

func sampleLetterOfIntentParams() map[string]any {
	return map[string]any{
		"letter_date":             "July 4, 2026",
		"transaction_type":        "asset purchase",
		"sender_name":             "Morgan Reyes",
		"sender_company":          "Northwind Holdings",
		"sender_address":          "200 Pine St",
		"recipient_name":          "Casey Tran",
		"recipient_company":       "Contoso Ltd",
		"recipient_address":       "77 Lake Dr",
		"transaction_description": "Purchase of substantially all assets.",
		"proposed_terms":          "Cash consideration of $2,000,000.",
	}
}

func TestLetterOfIntentOptionalClauses(t *testing.T) {
	reg := MustRegistry()
	sch, _ := reg.Schema(TypeLetterOfIntent)

	values, err := params.Validate(sch, sampleLetterOfIntentParams())
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	html, err := reg.Render(context.Background(), TypeLetterOfIntent, values)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(html, ">Exclusivity</h3>") {
		t.Error("letter shows an exclusivity section without an exclusivity clause")
	}
	if strings.Contains(html, ">Confidentiality</h3>") {
		t.Error("letter shows a confidentiality section without a confidentiality clause")
	}

	raw := sampleLetterOfIntentParams()
	raw["exclusivity"] = "Seller will negotiate exclusively with Buyer for 90 days."
	raw["confidentiality"] = "The parties will keep these discussions strictly confidential."
	values, err = params.Validate(sch, raw)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	html, err = reg.Render(context.Background(), TypeLetterOfIntent, values)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(html, "exclusively with Buyer for 90 days") {
		t.Error("letter missing the supplied exclusivity clause")
	}
	if !strings.Contains(html, "strictly confidential") {
		t.Error("letter missing the supplied confidentiality clause")
	}
}

func TestNDARendering(t *testing.T) {
	reg := MustRegistry()
	sch, _ := reg.Schema(TypeNDA)

	values, err := params.Validate(sch, map[string]any{
		"agreement_date":               "June 1, 2026",
		"party1_name":                  "Acme Corp",
		"party1_address":               "1 Main St",
		"party1_type":                  "Corporation",
		"party1_state":                 "Delaware",
		"party2_name":                  "Beta LLC",
		"party2_address":               "2 Side St",
		"party2_type":                  "Limited Liability Company",
		"party2_state":                 "California",
		"purpose":                      "evaluating a joint venture",
		"confidential_info_definition": defaultConfidentialInfo,
		"governing_law":                "Delaware",
		"term_years":                   3,
	})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	html, err := reg.Render(context.Background(), TypeNDA, values)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(html, "for 3 years") {
		t.Error("NDA missing the three year term")
	}
	if !strings.Contains(html, "NON-DISCLOSURE AGREEMENT") {
		t.Error("NDA missing its title")
	}
	if !strings.Contains(html, "laws of the State of Delaware") {
		t.Error("NDA missing its governing law clause")
	}
}

func TestNDARejectsNonNumericTerm(t *testing.T) {
	reg := MustRegistry()
	sch, _ := reg.Schema(TypeNDA)

	raw := map[string]any{
		"agreement_date":               "June 1, 2026",
		"party1_name":                  "Acme Corp",
		"party1_address":               "1 Main St",
		"party1_type":                  "Corporation",
		"party1_state":                 "Delaware",
		"party2_name":                  "Beta LLC",
		"party2_address":               "2 Side St",
		"party2_type":                  "Limited Liability Company",
		"party2_state":                 "California",
		"purpose":                      "evaluating a joint venture",
		"confidential_info_definition": defaultConfidentialInfo,
		"governing_law":                "Delaware",
		"term_years":                   "not-a-number",
	}

	_, err := params.Validate(sch, raw)
	var invalid *params.InvalidValueError
	if !errors.As(err, &invalid) {
		t.Fatalf("Validate() error = %v, want InvalidValueError", err)
	}
	if invalid.FieldID != "term_years" {
		t.Errorf("FieldID = %q, want %q", invalid.FieldID, "term_years")
	}
}

func TestNDAPrepareFallsBackToPlaceholders(t *testing.T) {
	data := ndaDefinition().prepare(params.Values{})

	if got := data["party1_name"]; got != "[DISCLOSING PARTY NAME]" {
		t.Errorf("party1_name = %v, want placeholder", got)
	}
	if got := data["term_years"]; got != "3" {
		t.Errorf("term_years = %v, want default %q", got, "3")
	}
	if got := data["confidential_info"]; got != defaultConfidentialInfo {
		t.Errorf("confidential_info = %v, want the standard definition", got)
	}
}

func TestRenderHonorsContextCancellation(t *testing.T) {
	reg := MustRegistry()
	sch, _ := reg.Schema(TypeInvoice)
	values, err := params.Validate(sch, sampleInvoiceParams())
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := reg.Render(ctx, TypeInvoice, values); err == nil {
		t.Error("Render() with a cancelled context returned no error")
	}
}
