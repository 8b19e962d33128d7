package doctypes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLineItems(t *testing.T) {
	text := "Widget | 2 | 10.00\nService | 1 | 50.00"

	items, subtotal := parseLineItems(text)

	want := []lineItem{
		{description: "Widget", quantity: "2", unitPrice: "10.00", amount: 20, parsed: true},
		{description: "Service", quantity: "1", unitPrice: "50.00", amount: 50, parsed: true},
	}
	if diff := cmp.Diff(want, items, cmp.AllowUnexported(lineItem{})); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	if subtotal != 70 {
		t.Errorf("subtotal = %v, want 70", subtotal)
	}
}

func TestParseLineItemsLenient(t *testing.T) {
	text := "Consulting | lots | free\nRetainer\nOrphan | 2\n\n  \nCleanup | 3 | 15"

	items, subtotal := parseLineItems(text)

	want := []lineItem{
		{description: "Consulting", quantity: "lots", unitPrice: "free"},
		{description: "Retainer"},
		{description: "Cleanup", quantity: "3", unitPrice: "15.00", amount: 45, parsed: true},
	}
	if diff := cmp.Diff(want, items, cmp.AllowUnexported(lineItem{})); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	if subtotal != 45 {
		t.Errorf("subtotal = %v, want 45 (unparsed rows contribute nothing)", subtotal)
	}
}

func TestInvoiceTotals(t *testing.T) {
	tax, total := invoiceTotals(70, 10, 5)
	if tax != 7 {
		t.Errorf("tax = %v, want 7", tax)
	}
	if total != 82 {
		t.Errorf("total = %v, want 82", total)
	}
}

func TestCurrencySymbol(t *testing.T) {
	cases := map[string]string{
		"USD": "$",
		"EUR": "€",
		"GBP": "£",
		"CAD": "C$",
		"AUD": "A$",
		"CHF": "CHF",
	}
	for code, want := range cases {
		if got := currencySymbol(code); got != want {
			t.Errorf("currencySymbol(%q) = %q, want %q", code, got, want)
		}
	}
}
