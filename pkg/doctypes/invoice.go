package doctypes

import (
	"github.com/radhagarine/docgenius/pkg/params"
	"github.com/radhagarine/docgenius/pkg/schema"
)

var paymentTerms = []string{"Due on Receipt", "Net 15", "Net 30", "Net 60", "Custom"}

var currencies = []string{"USD", "EUR", "GBP", "CAD", "AUD", "Other"}

func invoiceDefinition() definition {
	return definition{
		typeID:      TypeInvoice,
		displayName: "Invoice",
		description: "Professional invoice with itemized charges, tax, and payment details",
		baseCredits: 3,
		schema: schema.Schema{
			TypeID:      TypeInvoice,
			DisplayName: "Invoice",
			Sections: []schema.Section{
				{
					Title: "Business Information",
					Fields: []schema.Field{
						{ID: "business_name", Label: "Business Name", Kind: schema.KindText, Required: true},
						{ID: "business_address", Label: "Business Address", Kind: schema.KindLongText, Required: true},
						{ID: "business_phone", Label: "Business Phone", Kind: schema.KindText, Required: true},
						{ID: "business_email", Label: "Business Email", Kind: schema.KindText, Required: true},
					},
				},
				{
					Title: "Client Information",
					Fields: []schema.Field{
						{ID: "client_name", Label: "Client Name", Kind: schema.KindText, Required: true},
						{ID: "client_address", Label: "Client Address", Kind: schema.KindLongText, Required: true},
						{ID: "client_phone", Label: "Client Phone", Kind: schema.KindText},
						{ID: "client_email", Label: "Client Email", Kind: schema.KindText},
					},
				},
				{
					Title: "Invoice Details",
					Fields: []schema.Field{
						{ID: "invoice_number", Label: "Invoice Number", Kind: schema.KindText, Required: true},
						{ID: "invoice_date", Label: "Invoice Date", Kind: schema.KindDate, Required: true},
						{ID: "due_date", Label: "Due Date", Kind: schema.KindDate, Required: true},
						{ID: "payment_terms", Label: "Payment Terms", Kind: schema.KindSelect, Required: true, Options: paymentTerms, Default: "Net 30"},
						{ID: "currency", Label: "Currency", Kind: schema.KindSelect, Required: true, Options: currencies, Default: "USD"},
					},
				},
				{
					Title: "Line Items",
					Fields: []schema.Field{
						{
							ID: "line_items", Label: "Line Items", Kind: schema.KindLongText, Required: true,
							Help: "One item per line: Description | Quantity | Unit Price",
						},
						{ID: "tax_rate", Label: "Tax Rate (%)", Kind: schema.KindNumber, Default: 0.0},
						{ID: "shipping", Label: "Shipping / Handling", Kind: schema.KindNumber, Default: 0.0},
					},
				},
				{
					Title: "Additional Information",
					Fields: []schema.Field{
						{ID: "notes", Label: "Notes", Kind: schema.KindLongText},
						{ID: "payment_instructions", Label: "Payment Instructions", Kind: schema.KindLongText},
					},
				},
			},
		},
		template: "invoice.html",
		prepare:  prepareInvoice,
	}
}

func prepareInvoice(v params.Values) map[string]any {
	items, subtotal := parseLineItems(v.String("line_items", ""))
	taxRate := v.Number("tax_rate", 0)
	shipping := v.Number("shipping", 0)
	tax, total := invoiceTotals(subtotal, taxRate, shipping)

	currency := v.String("currency", "USD")
	symbol := currencySymbol(currency)

	rows := make([]map[string]any, 0, len(items))
	for _, it := range items {
		rows = append(rows, map[string]any{
			"description": it.description,
			"quantity":    it.quantity,
			"unit_price":  it.unitPrice,
			"amount":      formatMoney(it.amount),
		})
	}

	return map[string]any{
		"business_name":        v.String("business_name", "[BUSINESS NAME]"),
		"business_address":     v.String("business_address", "[BUSINESS ADDRESS]"),
		"business_phone":       v.String("business_phone", ""),
		"business_email":       v.String("business_email", ""),
		"client_name":          v.String("client_name", "[CLIENT NAME]"),
		"client_address":       v.String("client_address", "[CLIENT ADDRESS]"),
		"client_phone":         v.String("client_phone", ""),
		"client_email":         v.String("client_email", ""),
		"invoice_number":       v.String("invoice_number", "[INVOICE #]"),
		"invoice_date":         v.Date("invoice_date"),
		"due_date":             v.Date("due_date"),
		"payment_terms":        v.String("payment_terms", "Net 30"),
		"currency":             currency,
		"symbol":               symbol,
		"items":                rows,
		"subtotal":             formatMoney(subtotal),
		"tax_rate":             formatNumber(taxRate),
		"tax":                  formatMoney(tax),
		"show_tax":             tax > 0,
		"shipping":             formatMoney(shipping),
		"show_shipping":        shipping > 0,
		"total":                formatMoney(total),
		"notes":                v.String("notes", ""),
		"payment_instructions": v.String("payment_instructions", ""),
	}
}
