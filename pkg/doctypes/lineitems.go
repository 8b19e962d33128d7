package doctypes

import (
	"strconv"
	"strings"
)

// lineItem is one parsed invoice row prepared for display. A row whose
// numeric columns fail to parse keeps the raw text and a zero amount instead
// of failing the render; line items are free-form text, not schema fields.
type lineItem struct {
	description string
	quantity    string
	unitPrice   string
	amount      float64
	parsed      bool
}

// parseLineItems splits pipe-delimited rows ("description | quantity | unit
// price", one per line) and accumulates the subtotal over rows that parsed.
// Single-token lines become description-only rows; two-token lines are
// dropped, matching the historical behavior.
func parseLineItems(text string) ([]lineItem, float64) {
	var (
		items    []lineItem
		subtotal float64
	)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "|")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		switch {
		case len(parts) >= 3:
			quantity, qErr := strconv.ParseFloat(parts[1], 64)
			unitPrice, pErr := strconv.ParseFloat(parts[2], 64)
			if qErr != nil || pErr != nil {
				items = append(items, lineItem{
					description: parts[0],
					quantity:    parts[1],
					unitPrice:   parts[2],
				})
				continue
			}
			total := quantity * unitPrice
			subtotal += total
			items = append(items, lineItem{
				description: parts[0],
				quantity:    formatNumber(quantity),
				unitPrice:   formatMoney(unitPrice),
				amount:      total,
				parsed:      true,
			})
		case len(parts) == 1 && parts[0] != "":
			items = append(items, lineItem{description: parts[0]})
		}
	}
	return items, subtotal
}

// invoiceTotals applies a percentage tax rate and an additive shipping fee.
func invoiceTotals(subtotal, taxRate, shipping float64) (taxAmount, total float64) {
	taxAmount = subtotal * (taxRate / 100)
	total = subtotal + taxAmount + shipping
	return taxAmount, total
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"CAD": "C$",
	"AUD": "A$",
}

// currencySymbol falls back to the currency code itself for currencies
// without a dedicated symbol.
func currencySymbol(code string) string {
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	return code
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
