package doctypes

import (
	"github.com/radhagarine/docgenius/pkg/params"
	"github.com/radhagarine/docgenius/pkg/schema"
)

func letterOfIntentDefinition() definition {
	return definition{
		typeID:      TypeLetterOfIntent,
		displayName: "Letter of Intent",
		description: "Letter of intent outlining a proposed transaction between two parties",
		baseCredits: 4,
		schema: schema.Schema{
			TypeID:      TypeLetterOfIntent,
			DisplayName: "Letter of Intent",
			Sections: []schema.Section{
				{
					Title: "Letter Details",
					Fields: []schema.Field{
						{ID: "letter_date", Label: "Letter Date", Kind: schema.KindDate, Required: true},
						{ID: "transaction_type", Label: "Transaction Type", Kind: schema.KindText, Required: true,
							Help: "e.g. acquisition, partnership, joint venture, asset purchase"},
					},
				},
				{
					Title: "Sender",
					Fields: []schema.Field{
						{ID: "sender_name", Label: "Sender Name", Kind: schema.KindText, Required: true},
						{ID: "sender_title", Label: "Sender Title", Kind: schema.KindText},
						{ID: "sender_company", Label: "Sender Company", Kind: schema.KindText, Required: true},
						{ID: "sender_address", Label: "Sender Address", Kind: schema.KindLongText, Required: true},
					},
				},
				{
					Title: "Recipient",
					Fields: []schema.Field{
						{ID: "recipient_name", Label: "Recipient Name", Kind: schema.KindText, Required: true},
						{ID: "recipient_title", Label: "Recipient Title", Kind: schema.KindText},
						{ID: "recipient_company", Label: "Recipient Company", Kind: schema.KindText, Required: true},
						{ID: "recipient_address", Label: "Recipient Address", Kind: schema.KindLongText, Required: true},
					},
				},
				{
					Title: "Terms",
					Fields: []schema.Field{
						{ID: "transaction_description", Label: "Transaction Description", Kind: schema.KindLongText, Required: true},
						{ID: "proposed_terms", Label: "Proposed Terms", Kind: schema.KindLongText, Required: true},
						{ID: "due_diligence_period", Label: "Due Diligence Period", Kind: schema.KindText, Default: "60 days"},
						{ID: "closing_date", Label: "Target Closing Date", Kind: schema.KindDate},
						{ID: "confidentiality", Label: "Confidentiality Clause", Kind: schema.KindLongText},
						{ID: "exclusivity", Label: "Exclusivity Clause", Kind: schema.KindLongText},
						{ID: "expenses", Label: "Expenses Clause", Kind: schema.KindLongText},
					},
				},
			},
		},
		template: "letter_of_intent.html",
		prepare:  prepareLetterOfIntent,
	}
}

func prepareLetterOfIntent(v params.Values) map[string]any {
	return map[string]any{
		"letter_date":             v.Date("letter_date"),
		"transaction_type":        v.String("transaction_type", "[TRANSACTION TYPE]"),
		"sender_name":             v.String("sender_name", "[SENDER NAME]"),
		"sender_title":            v.String("sender_title", ""),
		"sender_company":          v.String("sender_company", "[SENDER COMPANY]"),
		"sender_address":          v.String("sender_address", "[SENDER ADDRESS]"),
		"recipient_name":          v.String("recipient_name", "[RECIPIENT NAME]"),
		"recipient_title":         v.String("recipient_title", ""),
		"recipient_company":       v.String("recipient_company", "[RECIPIENT COMPANY]"),
		"recipient_address":       v.String("recipient_address", "[RECIPIENT ADDRESS]"),
		"transaction_description": v.String("transaction_description", "[TRANSACTION DESCRIPTION]"),
		"proposed_terms":          v.String("proposed_terms", "[PROPOSED TERMS]"),
		"due_diligence_period":    v.String("due_diligence_period", "60 days"),
		"closing_date":            v.Date("closing_date"),
		"confidentiality":         v.String("confidentiality", ""),
		"exclusivity":             v.String("exclusivity", ""),
		"expenses":                v.String("expenses", ""),
	}
}
