package doctypes

import (
	"github.com/radhagarine/docgenius/pkg/params"
	"github.com/radhagarine/docgenius/pkg/schema"
)

func proposalDefinition() definition {
	return definition{
		typeID:      TypeProposal,
		displayName: "Business Proposal",
		description: "Business proposal with solution, timeline, pricing, and company background",
		baseCredits: 8,
		schema: schema.Schema{
			TypeID:      TypeProposal,
			DisplayName: "Business Proposal",
			Sections: []schema.Section{
				{
					Title: "Proposal Details",
					Fields: []schema.Field{
						{ID: "proposal_title", Label: "Proposal Title", Kind: schema.KindText, Required: true},
						{ID: "proposal_id", Label: "Proposal ID", Kind: schema.KindText},
						{ID: "proposal_date", Label: "Proposal Date", Kind: schema.KindDate, Required: true},
						{ID: "valid_until", Label: "Valid Until", Kind: schema.KindDate},
					},
				},
				{
					Title: "Your Company",
					Fields: []schema.Field{
						{ID: "company_name", Label: "Company Name", Kind: schema.KindText, Required: true},
						{ID: "company_address", Label: "Company Address", Kind: schema.KindLongText},
						{ID: "company_website", Label: "Company Website", Kind: schema.KindText},
						{ID: "contact_name", Label: "Contact Name", Kind: schema.KindText, Required: true},
						{ID: "contact_title", Label: "Contact Title", Kind: schema.KindText},
						{ID: "contact_email", Label: "Contact Email", Kind: schema.KindText, Required: true},
						{ID: "contact_phone", Label: "Contact Phone", Kind: schema.KindText},
					},
				},
				{
					Title: "Client",
					Fields: []schema.Field{
						{ID: "client_name", Label: "Client Name", Kind: schema.KindText, Required: true},
						{ID: "client_company", Label: "Client Company", Kind: schema.KindText, Required: true},
					},
				},
				{
					Title: "Content",
					Fields: []schema.Field{
						{ID: "executive_summary", Label: "Executive Summary", Kind: schema.KindLongText, Required: true},
						{ID: "problem_statement", Label: "Problem Statement", Kind: schema.KindLongText, Required: true},
						{ID: "proposed_solution", Label: "Proposed Solution", Kind: schema.KindLongText, Required: true},
						{ID: "timeline", Label: "Timeline", Kind: schema.KindLongText, Required: true},
						{ID: "pricing", Label: "Pricing", Kind: schema.KindLongText, Required: true},
						{ID: "company_background", Label: "Company Background", Kind: schema.KindLongText},
						{ID: "relevant_experience", Label: "Relevant Experience", Kind: schema.KindLongText},
						{ID: "terms_conditions", Label: "Terms & Conditions", Kind: schema.KindLongText},
					},
				},
			},
		},
		template: "proposal.html",
		prepare:  prepareProposal,
	}
}

func prepareProposal(v params.Values) map[string]any {
	return map[string]any{
		"proposal_title":      v.String("proposal_title", "[PROPOSAL TITLE]"),
		"proposal_id":         v.String("proposal_id", ""),
		"proposal_date":       v.Date("proposal_date"),
		"valid_until":         v.Date("valid_until"),
		"company_name":        v.String("company_name", "[COMPANY NAME]"),
		"company_address":     v.String("company_address", ""),
		"company_website":     v.String("company_website", ""),
		"contact_name":        v.String("contact_name", "[CONTACT NAME]"),
		"contact_title":       v.String("contact_title", ""),
		"contact_email":       v.String("contact_email", ""),
		"contact_phone":       v.String("contact_phone", ""),
		"client_name":         v.String("client_name", "[CLIENT NAME]"),
		"client_company":      v.String("client_company", "[CLIENT COMPANY]"),
		"executive_summary":   v.String("executive_summary", "[EXECUTIVE SUMMARY]"),
		"problem_statement":   v.String("problem_statement", "[PROBLEM STATEMENT]"),
		"proposed_solution":   v.String("proposed_solution", "[PROPOSED SOLUTION]"),
		"timeline":            v.String("timeline", "[TIMELINE]"),
		"pricing":             v.String("pricing", "[PRICING]"),
		"company_background":  v.String("company_background", ""),
		"relevant_experience": v.String("relevant_experience", ""),
		"terms_conditions":    v.String("terms_conditions", ""),
	}
}
