package doctypes

import (
	"github.com/radhagarine/docgenius/pkg/params"
	"github.com/radhagarine/docgenius/pkg/schema"
)

func scopeOfWorkDefinition() definition {
	return definition{
		typeID:      TypeScopeOfWork,
		displayName: "Scope of Work",
		description: "Scope of work detailing deliverables, schedule, payment, and acceptance criteria",
		baseCredits: 10,
		schema: schema.Schema{
			TypeID:      TypeScopeOfWork,
			DisplayName: "Scope of Work",
			Sections: []schema.Section{
				{
					Title: "Project",
					Fields: []schema.Field{
						{ID: "project_title", Label: "Project Title", Kind: schema.KindText, Required: true},
						{ID: "project_number", Label: "Project Number", Kind: schema.KindText},
						{ID: "effective_date", Label: "Effective Date", Kind: schema.KindDate, Required: true},
					},
				},
				{
					Title: "Parties",
					Fields: []schema.Field{
						{ID: "provider_name", Label: "Service Provider", Kind: schema.KindText, Required: true},
						{ID: "provider_address", Label: "Provider Address", Kind: schema.KindLongText},
						{ID: "client_name", Label: "Client", Kind: schema.KindText, Required: true},
						{ID: "client_address", Label: "Client Address", Kind: schema.KindLongText},
					},
				},
				{
					Title: "Scope",
					Fields: []schema.Field{
						{ID: "project_overview", Label: "Project Overview", Kind: schema.KindLongText, Required: true},
						{ID: "objectives", Label: "Objectives", Kind: schema.KindLongText, Required: true},
						{ID: "included_work", Label: "Work Included", Kind: schema.KindLongText, Required: true},
						{ID: "excluded_work", Label: "Work Excluded", Kind: schema.KindLongText},
						{ID: "deliverables", Label: "Deliverables", Kind: schema.KindLongText, Required: true},
						{ID: "deliverable_format", Label: "Deliverable Format", Kind: schema.KindText},
					},
				},
				{
					Title: "Schedule & Payment",
					Fields: []schema.Field{
						{ID: "start_date", Label: "Start Date", Kind: schema.KindDate, Required: true},
						{ID: "end_date", Label: "End Date", Kind: schema.KindDate, Required: true},
						{ID: "milestones", Label: "Milestones", Kind: schema.KindLongText},
						{ID: "payment_amount", Label: "Payment Amount", Kind: schema.KindText, Required: true},
						{ID: "payment_schedule", Label: "Payment Schedule", Kind: schema.KindLongText, Required: true},
						{ID: "expenses", Label: "Expenses", Kind: schema.KindLongText},
					},
				},
				{
					Title: "Terms",
					Fields: []schema.Field{
						{ID: "acceptance_criteria", Label: "Acceptance Criteria", Kind: schema.KindLongText, Required: true},
						{ID: "responsibilities", Label: "Client Responsibilities", Kind: schema.KindLongText},
						{ID: "assumptions", Label: "Assumptions", Kind: schema.KindLongText},
						{ID: "change_process", Label: "Change Process", Kind: schema.KindLongText,
							Default: defaultChangeProcess},
						{ID: "termination", Label: "Termination", Kind: schema.KindLongText},
					},
				},
			},
		},
		template: "scope_of_work.html",
		prepare:  prepareScopeOfWork,
	}
}

const defaultChangeProcess = "Any change to this Scope of Work must be requested in writing. " +
	"The Service Provider will assess the impact of the requested change on schedule and cost " +
	"and provide a written change order for the Client's approval before any additional work begins."

func prepareScopeOfWork(v params.Values) map[string]any {
	return map[string]any{
		"project_title":       v.String("project_title", "[PROJECT TITLE]"),
		"project_number":      v.String("project_number", ""),
		"effective_date":      v.Date("effective_date"),
		"provider_name":       v.String("provider_name", "[SERVICE PROVIDER]"),
		"provider_address":    v.String("provider_address", ""),
		"client_name":         v.String("client_name", "[CLIENT]"),
		"client_address":      v.String("client_address", ""),
		"project_overview":    v.String("project_overview", "[PROJECT OVERVIEW]"),
		"objectives":          v.String("objectives", "[OBJECTIVES]"),
		"included_work":       v.String("included_work", "[WORK INCLUDED]"),
		"excluded_work":       v.String("excluded_work", ""),
		"deliverables":        v.String("deliverables", "[DELIVERABLES]"),
		"deliverable_format":  v.String("deliverable_format", ""),
		"start_date":          v.Date("start_date"),
		"end_date":            v.Date("end_date"),
		"milestones":          v.String("milestones", ""),
		"payment_amount":      v.String("payment_amount", "[PAYMENT AMOUNT]"),
		"payment_schedule":    v.String("payment_schedule", "[PAYMENT SCHEDULE]"),
		"expenses":            v.String("expenses", ""),
		"acceptance_criteria": v.String("acceptance_criteria", "[ACCEPTANCE CRITERIA]"),
		"responsibilities":    v.String("responsibilities", ""),
		"assumptions":         v.String("assumptions", ""),
		"change_process":      v.String("change_process", defaultChangeProcess),
		"termination":         v.String("termination", ""),
	}
}
