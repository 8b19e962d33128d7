package doctypes

import (
	"github.com/radhagarine/docgenius/pkg/params"
	"github.com/radhagarine/docgenius/pkg/schema"
)

const defaultConfidentialInfo = "Any information disclosed by Disclosing Party to Receiving Party, either directly or indirectly, in writing, orally or by any other means, that is designated as confidential or that reasonably should be understood to be confidential given the nature of the information and the circumstances of disclosure."

var entityTypes = []string{"Individual", "Corporation", "Limited Liability Company", "Partnership", "Other"}

func ndaDefinition() definition {
	return definition{
		typeID:      TypeNDA,
		displayName: "Non-Disclosure Agreement",
		description: "A legal contract that establishes a confidential relationship between parties. Used when sensitive information needs to be shared but protected from others.",
		baseCredits: 5,
		template:    "nda.html",
		schema: schema.Schema{
			TypeID:      TypeNDA,
			DisplayName: "Non-Disclosure Agreement",
			Sections: []schema.Section{
				{
					Title: "General Information",
					Fields: []schema.Field{
						{ID: "agreement_date", Label: "Agreement Date", Kind: schema.KindDate, Required: true, Help: "Date when this NDA goes into effect"},
						{ID: "expiration_date", Label: "Expiration Date (Optional)", Kind: schema.KindDate, Help: "Date when this NDA expires (leave blank for no expiration)"},
					},
				},
				{
					Title: "First Party (Disclosing Party)",
					Fields: []schema.Field{
						{ID: "party1_name", Label: "Name", Kind: schema.KindText, Required: true, Help: "Full legal name of the disclosing party (individual or company)"},
						{ID: "party1_address", Label: "Address", Kind: schema.KindLongText, Required: true, Help: "Full address of the disclosing party"},
						{ID: "party1_type", Label: "Entity Type", Kind: schema.KindSelect, Options: entityTypes, Required: true, Help: "Legal classification of the disclosing party"},
						{ID: "party1_state", Label: "State of Incorporation/Residence", Kind: schema.KindText, Required: true, Help: "State where the disclosing party is incorporated or resides"},
					},
				},
				{
					Title: "Second Party (Receiving Party)",
					Fields: []schema.Field{
						{ID: "party2_name", Label: "Name", Kind: schema.KindText, Required: true, Help: "Full legal name of the receiving party (individual or company)"},
						{ID: "party2_address", Label: "Address", Kind: schema.KindLongText, Required: true, Help: "Full address of the receiving party"},
						{ID: "party2_type", Label: "Entity Type", Kind: schema.KindSelect, Options: entityTypes, Required: true, Help: "Legal classification of the receiving party"},
						{ID: "party2_state", Label: "State of Incorporation/Residence", Kind: schema.KindText, Required: true, Help: "State where the receiving party is incorporated or resides"},
					},
				},
				{
					Title: "Agreement Details",
					Fields: []schema.Field{
						{ID: "purpose", Label: "Purpose of Disclosure", Kind: schema.KindLongText, Required: true, Help: "Describe why confidential information is being shared"},
						{ID: "confidential_info_definition", Label: "Definition of Confidential Information", Kind: schema.KindLongText, Required: true, Default: defaultConfidentialInfo, Help: "Define what constitutes confidential information under this agreement"},
						{ID: "governing_law", Label: "Governing Law (State)", Kind: schema.KindText, Required: true, Help: "State whose laws will govern this agreement"},
						{ID: "term_years", Label: "Confidentiality Term (Years)", Kind: schema.KindNumber, Required: true, Default: 3, Help: "Number of years the confidentiality obligations will remain in effect"},
					},
				},
			},
		},
		prepare: func(v params.Values) map[string]any {
			return map[string]any{
				"agreement_date":    v.Date("agreement_date"),
				"expiration_date":   v.Date("expiration_date"),
				"party1_name":       v.String("party1_name", "[DISCLOSING PARTY NAME]"),
				"party1_address":    v.String("party1_address", "[DISCLOSING PARTY ADDRESS]"),
				"party1_type":       v.String("party1_type", "Corporation"),
				"party1_state":      v.String("party1_state", "[STATE]"),
				"party2_name":       v.String("party2_name", "[RECEIVING PARTY NAME]"),
				"party2_address":    v.String("party2_address", "[RECEIVING PARTY ADDRESS]"),
				"party2_type":       v.String("party2_type", "Corporation"),
				"party2_state":      v.String("party2_state", "[STATE]"),
				"purpose":           v.String("purpose", "[PURPOSE OF DISCLOSURE]"),
				"confidential_info": v.String("confidential_info_definition", defaultConfidentialInfo),
				"governing_law":     v.String("governing_law", "[STATE]"),
				"term_years":        v.String("term_years", "3"),
			}
		},
	}
}
