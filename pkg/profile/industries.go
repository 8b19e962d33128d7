package profile

// Industries lists the industry choices offered during onboarding, in the
// order they are presented.
var Industries = []string{
	"Technology & Software",
	"Professional Services",
	"Healthcare",
	"Finance & Banking",
	"Real Estate",
	"Manufacturing",
	"Retail & E-commerce",
	"Education",
	"Construction",
	"Other",
}

// industryTraits carries the terminology and focus points woven into
// documents for one industry.
type industryTraits struct {
	// terms replace the generic placeholder term in document bodies,
	// one substitution per term.
	terms []string
	// focusPoints are appended as labelled paragraphs when the document
	// does not already mention them.
	focusPoints []string
}

var traitsByIndustry = map[string]industryTraits{
	"Technology & Software": {
		terms:       []string{"software deployment", "system integration", "technical onboarding"},
		focusPoints: []string{"data security", "intellectual property protection", "service availability"},
	},
	"Professional Services": {
		terms:       []string{"engagement delivery", "advisory work"},
		focusPoints: []string{"confidentiality of client records", "professional liability"},
	},
	"Healthcare": {
		terms:       []string{"care delivery", "clinical rollout"},
		focusPoints: []string{"patient privacy", "regulatory compliance"},
	},
	"Finance & Banking": {
		terms:       []string{"financial integration", "account migration"},
		focusPoints: []string{"regulatory compliance", "audit readiness", "data security"},
	},
	"Real Estate": {
		terms:       []string{"property transaction", "closing process"},
		focusPoints: []string{"title and escrow handling", "disclosure obligations"},
	},
	"Manufacturing": {
		terms:       []string{"production rollout", "supply integration"},
		focusPoints: []string{"quality assurance", "delivery schedules"},
	},
	"Retail & E-commerce": {
		terms:       []string{"storefront launch", "fulfillment integration"},
		focusPoints: []string{"customer data handling", "return policies"},
	},
	"Education": {
		terms:       []string{"program delivery", "curriculum rollout"},
		focusPoints: []string{"student data privacy", "accessibility"},
	},
	"Construction": {
		terms:       []string{"site work", "build-out"},
		focusPoints: []string{"safety compliance", "permitting and inspections"},
	},
}

// traitsFor returns the customization traits for an industry. Industries
// without dedicated traits (including "Other") get the zero value.
func traitsFor(industry string) (industryTraits, bool) {
	t, ok := traitsByIndustry[industry]
	return t, ok
}
