// Package credits prices document generation for the freemium plans.
package credits

import (
	"strings"

	"github.com/radhagarine/docgenius/pkg/registry"
)

// Subscription plans.
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// FreeDocumentsPerMonth is the free plan's monthly allowance.
const FreeDocumentsPerMonth = 3

// defaultBaseCredits prices document types the registry does not know.
const defaultBaseCredits = 5

// Surcharge thresholds: documents over surchargeFloor words cost one extra
// credit per surchargeStep words.
const (
	surchargeFloor = 500
	surchargeStep  = 250
)

// WordCount counts whitespace-separated words in rendered content. Markup is
// counted as written; pricing only needs a rough size signal.
func WordCount(content string) int {
	return len(strings.Fields(content))
}

// Cost computes the credit price for a document with the given base price
// and word count.
func Cost(baseCredits, wordCount int) int {
	cost := baseCredits
	if extra := (wordCount - surchargeFloor) / surchargeStep; extra > 0 {
		cost += extra
	}
	return cost
}

// RequiredFor prices a generated document of the given type. Unknown types
// fall back to the default base price.
func RequiredFor(reg *registry.Registry, typeID, content string) int {
	base := defaultBaseCredits
	if reg != nil {
		if tpl, err := reg.Get(typeID); err == nil && tpl.BaseCredits > 0 {
			base = tpl.BaseCredits
		}
	}
	return Cost(base, WordCount(content))
}

// CanCreate reports whether a user may generate another document this month.
// The returned message is empty when creation is allowed.
func CanCreate(plan string, freeDocsUsed int) (bool, string) {
	if plan == PlanPro {
		return true, ""
	}
	if freeDocsUsed < FreeDocumentsPerMonth {
		return true, ""
	}
	return false, "You've reached your free document limit for this month. Purchase this document or upgrade to Pro."
}
