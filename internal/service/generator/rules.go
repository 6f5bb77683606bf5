package generator

import (
	"strings"

	domainagent "github.com/alanyang/agent-catalog/internal/domain/agent"
)

// modelRule assigns a model tier when the subcategory name contains any of
// the keywords. Rules are evaluated top to bottom, first match wins —
// reordering them changes generated output.
type modelRule struct {
	keywords []string
	model    domainagent.Model
}

var modelRules = []modelRule{
	{keywords: []string{"Analysis", "Strategy", "Advisory"}, model: domainagent.ModelAdvanced},
	{keywords: []string{"Support", "Scheduling", "Tracking"}, model: domainagent.ModelBasic},
	{keywords: []string{"Management", "Planning"}, model: domainagent.ModelStandard},
}

// ModelFor classifies a subcategory name into a model tier.
// Subcategories matching no rule get the standard tier.
func ModelFor(subcategory string) domainagent.Model {
	for _, r := range modelRules {
		for _, kw := range r.keywords {
			if strings.Contains(subcategory, kw) {
				return r.model
			}
		}
	}
	return domainagent.ModelStandard
}

// capabilityRule assigns a capability set by subcategory keyword.
// Same first-match-wins contract as modelRules; the two classifiers are
// independent and keyed differently on purpose.
type capabilityRule struct {
	keyword      string
	capabilities []string
}

var capabilityRules = []capabilityRule{
	{keyword: "Analysis", capabilities: []string{"data_analysis", "reporting", "insights"}},
	{keyword: "Management", capabilities: []string{"coordination", "tracking", "optimization"}},
	{keyword: "Support", capabilities: []string{"assistance", "troubleshooting", "guidance"}},
	{keyword: "Planning", capabilities: []string{"forecasting", "scheduling", "resource_allocation"}},
	{keyword: "Monitoring", capabilities: []string{"tracking", "alerting", "diagnostics"}},
}

var defaultCapabilities = []string{"automation", "processing", "coordination"}

// CapabilitiesFor classifies a subcategory name into its capability tags.
// The returned slice is freshly allocated; callers may keep it.
func CapabilitiesFor(subcategory string) []string {
	for _, r := range capabilityRules {
		if strings.Contains(subcategory, r.keyword) {
			return append([]string(nil), r.capabilities...)
		}
	}
	return append([]string(nil), defaultCapabilities...)
}
