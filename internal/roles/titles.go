package roles

import "github.com/nick0a/founderbleed-sub001/internal/model"

// ConsolidatedArea is the business area assigned to roles built from
// below-threshold clusters of the same tier.
const ConsolidatedArea = "Consolidated"

// titleKey addresses the role-title lookup table.
type titleKey struct {
	tier     model.Tier
	vertical model.Vertical
	area     string
}

// roleTitles maps (tier, vertical, business area) to a concrete job title.
// Unlisted combinations fall back per tier and vertical.
var roleTitles = map[titleKey]string{
	{model.TierSenior, model.VerticalEngineering, "Development"}:    "Senior Developer",
	{model.TierSenior, model.VerticalEngineering, "Design"}:         "Senior Product Designer",
	{model.TierSenior, model.VerticalEngineering, "Data/Analytics"}: "Senior Data Analyst",

	{model.TierSenior, model.VerticalBusiness, "Sales"}:            "Senior Sales Manager",
	{model.TierSenior, model.VerticalBusiness, "Marketing"}:        "Senior Marketing Manager",
	{model.TierSenior, model.VerticalBusiness, "Product"}:          "Senior Product Manager",
	{model.TierSenior, model.VerticalBusiness, "Finance"}:          "Finance Manager",
	{model.TierSenior, model.VerticalBusiness, "Legal"}:            "Legal Counsel",
	{model.TierSenior, model.VerticalBusiness, "People"}:           "Senior Recruiter",
	{model.TierSenior, model.VerticalBusiness, "Customer Success"}: "Senior Customer Success Manager",
	{model.TierSenior, model.VerticalBusiness, "Fundraising"}:      "Chief of Staff",
	{model.TierSenior, model.VerticalBusiness, "Operations"}:       "Senior Operations Manager",

	{model.TierJunior, model.VerticalEngineering, "Development"}:    "Junior Developer",
	{model.TierJunior, model.VerticalEngineering, "Design"}:         "Junior Designer",
	{model.TierJunior, model.VerticalEngineering, "Data/Analytics"}: "Junior Data Analyst",

	{model.TierJunior, model.VerticalBusiness, "Sales"}:            "Sales Development Representative",
	{model.TierJunior, model.VerticalBusiness, "Marketing"}:        "Marketing Associate",
	{model.TierJunior, model.VerticalBusiness, "Customer Success"}: "Customer Support Associate",
	{model.TierJunior, model.VerticalBusiness, "Operations"}:       "Operations Associate",
}

// Tier-level fallback titles for areas without a dedicated entry, including
// consolidated clusters.
var fallbackTitles = map[titleKey]string{
	{tier: model.TierSenior, vertical: model.VerticalEngineering}: "Senior Engineer",
	{tier: model.TierSenior, vertical: model.VerticalBusiness}:    "Senior Generalist",
	{tier: model.TierJunior, vertical: model.VerticalEngineering}: "Junior Engineer",
	{tier: model.TierJunior, vertical: model.VerticalBusiness}:    "Junior Generalist",
}

// titleFor resolves the job title for a role. The EA tier always hires an
// executive assistant regardless of area or vertical.
func titleFor(tier model.Tier, vertical model.Vertical, area string) string {
	if tier == model.TierEA {
		return "Executive Assistant"
	}

	if title, ok := roleTitles[titleKey{tier, vertical, area}]; ok {
		return title
	}
	if title, ok := fallbackTitles[titleKey{tier: tier, vertical: vertical}]; ok {
		return title
	}
	return "Senior Generalist"
}
