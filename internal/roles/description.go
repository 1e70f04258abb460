package roles

import (
	"fmt"
	"strings"

	"github.com/nick0a/founderbleed-sub001/internal/model"
)

// descriptionProfile holds the template fragments for one kind of role.
type descriptionProfile struct {
	candidate        string
	responsibilities []string
	skills           []string
}

// profilesByTitle carries hand-tuned copy for the most common titles.
var profilesByTitle = map[string]descriptionProfile{
	"Senior Developer": {
		responsibilities: []string{
			"Own features end to end, from design through deployment",
			"Review code and raise the engineering bar across the team",
			"Unblock technical decisions without founder involvement",
		},
		skills: []string{
			"5+ years of professional software development",
			"Comfort owning production systems independently",
			"Clear written communication for async work",
		},
		candidate: "A self-directed engineer who turns ambiguous product goals into shipped software and only escalates genuinely strategic decisions.",
	},
	"Executive Assistant": {
		responsibilities: []string{
			"Own the founder's calendar, scheduling, and inbox triage",
			"Book travel and handle logistics ahead of deadlines",
			"Prepare briefs so every meeting starts with context",
		},
		skills: []string{
			"2+ years supporting an executive or founder",
			"Ruthless prioritization and discretion",
			"Fluency with calendar and travel tooling",
		},
		candidate: "A proactive operator who removes whole categories of administrative work before the founder notices them.",
	},
	"Senior Sales Manager": {
		responsibilities: []string{
			"Run discovery calls, demos, and deal negotiations",
			"Own the pipeline from qualified lead to close",
			"Report on conversion and forecast revenue",
		},
		skills: []string{
			"Proven quota attainment in an early-stage company",
			"Consultative selling into founder-led accounts",
			"CRM hygiene that survives an audit",
		},
		candidate: "A closer who can take founder-led sales motions and make them repeatable without losing the personal touch.",
	},
}

// profilesByVertical backs titles without dedicated copy.
var profilesByVertical = map[model.Vertical]descriptionProfile{
	model.VerticalEngineering: {
		responsibilities: []string{
			"Deliver well-scoped technical work with minimal supervision",
			"Keep the founder out of routine engineering decisions",
			"Document what you build so others can pick it up",
		},
		skills: []string{
			"Solid professional engineering experience",
			"Bias toward shipping and measuring",
		},
		candidate: "A hands-on builder who communicates clearly and works well from a prioritized backlog.",
	},
	model.VerticalBusiness: {
		responsibilities: []string{
			"Take over recurring business workstreams currently on the founder's calendar",
			"Run meetings end to end and report outcomes concisely",
			"Spot and fix process gaps without being asked",
		},
		skills: []string{
			"Experience operating independently in a small company",
			"Strong written and verbal communication",
		},
		candidate: "A generalist operator who is comfortable owning outcomes, not just tasks.",
	},
}

// defaultProfile is the last-resort template.
var defaultProfile = descriptionProfile{
	responsibilities: []string{
		"Absorb the recurring work currently consuming founder hours",
		"Operate independently from a weekly priority list",
	},
	skills: []string{
		"Demonstrated ownership of comparable work",
		"Comfort with ambiguity in an early-stage company",
	},
	candidate: "A dependable self-starter who frees up founder time week after week.",
}

// buildDescription renders the job-description markdown for a role. The
// output is final copy, ready to display or export verbatim.
func buildDescription(role *model.RoleRecommendation) string {
	profile := profileFor(role)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", role.RoleTitle)
	fmt.Fprintf(&b, "Part-time to start at roughly %d hours/week, focused on %s work currently handled by the founder. Estimated cost: $%.0f/month.\n\n",
		role.HoursPerWeek, strings.ToLower(role.BusinessArea), role.CostMonthly)

	b.WriteString("## Responsibilities\n")
	for _, r := range profile.responsibilities {
		b.WriteString("- " + r + "\n")
	}

	b.WriteString("\n## Required Skills\n")
	for _, s := range profile.skills {
		b.WriteString("- " + s + "\n")
	}

	b.WriteString("\n## Ideal Candidate\n")
	b.WriteString(profile.candidate + "\n")

	if len(role.Tasks) > 0 {
		b.WriteString("\n## Example Work from the Calendar\n")
		for _, task := range role.Tasks {
			fmt.Fprintf(&b, "- %s (%.1f h/week)\n", task.Title, task.HoursPerWeek)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// profileFor picks template copy by title first, vertical second, then the
// default.
func profileFor(role *model.RoleRecommendation) descriptionProfile {
	if profile, ok := profilesByTitle[role.RoleTitle]; ok {
		return profile
	}
	if role.Vertical != nil {
		if profile, ok := profilesByVertical[*role.Vertical]; ok {
			return profile
		}
	}
	return defaultProfile
}
