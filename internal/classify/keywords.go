package classify

import "github.com/nick0a/founderbleed-sub001/internal/model"

// areaKeywords pairs a business area with its trigger keywords. The area
// table is scanned in declared order and the first matching area wins, so
// more specific areas must appear before catch-all ones.
type areaKeywords struct {
	area     string
	keywords []string
}

// businessAreas is the fixed business-area taxonomy. Order is load-bearing.
var businessAreas = []areaKeywords{
	{"Sales", []string{
		"sales", "demo", "prospect", "pipeline", "deal", "crm", "quota",
		"cold call", "outreach", "discovery call",
	}},
	{"Marketing", []string{
		"marketing", "campaign", "seo", "content", "newsletter", "social media",
		"brand", "webinar", "launch post",
	}},
	{"Development", []string{
		"code", "coding", "bug", "deploy", "deployment", "engineering", "sprint",
		"standup", "api", "backend", "frontend", "pull request", "code review",
		"release", "debugging", "infra", "incident",
	}},
	{"Design", []string{
		"design", "figma", "mockup", "wireframe", "prototype", "ux",
	}},
	{"Data/Analytics", []string{
		"analytics", "dashboard", "metrics", "data", "sql", "experiment",
		"a/b test", "reporting",
	}},
	{"Product", []string{
		"product", "roadmap", "feature", "spec", "user research", "backlog",
		"prioritization",
	}},
	{"Finance", []string{
		"finance", "budget", "invoice", "payroll", "accounting", "bookkeeping",
		"tax", "runway", "expenses",
	}},
	{"Legal", []string{
		"legal", "contract", "nda", "compliance", "terms of service",
	}},
	{"People", []string{
		"hiring", "interview", "recruiting", "onboarding", "candidate",
		"performance review", "offer", "1:1",
	}},
	{"Customer Success", []string{
		"customer", "support", "success call", "churn", "ticket", "escalation",
		"renewal",
	}},
	{"Fundraising", []string{
		"investor", "fundraise", "fundraising", "pitch", "term sheet",
		"due diligence", "cap table", "board deck",
	}},
}

// engineeringAreas decides the vertical: areas here are engineering, all
// others are business.
var engineeringAreas = map[string]bool{
	"Development":    true,
	"Design":         true,
	"Data/Analytics": true,
}

// tierKeywords pairs a delegation tier with its trigger keywords.
type tierKeywords struct {
	tier     model.Tier
	keywords []string
}

// tierScan is the fixed tier keyword table. The scan does NOT stop at the
// first match: every matching tier overwrites the running value, so the last
// matching tier in this order wins.
var tierScan = []tierKeywords{
	{model.TierUnique, []string{
		"board meeting", "vision", "company strategy", "keynote", "all-hands",
		"cofounder", "acquisition",
	}},
	{model.TierFounder, []string{
		"investor", "pitch", "fundraising", "partnership", "press", "hiring decision",
		"founder",
	}},
	{model.TierSenior, []string{
		"architecture", "roadmap", "negotiation", "planning", "strategy review",
		"design review", "postmortem",
	}},
	{model.TierJunior, []string{
		"bug fix", "data entry", "qa", "testing", "documentation", "research",
		"follow up", "triage",
	}},
	{model.TierEA, []string{
		"scheduling", "calendar", "travel booking", "book flight", "inbox",
		"email triage", "expense report", "errand",
	}},
}

// Event category keyword sets. Travel is checked first, then exercise, then
// leisure; work is the default.
var (
	travelKeywords = []string{
		"travel", "flight", "airport", "train", "commute", "drive to", "hotel",
	}
	exerciseKeywords = []string{
		"gym", "workout", "morning run", "yoga", "exercise", "swim", "climbing",
		"pilates",
	}
	leisureKeywords = []string{
		"lunch", "dinner", "coffee", "birthday", "party", "movie", "concert",
		"drinks", "date night", "hangout",
	}
)
