package leave

// Keyword sets for the detection cascade. Order inside each set does not
// matter; the order of the rules that consult them does.

// vacationTitleKeywords trigger a high-confidence match on the title alone.
var vacationTitleKeywords = []string{
	"vacation",
	"pto",
	"paid time off",
	"annual leave",
}

// oooTitleKeywords cover explicit out-of-office titles.
var oooTitleKeywords = []string{
	"ooo",
	"out of office",
}

// medicalTitleKeywords cover sick days and appointments.
var medicalTitleKeywords = []string{
	"sick",
	"medical",
	"doctor",
}

// broadLeaveKeywords is the wider net applied to title and description
// together: vacation synonyms, OOO synonyms, leave types, and blocked-time
// phrases. Matches here are only medium confidence.
var broadLeaveKeywords = []string{
	// vacation synonyms
	"vacation", "vacay", "holiday", "holidays", "getaway", "time off", "day off",
	// out-of-office synonyms
	"ooo", "out of office", "away", "offline", "unreachable",
	// leave types
	"sick leave", "parental leave", "maternity", "paternity", "bereavement",
	"jury duty", "sabbatical", "leave of absence",
	// blocked-time phrases
	"do not book", "do not schedule", "no meetings", "unavailable", "blocked",
}

// travelPatternKeywords only count for all-day events, at low confidence.
var travelPatternKeywords = []string{
	"travel",
	"flight",
	"trip",
}

// blockedPatternKeywords only count for all-day events, at low confidence.
var blockedPatternKeywords = []string{
	"blocked",
	"unavailable",
}

// providerOOOTypes are provider-supplied event type values that declare an
// out-of-office block outright.
var providerOOOTypes = []string{
	"outofoffice",
	"out_of_office",
	"oof",
}
