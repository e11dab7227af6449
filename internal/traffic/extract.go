package traffic

import (
	"regexp"
	"strings"
)

// StreetExtractor pulls a candidate street name out of one turn-by-turn
// instruction. Extraction is best effort: instructions without a directional
// verb phrase ("Head south") yield no candidate and the step simply stays
// unmatched. The interface exists so matching rules can be swapped and
// tested independently of the aggregation math.
type StreetExtractor interface {
	ExtractStreet(instruction string) (string, bool)
}

// RegexExtractor is the default extractor: a fixed, ordered set of verb
// patterns ("Turn ... onto X", "Continue on X", ...). First match wins.
type RegexExtractor struct{}

var streetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bonto\s+(.+)$`),
	regexp.MustCompile(`(?i)\bcontinue\s+on\s+(.+)$`),
	regexp.MustCompile(`(?i)\bturn\s+(?:left|right)\s+on\s+(.+)$`),
	regexp.MustCompile(`(?i)\bhead\s+(?:north|south|east|west|northeast|northwest|southeast|southwest)\s+on\s+(.+)$`),
}

// Trailing clauses that describe where the road leads rather than what it
// is called.
var clauseMarkers = []string{",", " toward ", " towards ", " to stay ", " at "}

func (RegexExtractor) ExtractStreet(instruction string) (string, bool) {
	text := strings.TrimSpace(instruction)
	if text == "" {
		return "", false
	}

	for _, re := range streetPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if candidate := trimClause(m[1]); candidate != "" {
			return candidate, true
		}
	}

	return "", false
}

func trimClause(s string) string {
	cut := len(s)
	lower := strings.ToLower(s)
	for _, marker := range clauseMarkers {
		if i := strings.Index(lower, marker); i >= 0 && i < cut {
			cut = i
		}
	}

	return strings.TrimSpace(strings.Trim(s[:cut], ".,;"))
}
