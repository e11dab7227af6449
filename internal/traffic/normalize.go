package traffic

import (
	"strings"
	"unicode"
)

// Directional tokens dropped from the head and tail of a street name so that
// "N Main St" and "Main St North" key identically.
var directionals = map[string]struct{}{
	"n": {}, "s": {}, "e": {}, "w": {},
	"ne": {}, "nw": {}, "se": {}, "sw": {},
	"north": {}, "south": {}, "east": {}, "west": {},
	"northeast": {}, "northwest": {}, "southeast": {}, "southwest": {},
}

// Fixed abbreviation-expansion table for street-type suffixes. Expansion is
// one-way (short form -> long form) and applied to every token, which keeps
// the rewrite deterministic regardless of where the suffix appears.
var suffixExpansions = map[string]string{
	"st":   "street",
	"ave":  "avenue",
	"av":   "avenue",
	"blvd": "boulevard",
	"rd":   "road",
	"dr":   "drive",
	"hwy":  "highway",
	"fwy":  "freeway",
	"expy": "expressway",
	"pkwy": "parkway",
	"ln":   "lane",
	"ct":   "court",
	"pl":   "place",
	"ter":  "terrace",
	"cir":  "circle",
}

// NormalizeStreet canonicalizes a street name for reference-store keys:
// case-fold, strip punctuation, collapse whitespace, drop directional
// prefixes/suffixes, expand street-type abbreviations. The same rewrite is
// applied at dataset load and at lookup, so matching stays exact-match and
// auditable rather than fuzzy.
func NormalizeStreet(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '-' {
			b.WriteRune(r)
		}
	}

	tokens := strings.Fields(b.String())

	// Keep at least one token so purely directional names ("North") survive.
	if len(tokens) > 1 {
		if _, ok := directionals[tokens[0]]; ok {
			tokens = tokens[1:]
		}
	}
	if len(tokens) > 1 {
		if _, ok := directionals[tokens[len(tokens)-1]]; ok {
			tokens = tokens[:len(tokens)-1]
		}
	}

	for i, t := range tokens {
		if long, ok := suffixExpansions[t]; ok {
			tokens[i] = long
		}
	}

	return strings.Join(tokens, " ")
}
