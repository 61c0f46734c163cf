// =============================================================================
// 7 Aromas Production Planner - Scent Name Normalizer
// =============================================================================
//
// Variant/option cells arrive as free text mixing the scent name with
// packaging sizes, unit counts, and punctuation noise:
//
//   "Lavender (1 unit)"        -> "Lavender"
//   "Vanilla, 250ml"           -> "Vanilla"
//   "Cherry e Hazelnut 10 un"  -> "Cherry & Hazelnut"
//
// The normalizer strips everything that is not the scent so quantities for
// the same fragrance aggregate under one ledger key. Cleanup is idempotent:
// re-normalizing an already-clean name changes nothing.
//
// =============================================================================

package planner

import (
	"regexp"
	"strings"
)

// FallbackScent is used when the variant text is empty or dissolves entirely
// during cleanup.
const FallbackScent = "Default / Assorted"

// conjunctionPattern matches the standalone conjunction word "e" ("and" in
// the export's locale) so "Cherry e Hazelnut" becomes "Cherry & Hazelnut".
// Word boundaries rather than surrounding whitespace, so a run of
// conjunctions is consumed in one pass and cleanup stays idempotent.
var conjunctionPattern = regexp.MustCompile(`(?i)\be\b`)

// noisePatterns are applied in order, each erasing one kind of packaging or
// counting noise. Ordering matters: unit tokens must go before bare digits,
// otherwise "250ml" would leave a dangling "ml".
var noisePatterns = []*regexp.Regexp{
	// Unit-size parentheticals: "(1 unidade)", "(1 unit)", "(1 un)", "(1)".
	regexp.MustCompile(`(?i)\(1\s*(unidade|unit|un)?\)`),
	// Volume/count tokens following a number: "250ml", "1 L", "10 un",
	// "2 kits", "3 unidades", "1 Litro".
	regexp.MustCompile(`(?i)\b\d+\s?(ml|l|litro|litre|liter|un|unidades|units|unit|kits|kit)\b`),
	// Remaining digits and punctuation noise.
	regexp.MustCompile(`[0-9]`),
	regexp.MustCompile(`[,.+]`),
	// Parenthesis pairs left empty by the removals above.
	regexp.MustCompile(`\(\s*\)`),
}

// NormalizeScent reduces a raw variant string to a stable scent name.
// Returns FallbackScent when nothing human-readable survives.
func NormalizeScent(raw string) string {
	text := conjunctionPattern.ReplaceAllString(raw, "&")

	for _, pattern := range noisePatterns {
		text = pattern.ReplaceAllString(text, "")
	}

	text = strings.TrimSpace(text)

	// A stripped parenthetical can leave its closer behind, e.g.
	// "Lavender (10 units)" -> "Lavender )". Drop trailing closers that
	// have no opener left to match.
	for strings.HasSuffix(text, ")") && !strings.Contains(text, "(") {
		text = strings.TrimSpace(strings.TrimSuffix(text, ")"))
	}

	// Collapse runs of spaces left behind by the removals.
	for strings.Contains(text, "  ") {
		text = strings.ReplaceAll(text, "  ", " ")
	}
	text = strings.TrimSpace(text)

	if text == "" {
		return FallbackScent
	}
	return text
}
