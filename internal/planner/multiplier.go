// =============================================================================
// 7 Aromas Production Planner - Bundle Multiplier Resolver
// =============================================================================
//
// Many listings sell bundles: "Mini Candle Kit 4", "Home Spray 2un",
// "10 un". The ordered quantity on such a row counts bundles, not physical
// units, so a multiplier scales it into the unit count used for packaging
// and material accounting.
//
// Signals are evaluated in strict priority order and the first match wins.
// Explicit unit-count patterns ("20 UN") outrank kit codes, so a row
// carrying both "10 UN" and "KIT 3" resolves to 10.
//
// =============================================================================

package planner

import (
	"regexp"
	"strings"
)

// Unit-count patterns. The export writes both "10un" and "10 un".
var (
	units20Pattern = regexp.MustCompile(`20\s?UN`)
	units10Pattern = regexp.MustCompile(`10\s?UN`)
	units5Pattern  = regexp.MustCompile(`5\s?UN`)
	units2Pattern  = regexp.MustCompile(`2\s?UN`)
)

// ResolveMultiplier inspects the combined uppercase row text (and the SKU on
// its own for kit codes) and returns the bundle multiplier. category is the
// already-classified category label, needed because the "2 un" signal only
// applies to home sprays.
func ResolveMultiplier(sku, text, category string) int {
	switch {
	case units20Pattern.MatchString(text):
		return 20
	case units10Pattern.MatchString(text):
		return 10
	case units5Pattern.MatchString(text):
		return 5
	case strings.Contains(sku, "MVK") || strings.Contains(text, "KIT 4"):
		// Mini-candle kit of 4; a "2 KIT" marker doubles it.
		if strings.Contains(text, "2 KIT") {
			return 8
		}
		return 4
	case strings.Contains(sku, "KIT 3"):
		return 3
	case strings.HasPrefix(category, CategorySprayPrefix) && units2Pattern.MatchString(text):
		return 2
	default:
		return 1
	}
}
