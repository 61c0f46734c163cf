// =============================================================================
// 7 Aromas Production Planner - Expansion Rules
// =============================================================================
//
// A few listings hide several scents behind one order line. Expansion turns
// one line into the scent-level entries the production sheet needs. Two
// special cases precede the general rule and are mutually exclusive with it:
//
//   - Fixed 3-scent jar bundle: the "V100-CFB" listing ships one jar each of
//     Cherry & Hazelnut, Cherry Blossom, and Sea Breeze. Each scent is
//     credited the RAW ordered quantity: the listing's quantity counts
//     bundles and each bundle holds one jar per scent. Packaging gets three
//     jars per bundle.
//
//   - Assorted foot soak: the "assorted" variant splits the physical units
//     evenly across the three stock scents. Thirds are expected; the sheet
//     prints them with one decimal.
//
//   - General: the variant text normalizes to a single scent credited the
//     full physical-unit quantity.
//
// Packaging always receives the physical unit count regardless of how the
// scent credits were split, so stock picking stays consistent.
//
// =============================================================================

package planner

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Expansion is the result of applying expansion rules to one row.
type Expansion struct {
	// Items are the scent-level production credits.
	Items []ExpansionItem

	// PackagingUnits is the unit count credited to the row's packaging
	// type and to material estimates.
	PackagingUnits decimal.Decimal
}

// jarBundleScents are the fixed contents of the 3-scent jar bundle.
var jarBundleScents = []string{"Cherry & Hazelnut", "Cherry Blossom", "Sea Breeze"}

// footSoakScents are the stock scents an assorted foot-soak order splits into.
var footSoakScents = []string{"Lavender", "Rosemary", "Chamomile"}

// assortedMarkers flag an assorted/mixed variant in either export locale.
var assortedMarkers = []string{"ASSORTED", "MIXED", "VARIADO", "SORTIDO"}

var three = decimal.NewFromInt(3)

// Expand applies the expansion rules to one classified row. rawQty is the
// ordered quantity before the multiplier; physicalQty is rawQty scaled by
// the bundle multiplier.
func Expand(line OrderLine, class Classification, rawQty, physicalQty decimal.Decimal) Expansion {
	sku := strings.ToUpper(line.SKU)
	variant := strings.ToUpper(line.Variant)

	switch {
	case isJarBundle(sku, variant):
		items := make([]ExpansionItem, len(jarBundleScents))
		for i, scent := range jarBundleScents {
			items[i] = ExpansionItem{Scent: scent, Quantity: rawQty}
		}
		return Expansion{Items: items, PackagingUnits: rawQty.Mul(three)}

	case class.Category == CategoryFootSoak && containsAny(variant, assortedMarkers):
		split := physicalQty.Div(three)
		items := make([]ExpansionItem, len(footSoakScents))
		for i, scent := range footSoakScents {
			items[i] = ExpansionItem{Scent: scent, Quantity: split}
		}
		return Expansion{Items: items, PackagingUnits: physicalQty}

	default:
		return Expansion{
			Items:          []ExpansionItem{{Scent: NormalizeScent(line.Variant), Quantity: physicalQty}},
			PackagingUnits: physicalQty,
		}
	}
}

// isJarBundle detects the fixed 3-scent jar bundle, either by its dedicated
// SKU or by a jar SKU whose variant names all three scents.
func isJarBundle(sku, variant string) bool {
	if strings.Contains(sku, "V100-CFB") {
		return true
	}
	return strings.Contains(sku, "V100") && strings.Contains(variant, "CERJ/FLOR/BRISA")
}
