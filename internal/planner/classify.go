// =============================================================================
// 7 Aromas Production Planner - Product Classifier
// =============================================================================
//
// The classifier maps one row's combined SKU/name/variant text to a product
// category, a card color, a packaging type, and a reference unit weight.
//
// It is a strict ordered decision list: rules are evaluated top to bottom
// and the first match wins, with no fall-through. The rules live in a data
// table of (predicate, classification) tuples so each rule can be tested on
// its own and new product families slot in without touching control flow.
//
// A row matching nothing files under "Uncategorized / Other" rather than
// being dropped: every unit the business sold must survive into the report.
//
// =============================================================================

package planner

import "strings"

// =============================================================================
// CATEGORY LABELS
// =============================================================================

// Category labels double as display grouping keys; sorting them yields the
// worksheet card order.
const (
	CategoryMiniCandles  = "Mini Candles"
	CategoryJarCandles   = "Jarred Candles (100g)"
	CategoryFootSoak     = "Foot Soak"
	CategorySprayPrefix  = "Home Spray — "
	CategorySprayDefault = CategorySprayPrefix + "Standard"
	CategoryOther        = "Uncategorized / Other"
)

// Reference unit wax weights per weight class, in grams. Categories outside
// these two classes carry no wax and contribute nothing to material
// estimates.
const (
	miniCandleWeightGrams = 30
	jarCandleWeightGrams  = 100
)

// =============================================================================
// RULE TABLE
// =============================================================================

// rulePredicate decides whether a rule applies to a row. All three inputs
// are uppercase; text is the concatenation "SKU NAME VARIANT".
type rulePredicate func(sku, name, text string) bool

// classifierRule pairs a predicate with the classification it produces.
type classifierRule struct {
	applies rulePredicate
	result  Classification
}

// classifierRules is the ordered decision list. Mini candles and jarred
// candles are keyed on SKU prefixes with name markers as fallback; home
// sprays sub-divide by the volume token found anywhere in the row text,
// largest volume first so "1 LITRO" is not misread as a 1ml bottle.
var classifierRules = []classifierRule{
	{
		applies: skuOrName([]string{"MV"}, []string{"MINI CANDLE", "MINI VELA"}),
		result: Classification{
			Category:        CategoryMiniCandles,
			Color:           ColorPurple,
			Packaging:       "Mini Candles (units)",
			UnitWeightGrams: miniCandleWeightGrams,
		},
	},
	{
		applies: skuOrName([]string{"V100"}, []string{"100G", "JAR", "POTE"}),
		result: Classification{
			Category:        CategoryJarCandles,
			Color:           ColorPink,
			Packaging:       "Glass Jars 100g (units)",
			UnitWeightGrams: jarCandleWeightGrams,
		},
	},
	{
		applies: skuOrName([]string{"ES-"}, []string{"FOOT SOAK", "ESCALDA"}),
		result: Classification{
			Category:  CategoryFootSoak,
			Color:     ColorGreen,
			Packaging: "Foot Soak (packs)",
		},
	},
	{
		applies: sprayWith("1L", "1 LITRO", "1 LITRE"),
		result:  sprayClassification("1L", "1L Bottles"),
	},
	{
		applies: sprayWith("500"),
		result:  sprayClassification("500ml", "500ml Bottles"),
	},
	{
		applies: sprayWith("250"),
		result:  sprayClassification("250ml", "250ml Bottles"),
	},
	{
		applies: sprayWith("100"),
		result:  sprayClassification("100ml", "100ml Bottles"),
	},
	{
		applies: sprayWith("60"),
		result:  sprayClassification("60ml", "60ml Bottles"),
	},
	{
		applies: sprayWith("30"),
		result:  sprayClassification("30ml", "30ml Bottles"),
	},
	{
		applies: sprayWith(),
		result: Classification{
			Category:  CategorySprayDefault,
			Color:     ColorTeal,
			Packaging: "Assorted Bottles",
		},
	},
}

// otherClassification is the catch-all when no rule matches.
var otherClassification = Classification{
	Category:  CategoryOther,
	Color:     ColorGrey,
	Packaging: "Other",
}

// sprayMarkers are the tokens that identify the home-spray family anywhere
// in the row text.
var sprayMarkers = []string{"SPRAY", "ROOM SCENT", "CHEIRINHO"}

// =============================================================================
// CLASSIFICATION
// =============================================================================

// Classify runs the decision list over one row. sku, name, and variant are
// the raw cell values; casing is handled here.
func Classify(sku, name, variant string) Classification {
	sku = strings.ToUpper(sku)
	name = strings.ToUpper(name)
	text := CombinedText(sku, name, variant)

	for _, rule := range classifierRules {
		if rule.applies(sku, name, text) {
			return rule.result
		}
	}
	return otherClassification
}

// CombinedText builds the uppercase "SKU NAME VARIANT" haystack shared by
// the classifier and the multiplier resolver.
func CombinedText(sku, name, variant string) string {
	return strings.ToUpper(sku + " " + name + " " + variant)
}

// =============================================================================
// PREDICATE HELPERS
// =============================================================================

// skuOrName matches when the SKU contains any SKU marker or the product name
// contains any name marker.
func skuOrName(skuMarkers, nameMarkers []string) rulePredicate {
	return func(sku, name, _ string) bool {
		return containsAny(sku, skuMarkers) || containsAny(name, nameMarkers)
	}
}

// sprayWith matches rows carrying a spray marker together with any of the
// given volume tokens. With no tokens it matches any spray row, which makes
// it the family's final catch-all.
func sprayWith(volumeTokens ...string) rulePredicate {
	return func(_, _, text string) bool {
		if !containsAny(text, sprayMarkers) {
			return false
		}
		if len(volumeTokens) == 0 {
			return true
		}
		return containsAny(text, volumeTokens)
	}
}

// sprayClassification builds the shared spray card attributes for one
// volume sub-type.
func sprayClassification(volume, packaging string) Classification {
	return Classification{
		Category:  CategorySprayPrefix + volume,
		Color:     ColorTeal,
		Packaging: packaging,
	}
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if needle != "" && strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
