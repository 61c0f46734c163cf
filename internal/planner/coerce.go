// =============================================================================
// 7 Aromas Production Planner - Numeric Coercion
// =============================================================================
//
// Quantity and money cells in marketplace exports are text with mixed
// separator conventions ("3", "1,5", "R$ 1.234,56", "$1,234.56"). These
// coercers are total functions: any input yields a finite decimal, degrading
// to zero instead of failing the row. Downstream logic treats a non-positive
// quantity as "skip this row".
//
// =============================================================================

package planner

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CoerceQuantity parses a quantity cell. The export writes decimal commas,
// so a comma is treated as the decimal separator. Returns zero on any
// malformed input.
func CoerceQuantity(raw string) decimal.Decimal {
	text := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if text == "" {
		return decimal.Zero
	}
	qty, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero
	}
	return qty
}

// currencyNoise are the symbol and spacing tokens stripped before parsing a
// money cell.
var currencyNoise = []string{"R$", "$", " ", " "}

// CoerceMoney parses a currency-like cell. Separator detection:
//   - both "." and "," present: "." is the thousands separator and "," the
//     decimal separator ("1.234,56" -> 1234.56)
//   - only "," present: comma is the decimal separator ("12,50" -> 12.5)
//   - otherwise the text parses as-is
//
// Returns zero on any malformed input.
func CoerceMoney(raw string) decimal.Decimal {
	text := strings.TrimSpace(raw)
	for _, noise := range currencyNoise {
		text = strings.ReplaceAll(text, noise, "")
	}
	if text == "" {
		return decimal.Zero
	}

	switch {
	case strings.Contains(text, ".") && strings.Contains(text, ","):
		text = strings.ReplaceAll(text, ".", "")
		text = strings.ReplaceAll(text, ",", ".")
	case strings.Contains(text, ","):
		text = strings.ReplaceAll(text, ",", ".")
	}

	value, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero
	}
	return value
}
