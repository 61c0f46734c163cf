// =============================================================================
// 7 Aromas Production Planner - Shared Planner Types
// =============================================================================
//
// This file defines the value types exchanged between the planning engine and
// its callers:
//   - OrderLine: one parsed input row (ephemeral, consumed immediately)
//   - ProductionLedger / CategoryPlan: the primary per-category output
//   - MaterialLedger: packaging counts plus raw-material estimates
//   - FinancialSummary: revenue, distinct orders, average order value
//   - UrgencyRecord: production needs shipping within a day
//
// All ledgers are rebuilt from empty on every run and handed back to the
// caller by value. The planner keeps no state between runs.
//
// =============================================================================

package planner

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// INPUT TYPES
// =============================================================================

// OrderLine is one order-export row after column resolution and coercion.
// It lives for exactly one iteration of the row loop.
type OrderLine struct {
	// SKU is the marketplace SKU text, uppercased.
	SKU string

	// Name is the product name text, uppercased. Empty if the column
	// was not resolved.
	Name string

	// Variant is the raw variant/option text as it appears in the export.
	// Case is preserved because the scent name is derived from it.
	Variant string

	// Quantity is the ordered quantity before any bundle multiplier.
	Quantity decimal.Decimal

	// Value is the coerced monetary value of the row. Zero when the value
	// column was not resolved or the cell did not parse.
	Value decimal.Decimal

	// Status is the raw order status text. Empty if not resolved.
	Status string

	// OrderID is the marketplace order identifier. Empty if not resolved.
	OrderID string

	// Deadline is the parsed shipping deadline. HasDeadline reports whether
	// the cell held a parseable date.
	Deadline    time.Time
	HasDeadline bool
}

// =============================================================================
// CLASSIFICATION TYPES
// =============================================================================

// ColorTag is the display color for a category card. The set is fixed and
// matches the workshop's printed worksheet palette.
type ColorTag string

const (
	ColorPurple ColorTag = "purple"
	ColorPink   ColorTag = "pink"
	ColorTeal   ColorTag = "teal"
	ColorGreen  ColorTag = "green"
	ColorGrey   ColorTag = "grey"
)

// Classification is the outcome of running one row through the classifier.
type Classification struct {
	// Category is the production grouping label. Sorting these strings
	// gives the display order of the worksheet cards.
	Category string

	// Color is the display color tag for the category card.
	Color ColorTag

	// Packaging is the stock-separation key the physical units count under.
	Packaging string

	// UnitWeightGrams is the reference wax weight of one unit, used for
	// material estimates. Zero for categories with no defined weight class.
	UnitWeightGrams int
}

// ExpansionItem is one (scent, quantity) pair produced from a single row
// after multiplier and expansion rules are applied.
type ExpansionItem struct {
	Scent    string
	Quantity decimal.Decimal
}

// =============================================================================
// OUTPUT LEDGERS
// =============================================================================

// CategoryPlan accumulates per-scent quantities for one category.
type CategoryPlan struct {
	// Color is the display color tag shared by every row in the category.
	Color ColorTag

	// Scents maps scent name to accumulated quantity. Quantities only
	// grow as rows are folded in.
	Scents map[string]decimal.Decimal
}

// ProductionLedger maps category label to its accumulated plan. This is the
// primary output of a processing run.
type ProductionLedger map[string]*CategoryPlan

// Categories returns the category labels in display (sorted) order.
func (l ProductionLedger) Categories() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TotalUnits sums every scent quantity across all categories. This is the
// headline "pieces to produce" metric on the worksheet.
func (l ProductionLedger) TotalUnits() decimal.Decimal {
	total := decimal.Zero
	for _, plan := range l {
		for _, qty := range plan.Scents {
			total = total.Add(qty)
		}
	}
	return total
}

// MaterialLedger accumulates packaging counts for stock picking plus two
// derived raw-material estimates.
type MaterialLedger struct {
	// Packaging maps packaging-type key to the accumulated unit count.
	Packaging map[string]decimal.Decimal

	// WaxGrams is the estimated mass of base wax needed, from per-category
	// reference unit weights. Categories without a weight class contribute
	// nothing.
	WaxGrams decimal.Decimal

	// FragranceMl is the estimated volume of fragrance concentrate, a fixed
	// fraction of the wax mass.
	FragranceMl decimal.Decimal
}

// PackagingTypes returns the packaging keys in sorted order for display.
func (m *MaterialLedger) PackagingTypes() []string {
	keys := make([]string, 0, len(m.Packaging))
	for key := range m.Packaging {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// FinancialSummary accumulates the revenue rollup for one run.
type FinancialSummary struct {
	// Revenue is the sum of the coerced value field over all rows that
	// passed the status, deadline, and quantity gates. The export does not
	// say whether the field is a line total or a per-unit price, so this is
	// a pass-through sum (once per row, never per expansion item).
	Revenue decimal.Decimal

	// OrderCount is the number of distinct order identifiers seen.
	OrderCount int

	// AverageOrderValue is Revenue / OrderCount, zero when no orders
	// carried an identifier.
	AverageOrderValue decimal.Decimal
}

// UrgencyRecord flags one expansion item whose shipping deadline is today
// or tomorrow. Only rows with a parseable deadline produce these.
type UrgencyRecord struct {
	// Deadline is the parsed shipping deadline of the source row.
	Deadline time.Time

	// Product is the "category - scent" label for the worksheet.
	Product string

	// Quantity is the quantity credited to that scent by the source row.
	Quantity decimal.Decimal
}

// Plan is the complete result of one processing run.
type Plan struct {
	Production ProductionLedger
	Urgent     []UrgencyRecord
	Materials  MaterialLedger
	Finance    FinancialSummary

	// RowsRead is the number of data rows seen in the input table.
	RowsRead int

	// RowsPlanned is the number of rows that passed every gate and were
	// folded into the ledgers.
	RowsPlanned int
}

// FormatQuantity renders a ledger quantity the way the worksheet prints it:
// whole numbers bare, fractional quantities with one decimal place.
func FormatQuantity(q decimal.Decimal) string {
	if q.Equal(q.Truncate(0)) {
		return q.Truncate(0).String()
	}
	return q.StringFixed(1)
}
