// =============================================================================
// 7 Aromas Production Planner - Planning Engine
// =============================================================================
//
// This module is the single entry point of the core. It streams the input
// table's rows through the pipeline
//
//   status gate -> deadline filter -> coercion -> classifier ->
//   multiplier -> expansion -> ledgers
//
// and returns the accumulated ledgers. One invocation owns its ledgers
// exclusively; nothing survives between runs.
//
// ERROR MODEL:
//   - Unresolvable SKU/quantity columns abort the run before any row is
//     read, with a *SchemaError naming the columns that WERE detected.
//   - Row-level parse failures degrade to defaults (zero quantity, zero
//     value, no deadline constraint) and never abort the run.
//   - Rows matching no classification rule file under the catch-all
//     category; no ordered unit is ever dropped from the report.
//
// =============================================================================

package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hugofreire-dev01/sistema-7aromas/internal/tabular"
)

// =============================================================================
// LOGGER
// =============================================================================

// Logger is the planner's logging interface. The cmd layer supplies a
// verbosity-aware implementation; NopLogger is used in tests.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// NopLogger discards all log output.
type NopLogger struct{}

func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}

// =============================================================================
// SCHEMA ERROR
// =============================================================================

// SchemaError reports that the SKU or quantity column could not be resolved.
// Detected lists the columns that were found, so the user can check whether
// they uploaded the right export.
type SchemaError struct {
	Missing  []Field
	Detected []string
}

func (e *SchemaError) Error() string {
	missing := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		missing[i] = string(f)
	}
	detected := "none"
	if len(e.Detected) > 0 {
		detected = strings.Join(e.Detected, ", ")
	}
	return fmt.Sprintf("could not resolve required column(s) %s; detected columns: %s",
		strings.Join(missing, ", "), detected)
}

// =============================================================================
// PLANNER
// =============================================================================

// DefaultFragranceLoad is the fragrance concentrate fraction of wax mass
// used for material estimates when the config does not override it.
const DefaultFragranceLoad = 0.10

// Options tunes a Planner. Zero values fall back to defaults.
type Options struct {
	// FragranceLoad is the fragrance volume per gram of wax used for the
	// concentrate estimate.
	FragranceLoad float64

	// ColumnKeywords overrides DefaultFieldKeywords per field; fields not
	// present keep their default lists.
	ColumnKeywords map[Field][]string
}

// Planner runs the classification-and-aggregation pipeline over one table.
type Planner struct {
	log           Logger
	fragranceLoad decimal.Decimal
	keywords      map[Field][]string
}

// New creates a Planner with default options.
func New(log Logger) *Planner {
	return NewWithOptions(log, Options{})
}

// NewWithOptions creates a Planner with custom options.
func NewWithOptions(log Logger, opts Options) *Planner {
	if log == nil {
		log = NopLogger{}
	}
	if opts.FragranceLoad <= 0 {
		opts.FragranceLoad = DefaultFragranceLoad
	}

	keywords := make(map[Field][]string, len(DefaultFieldKeywords))
	for field, list := range DefaultFieldKeywords {
		keywords[field] = list
	}
	for field, list := range opts.ColumnKeywords {
		if len(list) > 0 {
			keywords[field] = list
		}
	}

	return &Planner{
		log:           log,
		fragranceLoad: decimal.NewFromFloat(opts.FragranceLoad),
		keywords:      keywords,
	}
}

// Process derives the manufacturing plan for one order-export table.
// horizonDays bounds how far out a row's ship-by date may be: rows due
// later are excluded entirely. now anchors all day arithmetic; callers
// outside tests pass time.Now().
func (p *Planner) Process(table *tabular.Table, horizonDays int, now time.Time) (*Plan, error) {
	// =========================================================================
	// STEP 1: RESOLVE COLUMNS
	// =========================================================================
	// The schema is resolved once; SKU and quantity are mandatory.

	columns := ResolveColumnsWith(table.Headers, p.keywords)
	p.log.Debug("Resolved columns: %s", strings.Join(columns.Detected(), ", "))

	var missing []Field
	for _, required := range []Field{FieldSKU, FieldQuantity} {
		if !columns.Has(required) {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing, Detected: columns.Detected()}
	}

	// =========================================================================
	// STEP 2: STREAM ROWS THROUGH THE PIPELINE
	// =========================================================================

	plan := &Plan{
		Production: make(ProductionLedger),
		Materials: MaterialLedger{
			Packaging: make(map[string]decimal.Decimal),
		},
	}
	orderIDs := make(map[string]struct{})

	for _, row := range table.Rows {
		plan.RowsRead++

		line, keep := p.readLine(row, columns, horizonDays, now)
		if !keep {
			continue
		}

		class := Classify(line.SKU, line.Name, line.Variant)
		text := CombinedText(line.SKU, line.Name, line.Variant)
		mult := ResolveMultiplier(line.SKU, text, class.Category)
		physicalQty := line.Quantity.Mul(decimal.NewFromInt(int64(mult)))

		expansion := Expand(line, class, line.Quantity, physicalQty)
		p.fold(plan, orderIDs, line, class, expansion, now)
		plan.RowsPlanned++
	}

	// =========================================================================
	// STEP 3: DERIVE ROLLUP SCALARS
	// =========================================================================

	plan.Materials.FragranceMl = plan.Materials.WaxGrams.Mul(p.fragranceLoad)

	plan.Finance.OrderCount = len(orderIDs)
	if plan.Finance.OrderCount > 0 {
		plan.Finance.AverageOrderValue = plan.Finance.Revenue.
			Div(decimal.NewFromInt(int64(plan.Finance.OrderCount)))
	}

	p.log.Info("Planned %d of %d rows into %d categories",
		plan.RowsPlanned, plan.RowsRead, len(plan.Production))

	return plan, nil
}

// =============================================================================
// ROW GATES
// =============================================================================

// readLine extracts one OrderLine and applies the status, deadline, and
// quantity gates. keep=false means the row contributes nothing to the run.
func (p *Planner) readLine(row map[string]string, columns ColumnMap, horizonDays int, now time.Time) (OrderLine, bool) {
	var line OrderLine

	// Status gate comes before any date work.
	if columns.Has(FieldStatus) {
		line.Status = row[columns.Column(FieldStatus)]
		if IsCancelled(line.Status) {
			return line, false
		}
	}

	// Deadline gate: a parseable date beyond the horizon excludes the row;
	// an unparseable one only removes the deadline constraint.
	if columns.Has(FieldDeadline) {
		if deadline, ok := ParseDeadline(row[columns.Column(FieldDeadline)]); ok {
			line.Deadline = deadline
			line.HasDeadline = true
			if DaysUntil(now, deadline) > horizonDays {
				return line, false
			}
		}
	}

	line.SKU = strings.ToUpper(strings.TrimSpace(row[columns.Column(FieldSKU)]))
	if columns.Has(FieldName) {
		line.Name = strings.ToUpper(strings.TrimSpace(row[columns.Column(FieldName)]))
	}
	if columns.Has(FieldVariant) {
		line.Variant = row[columns.Column(FieldVariant)]
	}
	if columns.Has(FieldValue) {
		line.Value = CoerceMoney(row[columns.Column(FieldValue)])
	}
	if columns.Has(FieldOrderID) {
		line.OrderID = strings.TrimSpace(row[columns.Column(FieldOrderID)])
	}

	// Quantity gate: coercion is total, so a malformed cell lands here as
	// zero and skips the row.
	line.Quantity = CoerceQuantity(row[columns.Column(FieldQuantity)])
	if !line.Quantity.IsPositive() {
		return line, false
	}

	return line, true
}

// =============================================================================
// AGGREGATION
// =============================================================================

// fold accumulates one expanded row into the plan's ledgers.
func (p *Planner) fold(plan *Plan, orderIDs map[string]struct{}, line OrderLine, class Classification, expansion Expansion, now time.Time) {
	// Production ledger: initialize-if-absent, then add.
	cat, ok := plan.Production[class.Category]
	if !ok {
		cat = &CategoryPlan{
			Color:  class.Color,
			Scents: make(map[string]decimal.Decimal),
		}
		plan.Production[class.Category] = cat
	}

	urgent := line.HasDeadline && DaysUntil(now, line.Deadline) <= UrgencyWindowDays

	for _, item := range expansion.Items {
		cat.Scents[item.Scent] = cat.Scents[item.Scent].Add(item.Quantity)

		if urgent {
			plan.Urgent = append(plan.Urgent, UrgencyRecord{
				Deadline: line.Deadline,
				Product:  class.Category + " - " + item.Scent,
				Quantity: item.Quantity,
			})
		}
	}

	// Packaging and material rollups use the physical unit count, however
	// the scent credits were split.
	plan.Materials.Packaging[class.Packaging] =
		plan.Materials.Packaging[class.Packaging].Add(expansion.PackagingUnits)

	if class.UnitWeightGrams > 0 {
		plan.Materials.WaxGrams = plan.Materials.WaxGrams.Add(
			expansion.PackagingUnits.Mul(decimal.NewFromInt(int64(class.UnitWeightGrams))))
	}

	// Revenue is a pass-through sum, once per surviving row. The export is
	// ambiguous about whether the value field is a line total or per-unit
	// price; see DESIGN.md.
	plan.Finance.Revenue = plan.Finance.Revenue.Add(line.Value)

	if line.OrderID != "" {
		orderIDs[line.OrderID] = struct{}{}
	}
}
